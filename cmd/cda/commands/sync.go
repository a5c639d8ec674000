package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/cda/pkg/cda"
)

// NewSyncCommand creates the sync command
func NewSyncCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize space content",
		Long: `Run a synchronization against the space: an initial sync when no
token is given, otherwise a delta sync from the given token. The printed
next sync token seeds the following run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var opts []cda.SyncOption
			if token != "" {
				opts = append(opts, cda.WithSyncToken(token))
			}

			snapshot, err := client.Sync(opts...).Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to sync space: %w", err)
			}

			structured, err := renderStructured(snapshot)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Kind", "Count")
			_ = table.Append("Entries", strconv.Itoa(len(snapshot.Entries)))
			_ = table.Append("Assets", strconv.Itoa(len(snapshot.Assets)))
			_ = table.Append("Deleted Entries", strconv.Itoa(len(snapshot.DeletedEntries)))
			_ = table.Append("Deleted Assets", strconv.Itoa(len(snapshot.DeletedAssets)))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\nNext sync token: %s\n", snapshot.NextSyncToken)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "sync-token", "", "delta sync from this token")

	return cmd
}
