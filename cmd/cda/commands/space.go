package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSpaceCommand creates the space command
func NewSpaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "space",
		Short: "Show the configured space",
		Long:  "Fetch and display the space descriptor, including its locales",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			space, err := client.FetchSpace(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch space: %w", err)
			}

			structured, err := renderStructured(space)
			if structured || err != nil {
				return err
			}

			fmt.Printf("Space: %s (%s)\n\n", space.Name, space.Sys.ID)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Code", "Name", "Default", "Fallback")

			for _, locale := range space.Locales {
				isDefault := ""
				if locale.Default {
					isDefault = "yes"
				}

				fallback := locale.FallbackCode
				if fallback == "" {
					fallback = NotAvailable
				}

				_ = table.Append(locale.Code, locale.Name, isDefault, fallback)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
