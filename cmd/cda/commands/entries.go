package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/cda/internal/constants"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// NewEntriesCommand creates the entries command group
func NewEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry"},
		Short:   "Read entries",
		Long:    "List and inspect published entries of the configured space",
	}

	cmd.AddCommand(newEntriesListCommand())
	cmd.AddCommand(newEntriesGetCommand())

	return cmd
}

//nolint:funlen // Flag wiring and rendering don't split well
func newEntriesListCommand() *cobra.Command {
	var (
		contentType string
		query       string
		order       string
		limit       int
		skip        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := cda.NewQueryParams()
			if contentType != "" {
				params = params.WithContentType(contentType)
			}

			if query != "" {
				params = params.WithQuery(query)
			}

			if order != "" {
				params = params.WithOrder(order)
			}

			if limit > 0 {
				params = params.WithLimit(limit)
			}

			if skip > 0 {
				params = params.WithSkip(skip)
			}

			collection, err := client.Entries().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}

			structured, err := renderStructured(collection)
			if structured || err != nil {
				return err
			}

			if len(collection.Items) == 0 {
				fmt.Println("No entries found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Content Type", "Updated")

			for _, entry := range collection.Items {
				typeName := entry.ContentTypeID()
				if entry.IsResolved() {
					typeName = entry.ContentType.Name
				}

				updated := NotAvailable
				if entry.Sys.UpdatedAt != nil {
					updated = entry.Sys.UpdatedAt.Format("2006-01-02 15:04:05")
				}

				_ = table.Append(entry.Sys.ID, typeName, updated)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			if unresolved := collection.Unresolved(); len(unresolved) > 0 {
				fmt.Printf("\n%d entries reference unknown content types\n", len(unresolved))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "filter by content type id")
	cmd.Flags().StringVar(&query, "query", "", "full-text search query")
	cmd.Flags().StringVar(&order, "order", "", "order by field, e.g. -sys.updatedAt")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of entries")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of entries to skip")

	return cmd
}

func newEntriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENTRY_ID",
		Short: "Show one entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return constants.ErrEntryArgRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			entry, err := client.Entries().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get entry: %w", err)
			}

			structured, err := renderStructured(entry)
			if structured || err != nil {
				return err
			}

			typeName := entry.ContentTypeID()
			if entry.IsResolved() {
				typeName = entry.ContentType.Name
			}

			fmt.Printf("Entry: %s (%s)\n\n", entry.Sys.ID, typeName)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")

			for key, value := range entry.Fields {
				_ = table.Append(key, fmt.Sprintf("%v", value))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
