package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/cda/internal/constants"
)

// NewContentTypesCommand creates the content-types command group
func NewContentTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "content-types",
		Aliases: []string{"content-type", "types"},
		Short:   "Inspect content types",
		Long:    "List and inspect the content types of the configured space",
	}

	cmd.AddCommand(newContentTypesListCommand())
	cmd.AddCommand(newContentTypesGetCommand())

	return cmd
}

func newContentTypesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List content types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			collection, err := client.ContentTypes().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list content types: %w", err)
			}

			structured, err := renderStructured(collection)
			if structured || err != nil {
				return err
			}

			if len(collection.Items) == 0 {
				fmt.Println("No content types found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Display Field", "Fields")

			for _, contentType := range collection.Items {
				_ = table.Append(
					contentType.Sys.ID,
					contentType.Name,
					contentType.DisplayField,
					strconv.Itoa(len(contentType.Fields)),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newContentTypesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTENT_TYPE_ID",
		Short: "Show one content type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return constants.ErrContentTypeArgRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			contentType, err := client.ContentTypes().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get content type: %w", err)
			}

			structured, err := renderStructured(contentType)
			if structured || err != nil {
				return err
			}

			fmt.Printf("Content Type: %s (%s)\n\n", contentType.Name, contentType.Sys.ID)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Name", "Type", "Required", "Localized")

			for _, field := range contentType.Fields {
				fieldType := field.Type
				if field.Type == "Array" && field.Items != nil {
					fieldType = "Array<" + field.Items.Type + ">"
				}

				_ = table.Append(
					field.ID,
					field.Name,
					fieldType,
					strconv.FormatBool(field.Required),
					strconv.FormatBool(field.Localized),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
