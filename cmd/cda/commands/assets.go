package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/cda/internal/constants"
	"github.com/fivetwenty-io/cda/pkg/cda"
)

// NewAssetsCommand creates the assets command group
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Read assets",
		Long:    "List and inspect published assets of the configured space",
	}

	cmd.AddCommand(newAssetsListCommand())
	cmd.AddCommand(newAssetsGetCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	var (
		limit int
		skip  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := cda.NewQueryParams()
			if limit > 0 {
				params = params.WithLimit(limit)
			}

			if skip > 0 {
				params = params.WithSkip(skip)
			}

			collection, err := client.Assets().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}

			structured, err := renderStructured(collection)
			if structured || err != nil {
				return err
			}

			if len(collection.Items) == 0 {
				fmt.Println("No assets found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "File", "Content Type")

			for _, asset := range collection.Items {
				fileName := NotAvailable
				fileType := NotAvailable

				if asset.Fields.File != nil {
					fileName = asset.Fields.File.FileName
					fileType = asset.Fields.File.ContentType
				}

				_ = table.Append(asset.Sys.ID, asset.Fields.Title, fileName, fileType)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of assets")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of assets to skip")

	return cmd
}

func newAssetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ASSET_ID",
		Short: "Show one asset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return constants.ErrAssetArgRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			asset, err := client.Assets().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get asset: %w", err)
			}

			structured, err := renderStructured(asset)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", asset.Sys.ID)
			_ = table.Append("Title", asset.Fields.Title)

			if asset.Fields.Description != "" {
				_ = table.Append("Description", asset.Fields.Description)
			}

			if asset.Fields.File != nil {
				_ = table.Append("File", asset.Fields.File.FileName)
				_ = table.Append("Content Type", asset.Fields.File.ContentType)
				_ = table.Append("URL", asset.Fields.File.URL)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
