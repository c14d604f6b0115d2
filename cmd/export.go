package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/browser"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/export"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/sample"
)

var (
	flagOut         string
	flagExportLimit int
	flagOpenPage    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the gallery as a standalone HTML page",
	Long: `Fetch pictures for the given --start/--end range and write them as a dark
themed HTML page with image cards, the same sampling rules as the gallery.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		records, r, err := fetchSampled(cfg, logger, flagExportLimit)
		if err != nil {
			return err
		}

		page := export.Page(records, r.Label())
		if err := export.Write(flagOut, page); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}

		if len(records) == 0 {
			fmt.Printf("Wrote %s (no images found for %s).\n", flagOut, r.Label())
		} else {
			fmt.Printf("Wrote %s (%d pictures).\n", flagOut, len(records))
		}

		if flagOpenPage {
			if err := browser.OpenFile(flagOut); err != nil {
				return fmt.Errorf("opening page: %w", err)
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagOut, "out", "apod.html", "output file path")
	exportCmd.Flags().IntVar(&flagExportLimit, "limit", sample.DefaultBound, "cap on exported pictures (-1 for all)")
	exportCmd.Flags().BoolVar(&flagOpenPage, "open", false, "open the page after writing it")
}
