package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/config"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/sample"
)

var (
	flagJSON  bool
	flagLimit int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print a sampled gallery without launching the TUI",
	Long: `Fetch pictures for the given --start/--end range, sample them the way the
gallery would, and print them to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		records, r, err := fetchSampled(cfg, logger, flagLimit)
		if err != nil {
			return err
		}

		if flagJSON {
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding records: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(records) == 0 {
			fmt.Printf("No images found for %s.\n", r.Label())
			return nil
		}

		fmt.Printf("Showing %d images from %s\n\n", len(records), r.Label())
		for _, rec := range records {
			link := rec.ImageURL()
			if link == "" {
				link = rec.URL
			}
			fmt.Printf("%s  [%s]  %s\n", rec.Date, rec.MediaType, rec.Title)
			fmt.Printf("            %s\n", link)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&flagJSON, "json", false, "print records as JSON")
	fetchCmd.Flags().IntVar(&flagLimit, "limit", sample.DefaultBound, "cap on printed pictures (-1 for all)")
}

// fetchSampled runs the same pipeline as the TUI gallery: resolve the
// flag range, fetch, sample down to limit. Output is date-sorted since
// a shuffled order reads poorly in a terminal.
func fetchSampled(cfg *config.Config, logger *zap.Logger, limit int) ([]apod.Record, apod.DateRange, error) {
	r, err := parseRange(flagStart, flagEnd)
	if err != nil {
		return nil, r, err
	}

	source, err := apod.Select(cfg.APIKey)
	if err != nil {
		logger.Error("opening picture source", zap.Error(err))
		return nil, r, fmt.Errorf("opening picture source: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("fetching", zap.String("range", r.Label()), zap.Int("limit", limit))
	records, err := source.Fetch(ctx, r)
	if err != nil {
		logger.Error("fetch failed", zap.Error(err))
		return nil, r, fmt.Errorf("fetching pictures: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	records = sample.Records(rng, records, limit)
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, r, nil
}
