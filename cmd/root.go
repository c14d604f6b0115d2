package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/config"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/dates"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagAPIKey string
	flagStart  string
	flagEnd    string
)

var rootCmd = &cobra.Command{
	Use:   "space-explorer",
	Short: "TUI gallery for NASA's Astronomy Picture of the Day",
	Long: "space-explorer browses NASA's Astronomy Picture of the Day as a card gallery.\n" +
		"Without an API key it serves a bundled slice of the archive; with one it\n" +
		"queries api.nasa.gov directly.",
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "NASA API key (overrides config and NASA_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagEnd, "end", "", "end date (YYYY-MM-DD)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(exportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("space-explorer %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// setup loads the config and opens the log file. Every subcommand that
// talks to a picture source goes through here.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}

	logger, err := logging.New(config.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return cfg, logger, nil
}

// parseRange turns the --start/--end flags into a date range. Unlike
// the in-app form, flags fail loudly on input that is not a date.
func parseRange(start, end string) (apod.DateRange, error) {
	var r apod.DateRange
	if start != "" {
		t, ok := dates.Parse(start)
		if !ok {
			return r, fmt.Errorf("invalid --start date %q (want YYYY-MM-DD)", start)
		}
		r.Start = &t
	}
	if end != "" {
		t, ok := dates.Parse(end)
		if !ok {
			return r, fmt.Errorf("invalid --end date %q (want YYYY-MM-DD)", end)
		}
		r.End = &t
	}
	return r.Normalize(), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
