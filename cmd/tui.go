package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive gallery (the default action)",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	source, err := apod.Select(cfg.APIKey)
	if err != nil {
		logger.Error("opening picture source", zap.Error(err))
		return fmt.Errorf("opening picture source: %w", err)
	}

	var initial *apod.DateRange
	if flagStart != "" || flagEnd != "" {
		r, err := parseRange(flagStart, flagEnd)
		if err != nil {
			return err
		}
		initial = &r
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.Bool("keyed", cfg.HasKey()))

	return tui.Run(tui.RunOpts{
		Cfg:     cfg,
		Source:  source,
		Log:     logger,
		Version: version,
		Initial: initial,
	})
}
