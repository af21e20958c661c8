package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logident/logident/extractpipe"
	"github.com/logident/logident/stats"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Extract Findings from a log file and report classification statistics",
		RunE:  runStats,
	}

	addExtractionFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.FilePath == "" {
		return errors.New("invalid configuration: file_path is required")
	}

	logger := newLogger(cmd)
	defer logger.Sync() //nolint:errcheck

	runID := newRunID()
	logger = logger.With(zap.String("run_id", runID))

	pipeline := extractpipe.New(logger)

	result, err := pipeline.Run(context.Background(), extractpipe.FileSource{Path: cfg.FilePath}, extractpipe.Config{
		Limit:      cfg.Limit,
		SampleRate: cfg.Sample,
		Exclude:    cfg.ExcludeSet(),
		Threads:    cfg.Threads,
	})
	if err != nil {
		return errors.Wrapf(err, "extracting from %q", cfg.FilePath)
	}

	agg := stats.New()
	agg.AddLines(result.TotalLinesProcessed)

	categories := cfg.CategoriesSet()

	for _, f := range result.Findings {
		if len(categories) > 0 && !categories[f.Type] {
			continue
		}

		agg.AddFinding(f)
	}

	report := agg.Report(cfg.FilePath)

	return writeOutput(cfg.Output, report)
}
