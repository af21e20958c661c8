package main

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logident/logident/extractpipe"
	"github.com/logident/logident/internal/metrics"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract Findings from a log file",
		RunE:  runExtract,
	}

	addExtractionFlags(cmd)

	return cmd
}

func runExtract(cmd *cobra.Command, _ []string) error {
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

	m := metrics.Noop()

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

	m.LinesProcessed.Add(float64(result.TotalLinesProcessed))

	categories := cfg.CategoriesSet()

	findings := result.Findings
	if len(categories) > 0 {
		filtered := findings[:0]

		for _, f := range findings {
			if categories[f.Type] {
				filtered = append(filtered, f)
				m.FindingsEmitted.WithLabelValues(f.Type).Inc()
			}
		}

		findings = filtered
	} else {
		for _, f := range findings {
			m.FindingsEmitted.WithLabelValues(f.Type).Inc()
		}
	}

	logger.Info("extraction finished",
		zap.String("lines_processed", humanize.Comma(result.TotalLinesProcessed)),
		zap.String("findings", humanize.Comma(int64(len(findings)))),
	)

	return writeOutput(cfg.Output, findings)
}
