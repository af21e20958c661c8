package main

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logident/logident/extractpipe"
	"github.com/logident/logident/resolve"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Extract Findings from a log file and resolve identity clusters",
		RunE:  runResolve,
	}

	addExtractionFlags(cmd)

	return cmd
}

func runResolve(cmd *cobra.Command, _ []string) error {
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

	extracted, err := pipeline.Run(context.Background(), extractpipe.FileSource{Path: cfg.FilePath}, extractpipe.Config{
		Limit:      cfg.Limit,
		SampleRate: cfg.Sample,
		Exclude:    cfg.ExcludeSet(),
		Threads:    cfg.Threads,
	})
	if err != nil {
		return errors.Wrapf(err, "extracting from %q", cfg.FilePath)
	}

	var src resolve.Source = resolve.SliceSource(extracted.Findings)

	if resolve.IsStreamingRecommended(len(extracted.Findings)) {
		logger.Info("finding count exceeds streaming threshold; consider a disk-backed source",
			zap.Int("findings", len(extracted.Findings)),
		)
	}

	result, err := resolve.Resolve(src, resolve.Config{
		MergeTypes:      cfg.MergeTypesSet(),
		MaxFrequencyPct: cfg.MaxFrequency,
		FastMode:        cfg.Fast,
		Logger:          logger,
	})
	if err != nil {
		return errors.Wrap(err, "resolving identities")
	}

	logger.Info("resolution finished",
		zap.String("identities", humanize.Comma(int64(len(result.Groups)))),
		zap.String("findings", humanize.Comma(int64(len(result.Findings)))),
	)

	return writeOutput(cfg.Output, result.Findings)
}
