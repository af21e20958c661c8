package main

import (
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logident/logident/internal/config"
	"github.com/logident/logident/internal/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// addExtractionFlags registers the enumerated extraction-related options
// shared by extract, resolve, and stats (those that accept the same
// input-selection knobs).
func addExtractionFlags(cmd *cobra.Command) {
	cmd.Flags().String("file_path", "", "path to input log file")
	cmd.Flags().Int64("limit", 0, "maximum number of lines to process (0 = unlimited)")
	cmd.Flags().Int64("sample", 1, "process 1 in every N lines")
	cmd.Flags().String("exclude", "", "comma-separated categories to skip during extraction")
	cmd.Flags().String("categories", "", "comma-separated categories to include in output")
	cmd.Flags().String("merge_types", "", "comma-separated categories eligible for identity unioning")
	cmd.Flags().Float64("max_frequency", 10, "maximum occurrence percentage for a value to qualify")
	cmd.Flags().Bool("fast", false, "skip the transitive-closure confirmation pass")
	cmd.Flags().Int("threads", 0, "extraction worker concurrency (0 = auto)")
	cmd.Flags().String("output", "", "path to write resulting JSON (default: stdout)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(cmd.Flags())
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")

	return logging.New(logging.Config{Debug: debug, JSON: jsonLogs})
}

func newRunID() string {
	return uuid.NewString()
}

// writeOutput marshals v as pretty JSON to the file named by output, or
// stdout when output is empty.
func writeOutput(output string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding output")
	}

	data = append(data, '\n')

	if output == "" {
		_, err := os.Stdout.Write(data)

		return errors.Wrap(err, "writing output to stdout")
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing output file %q", output)
	}

	return nil
}
