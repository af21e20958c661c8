// Command logident is the CLI front door binding flags through
// internal/config onto the extraction, classification, resolution, and
// statistics packages, plus a serve subcommand exposing the JSON-RPC
// dispatcher.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "logident",
		Short: "Extract, classify, and resolve identities from log lines",
	}

	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().Bool("json-logs", false, "emit logs as JSON instead of console format")
	root.PersistentFlags().String("config", "", "path to a config file")

	root.AddCommand(
		newExtractCmd(),
		newClassifyCmd(),
		newResolveCmd(),
		newStatsCmd(),
		newServeCmd(),
	)

	return root
}
