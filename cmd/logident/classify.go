package main

import (
	"github.com/spf13/cobra"

	"github.com/logident/logident/classify"
)

func newClassifyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "classify <value>",
		Short: "Classify a single value against the pattern registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := classify.Classify(args[0])
			if categories == nil {
				categories = []string{}
			}

			return writeOutput(output, categories)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "path to write resulting JSON (default: stdout)")

	return cmd
}
