package main

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logident/logident/collab"
	"github.com/logident/logident/internal/logging"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON-RPC dispatcher exposing classify, process_file, and extract",
		RunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")

			jsonLogs := true
			if cmd.Flags().Changed("json-logs") {
				jsonLogs, _ = cmd.Flags().GetBool("json-logs")
			}

			logger := logging.New(logging.Config{Debug: debug, JSON: jsonLogs})
			defer logger.Sync() //nolint:errcheck

			dispatcher := collab.NewDispatcher(logger)

			logger.Info("listening", zap.String("addr", addr))

			if err := http.ListenAndServe(addr, dispatcher.Router()); err != nil {
				return errors.Wrap(err, "serving JSON-RPC dispatcher")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")

	return cmd
}
