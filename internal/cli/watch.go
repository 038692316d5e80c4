// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/tui"
)

// NewWatchCommand creates the watch command, a live dashboard fed by the
// control API event stream.
func NewWatchCommand(opts *RootOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the sync status live",
		Long: `Follow the sync status live.

Keys: s sync now, e show the last error, c copy the last error to the
clipboard, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Nop()
			if logFile != "" {
				log = logger.NewClientLogger("synctl", logFile)
			}

			if err := tui.New(opts.client, log).Watch(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "dashboard failed", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")

	return cmd
}
