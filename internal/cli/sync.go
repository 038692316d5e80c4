// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-time-keeper/internal/tui"
)

// NewSyncCommand creates the sync command. It exits with ExitFailure when
// the pass did not run or some actions failed.
func NewSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replay the queued actions now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.client.SyncNow(cmd.Context())
			if err != nil {
				return requestError("failed to sync", err)
			}
			if err = opts.formatter(cmd).Print(result, tui.RenderResult(result)); err != nil {
				return err
			}
			if !result.Success {
				return NewExitError(ExitFailure, "sync finished with errors")
			}
			return nil
		},
	}
}
