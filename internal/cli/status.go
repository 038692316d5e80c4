// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-time-keeper/internal/tui"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity, pending actions and the last sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := opts.client.Status(cmd.Context())
			if err != nil {
				return requestError("failed to get status", err)
			}
			return opts.formatter(cmd).Print(status, tui.RenderStatus(status))
		},
	}
}
