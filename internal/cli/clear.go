// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"
)

// NewClearCommand creates the clear command.
func NewClearCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every queued action, offline record and draft",
		Long: `Drop every queued action, offline record and draft.

Queued actions that were not synced are lost. The time of the last
successful sync is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitCommandError, "refusing to clear offline data without --yes")
			}
			if err := opts.client.ClearOfflineData(cmd.Context()); err != nil {
				return requestError("failed to clear offline data", err)
			}
			return opts.formatter(cmd).Print(map[string]bool{"cleared": true}, "offline data cleared")
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm that unsynced actions may be lost")

	return cmd
}
