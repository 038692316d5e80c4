// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/models"
)

// AddressEnv overrides the default control API address.
const AddressEnv = "SYNCTL_ADDRESS"

// ValidFormats lists the accepted values of --format.
var ValidFormats = []string{"text", "json"}

// RootOptions holds the global flags and the client built from them.
type RootOptions struct {
	Address string
	Timeout time.Duration
	Format  string

	client *ControlClient
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// NewRootCommand creates the synctl command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "synctl",
		Short: "Inspect and drive the offline sync of a running time-keeper client",
		Long: `synctl talks to the local control API of a running time-keeper client.

It shows the offline status, forces a sync pass, manages form drafts and
time records, and can follow sync events live.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			client, err := NewControlClient(opts.Address, opts.Timeout)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid control api address", err)
			}
			opts.client = client
			return nil
		},
	}

	address := os.Getenv(AddressEnv)
	if address == "" {
		address = config.DefaultControlAddress
	}

	cmd.PersistentFlags().StringVarP(&opts.Address, "address", "a", address, "control api address (env "+AddressEnv+")")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", config.DefaultRequestTimeout, "request timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewDraftCommand(opts))
	cmd.AddCommand(NewTimeRecordsCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts, buildInfo))

	return cmd
}
