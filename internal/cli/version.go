// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-time-keeper/internal/tui"
	"github.com/MKhiriev/go-time-keeper/models"
)

type versionOutput struct {
	Version       string `json:"version"`
	Date          string `json:"date,omitempty"`
	Commit        string `json:"commit,omitempty"`
	ClientVersion string `json:"client_version,omitempty"`
}

// NewVersionCommand creates the version command. The version of the running
// client is added when its control API answers.
func NewVersionCommand(opts *RootOptions, buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the synctl and client versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := versionOutput{
				Version: buildInfo.BuildVersion(),
				Date:    buildInfo.BuildDate(),
				Commit:  buildInfo.BuildCommit(),
			}
			text := tui.RenderBuildInfo("synctl", buildInfo)

			clientVersion, err := opts.client.Version(cmd.Context())
			if err != nil {
				clientVersion = "unreachable"
			}
			out.ClientVersion = clientVersion
			text += "\n" + tui.RenderBuildInfo("time-keeper client", models.NewAppBuildInfo(clientVersion, "", ""))

			return opts.formatter(cmd).Print(out, text)
		},
	}
}
