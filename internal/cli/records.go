// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-time-keeper/internal/tui"
	"github.com/MKhiriev/go-time-keeper/models"
)

// RecordOptions holds flags of the record mutation commands.
type RecordOptions struct {
	*RootOptions
	Project     string
	Description string
	Start       string
	End         string
	Tags        []string

	now func() time.Time
}

// NewTimeRecordsCommand creates the time-records command group.
func NewTimeRecordsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "time-records",
		Aliases: []string{"records"},
		Short:   "Create, update and delete time records through the offline queue",
	}

	cmd.AddCommand(newOfflineRecordsCommand(rootOpts))
	cmd.AddCommand(newCreateRecordCommand(&RecordOptions{RootOptions: rootOpts, now: time.Now}))
	cmd.AddCommand(newUpdateRecordCommand(&RecordOptions{RootOptions: rootOpts, now: time.Now}))
	cmd.AddCommand(newDeleteRecordCommand(rootOpts))

	return cmd
}

func newOfflineRecordsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "offline",
		Short: "List records created offline and not yet synced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := opts.client.OfflineRecords(cmd.Context())
			if err != nil {
				return requestError("failed to list offline records", err)
			}
			return opts.formatter(cmd).Print(records, tui.RenderRecords(records))
		},
	}
}

func newCreateRecordCommand(opts *RecordOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a time record, queued when the backend is unreachable",
		Long: `Create a time record, queued when the backend is unreachable.

Examples:
  synctl time-records create --project Acme --start 2026-04-06T09:30:00Z
  synctl time-records create --project Acme --description planning --tags meeting,q2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := opts.record()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid time record", err)
			}
			outcome, err := opts.client.CreateTimeRecord(cmd.Context(), record)
			if err != nil {
				return requestError("failed to create time record", err)
			}
			return opts.formatter(cmd).Print(outcome, tui.RenderOutcome(outcome))
		},
	}
	opts.bindFlags(cmd)
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newUpdateRecordCommand(opts *RecordOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a time record, queued when the backend is unreachable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := opts.record()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid time record", err)
			}
			outcome, err := opts.client.UpdateTimeRecord(cmd.Context(), args[0], record)
			if err != nil {
				return requestError("failed to update time record", err)
			}
			return opts.formatter(cmd).Print(outcome, tui.RenderOutcome(outcome))
		},
	}
	opts.bindFlags(cmd)
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newDeleteRecordCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a time record, queued when the backend is unreachable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := opts.client.DeleteTimeRecord(cmd.Context(), args[0])
			if err != nil {
				return requestError("failed to delete time record", err)
			}
			return opts.formatter(cmd).Print(outcome, tui.RenderOutcome(outcome))
		},
	}
}

func (o *RecordOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Project, "project", "p", "", "project name (required)")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "", "description")
	cmd.Flags().StringVar(&o.Start, "start", "", "start time, RFC 3339 (default now)")
	cmd.Flags().StringVar(&o.End, "end", "", "end time, RFC 3339")
	cmd.Flags().StringSliceVar(&o.Tags, "tags", nil, "comma separated tags")
}

func (o *RecordOptions) record() (models.TimeRecord, error) {
	record := models.TimeRecord{
		ProjectName: o.Project,
		Description: o.Description,
		StartTime:   o.now().UTC().Truncate(time.Second),
		Tags:        o.Tags,
	}

	if o.Start != "" {
		start, err := time.Parse(time.RFC3339, o.Start)
		if err != nil {
			return models.TimeRecord{}, fmt.Errorf("--start: %w", err)
		}
		record.StartTime = start
	}
	if o.End != "" {
		end, err := time.Parse(time.RFC3339, o.End)
		if err != nil {
			return models.TimeRecord{}, fmt.Errorf("--end: %w", err)
		}
		if end.Before(record.StartTime) {
			return models.TimeRecord{}, fmt.Errorf("--end %s is before the start", o.End)
		}
		record.EndTime = &end
	}

	return record, nil
}
