// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-time-keeper/internal/tui"
)

// DraftOptions holds flags of the draft save command.
type DraftOptions struct {
	*RootOptions
	File string
}

// NewDraftCommand creates the draft command group.
func NewDraftCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage auto-saved form drafts",
	}

	cmd.AddCommand(newDraftGetCommand(rootOpts))
	cmd.AddCommand(newDraftSaveCommand(&DraftOptions{RootOptions: rootOpts}))
	cmd.AddCommand(newDraftRemoveCommand(rootOpts))

	return cmd
}

func newDraftGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get FORM_ID",
		Short: "Print the stored draft of a form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := opts.client.GetDraft(cmd.Context(), args[0])
			if errors.Is(err, ErrDraftNotFound) {
				return WrapExitError(ExitFailure, "no draft", err)
			}
			if err != nil {
				return requestError("failed to get draft", err)
			}
			return opts.formatter(cmd).Print(draft, tui.RenderDraft(draft))
		},
	}
}

func newDraftSaveCommand(opts *DraftOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save FORM_ID [JSON]",
		Short: "Auto-save a form snapshot",
		Long: `Auto-save a form snapshot.

The snapshot is taken from the JSON argument, from --file, or from stdin
when --file is "-". It is written once the form has been idle for the
autosave delay of the client.

Examples:
  synctl draft save timesheet '{"project":"Acme","hours":2}'
  synctl draft save timesheet --file draft.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := draftData(cmd, opts.File, args[1:])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid draft", err)
			}
			if err = opts.client.SaveDraft(cmd.Context(), args[0], data); err != nil {
				return requestError("failed to save draft", err)
			}
			return opts.formatter(cmd).Print(map[string]string{"form_id": args[0], "state": "scheduled"}, "draft scheduled for "+args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", `read the snapshot from a file, "-" for stdin`)

	return cmd
}

func newDraftRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm FORM_ID",
		Aliases: []string{"remove"},
		Short:   "Discard the draft of a form",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client.RemoveDraft(cmd.Context(), args[0]); err != nil {
				return requestError("failed to remove draft", err)
			}
			return opts.formatter(cmd).Print(map[string]string{"form_id": args[0], "state": "removed"}, "draft removed for "+args[0])
		},
	}
}

func draftData(cmd *cobra.Command, file string, args []string) (json.RawMessage, error) {
	var raw []byte
	switch {
	case len(args) > 0 && file != "":
		return nil, errors.New("pass the snapshot either as an argument or with --file")
	case len(args) > 0:
		raw = []byte(args[0])
	case file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = b
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		raw = b
	default:
		return nil, errors.New("no snapshot given")
	}

	if !json.Valid(raw) {
		return nil, errors.New("snapshot is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
