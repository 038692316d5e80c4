// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-time-keeper/models"
)

const timeLayout = "2006-01-02 15:04:05"

// ConnectionLabel names the connectivity state shown for s.
func ConnectionLabel(s models.SyncStatus) string {
	switch {
	case s.IsOnline && s.IsReconnecting:
		return "reconnecting"
	case s.IsOnline:
		return "online"
	default:
		return "offline"
	}
}

func connectionStyled(s models.SyncStatus) string {
	label := ConnectionLabel(s)
	switch label {
	case "online":
		return onlineStyle.Render(label)
	case "reconnecting":
		return warnStyle.Render(label)
	default:
		return offlineStyle.Render(label)
	}
}

// RenderStatus renders the offline status read model as a labelled table.
func RenderStatus(s models.SyncStatus) string {
	lastSync := "never"
	if s.LastSync != nil {
		lastSync = s.LastSync.Local().Format(timeLayout)
	}

	rows := []struct {
		label string
		value string
	}{
		{"Connection", connectionStyled(s)},
		{"Syncing", yesNo(s.IsSyncing)},
		{"Pending actions", pendingStyled(s.PendingActions)},
		{"Last sync", lastSync},
		{"Unsaved drafts", yesNo(s.HasUnsavedChanges)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(row.label)+row.value)
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

// RenderResult renders a drain pass summary followed by its errors.
func RenderResult(r models.SyncResult) string {
	var b strings.Builder

	outcome := onlineStyle.Render("success")
	if !r.Success {
		outcome = offlineStyle.Render("failed")
	}
	b.WriteString(labelStyle.Render("Sync") + outcome + "\n")
	b.WriteString(labelStyle.Render("Synced actions") + fmt.Sprint(r.SyncedActions) + "\n")
	b.WriteString(labelStyle.Render("Failed actions") + fmt.Sprint(r.FailedActions))
	if !r.FinishedAt.IsZero() {
		b.WriteString("\n" + labelStyle.Render("Finished") + r.FinishedAt.Local().Format(timeLayout))
		if !r.StartedAt.IsZero() {
			b.WriteString(" (" + r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String() + ")")
		}
	}

	for _, e := range r.Errors {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + e))
	}

	return b.String()
}

// RenderDraft renders a stored form draft.
func RenderDraft(d models.FormDraft) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Form") + d.FormID + "\n")
	b.WriteString(labelStyle.Render("Saved at") + d.SavedAt.Local().Format(timeLayout) + "\n")
	b.WriteString(labelStyle.Render("Data") + string(d.Data))

	return b.String()
}

// RenderRecords renders the offline mirror of queued creates.
func RenderRecords(records []models.OfflineRecord) string {
	if len(records) == 0 {
		return helpStyle.Render("no offline records")
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := fmt.Sprintf("%s  %s  %s",
			r.LocalID,
			r.Record.StartTime.Local().Format(timeLayout),
			r.Record.ProjectName,
		)
		if r.Record.Description != "" {
			line += " - " + r.Record.Description
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// RenderOutcome renders the answer to a time record mutation.
func RenderOutcome(o models.RecordOutcome) string {
	if o.Queued {
		msg := warnStyle.Render("queued") + " action " + o.ActionID
		if o.LocalID != "" {
			msg += ", local id " + o.LocalID
		}
		return msg
	}
	if o.Record != nil && o.Record.ID != "" {
		return onlineStyle.Render("applied") + " record " + o.Record.ID
	}
	return onlineStyle.Render("applied")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func pendingStyled(n int) string {
	if n == 0 {
		return "0"
	}
	return warnStyle.Render(fmt.Sprint(n))
}
