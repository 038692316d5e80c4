// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// SyncStatus is a read-only snapshot of the offline subsystem.
type SyncStatus struct {
	// IsOnline mirrors the network monitor.
	IsOnline bool `json:"is_online"`

	// IsReconnecting is true during the grace window right after going online.
	IsReconnecting bool `json:"is_reconnecting"`

	// IsSyncing is true while a drain pass is in progress.
	IsSyncing bool `json:"is_syncing"`

	// PendingActions is the live number of queued actions.
	PendingActions int `json:"pending_actions"`

	// LastSync is the completion time of the last non-empty drain pass.
	LastSync *time.Time `json:"last_sync,omitempty"`

	// HasUnsavedChanges is true when at least one form draft exists.
	HasUnsavedChanges bool `json:"has_unsaved_changes"`
}

// SyncResult summarizes one drain pass.
type SyncResult struct {
	Success       bool      `json:"success"`
	SyncedActions int       `json:"synced_actions"`
	FailedActions int       `json:"failed_actions"`
	Errors        []string  `json:"errors"`
	StartedAt     time.Time `json:"started_at,omitzero"`
	FinishedAt    time.Time `json:"finished_at,omitzero"`
}

// Clone returns a deep copy of r.
func (r SyncResult) Clone() SyncResult {
	r.Errors = slices.Clone(r.Errors)
	if r.Errors == nil {
		r.Errors = []string{}
	}
	return r
}

// SyncMeta is the persisted bookkeeping of the sync manager.
type SyncMeta struct {
	LastSync *time.Time `json:"last_sync,omitempty"`
}
