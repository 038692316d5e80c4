// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// TimeRecord is a single tracked time interval as exchanged with the remote API.
type TimeRecord struct {
	ID          string     `json:"id,omitempty"`
	ProjectName string     `json:"projectName"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Clone returns a deep copy of r.
func (r TimeRecord) Clone() TimeRecord {
	if r.EndTime != nil {
		end := *r.EndTime
		r.EndTime = &end
	}
	r.Tags = slices.Clone(r.Tags)
	return r
}

// OfflineRecord mirrors a time record that was created while offline so the
// UI can show it before the backend has confirmed it.
type OfflineRecord struct {
	// LocalID is assigned on the client and keys the mirror collection.
	LocalID string `json:"local_id"`

	// Record is the record as entered by the user.
	Record TimeRecord `json:"record"`

	// IsOffline stays true until the create action is replayed.
	IsOffline bool `json:"is_offline"`

	// CreatedAt is the local creation time.
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy of r.
func (r OfflineRecord) Clone() OfflineRecord {
	r.Record = r.Record.Clone()
	return r
}

// GetID returns the local identifier.
func (r OfflineRecord) GetID() string { return r.LocalID }

// RecordOutcome is the result of a time record mutation made through the
// offline-aware service.
type RecordOutcome struct {
	// Queued is true when the mutation was stored for later replay instead
	// of reaching the server.
	Queued bool `json:"queued"`

	// ActionID is the queued action id when Queued is true.
	ActionID string `json:"action_id,omitempty"`

	// LocalID is the offline mirror id of a queued create.
	LocalID string `json:"local_id,omitempty"`

	// Record is the server response when the mutation was applied online.
	Record *TimeRecord `json:"record,omitempty"`
}
