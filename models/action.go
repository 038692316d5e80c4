// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
	"time"
)

// ActionType is the kind of mutation carried by an [OfflineAction].
type ActionType string

const (
	// ActionCreate replays as POST on the action endpoint.
	ActionCreate ActionType = "create"
	// ActionUpdate replays as PUT on the action endpoint.
	ActionUpdate ActionType = "update"
	// ActionDelete replays as DELETE on the action endpoint.
	ActionDelete ActionType = "delete"
)

// Valid reports whether t is one of the known action types.
func (t ActionType) Valid() bool {
	switch t {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// OfflineAction is a mutation that could not complete synchronously and waits
// in the queue for replay against the remote API.
//
// ID and Timestamp are assigned at enqueue time and never change afterwards.
// RetryCount grows by one on every failed replay pass.
type OfflineAction struct {
	// ID is a time-ordered unique identifier.
	ID string `json:"id"`

	// Type selects the HTTP method used on replay.
	Type ActionType `json:"type"`

	// Endpoint is the logical resource path, e.g. "/time-records/42".
	Endpoint string `json:"endpoint"`

	// Payload is the opaque mutation body sent on replay.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Timestamp is the enqueue time.
	Timestamp time.Time `json:"timestamp"`

	// RetryCount is the number of replay passes that ended in failure.
	RetryCount int `json:"retry_count"`

	// LocalID links the action to an [OfflineRecord] mirror, if any.
	LocalID string `json:"local_id,omitempty"`
}

// Clone returns a deep copy of a.
func (a OfflineAction) Clone() OfflineAction {
	a.Payload = slices.Clone(a.Payload)
	return a
}

// GetID returns the action identifier.
func (a OfflineAction) GetID() string { return a.ID }
