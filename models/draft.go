// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
	"time"
)

// FormDraft is the last auto-saved state of an in-progress form.
type FormDraft struct {
	FormID  string          `json:"form_id"`
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"saved_at"`
}

// Clone returns a deep copy of d.
func (d FormDraft) Clone() FormDraft {
	d.Data = slices.Clone(d.Data)
	return d
}

// GetID returns the form identifier.
func (d FormDraft) GetID() string { return d.FormID }
