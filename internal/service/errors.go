// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncInProgress is reported when a drain is requested while another
	// one is running.
	ErrSyncInProgress = errors.New("sync already in progress")

	// Validation errors wrap the validators error that caused them.
	ErrInvalidTimeRecord = errors.New("invalid time record")
	ErrInvalidAction     = errors.New("invalid offline action")
	ErrInvalidDraft      = errors.New("invalid form draft")

	ErrTimeRecordNotFound = errors.New("time record not found")
	ErrTimeRecordConflict = errors.New("time record conflict")
	ErrTokenIsExpired     = errors.New("token is expired")
	ErrAccessDenied       = errors.New("access denied")
)
