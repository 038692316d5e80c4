// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRecordID     = errors.New("time record id is required")
	ErrEmptyProjectName  = errors.New("project name is required")
	ErrEmptyStartTime    = errors.New("start time is required")
	ErrEndBeforeStart    = errors.New("end time is before start time")
	ErrEmptyTag          = errors.New("tags cannot contain empty values")
	ErrInvalidActionType = errors.New("invalid action type")
	ErrEmptyEndpoint     = errors.New("endpoint is required")
	ErrInvalidEndpoint   = errors.New("endpoint must be an absolute path")
	ErrInvalidPayload    = errors.New("payload is not valid JSON")
	ErrEmptyFormID       = errors.New("form id is required")
	ErrInvalidDraftData  = errors.New("draft data is not valid JSON")
)
