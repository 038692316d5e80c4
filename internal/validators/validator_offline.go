// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-time-keeper/models"
)

// Field names accepted by [OfflineValidator.Validate].
const (
	FieldRecordID    = "id"
	FieldProjectName = "project_name"
	FieldStartTime   = "start_time"
	FieldTimeRange   = "time_range"
	FieldTags        = "tags"

	FieldActionType = "type"
	FieldEndpoint   = "endpoint"
	FieldPayload    = "payload"

	FieldFormID    = "form_id"
	FieldDraftData = "data"
)

// OfflineValidator implements [Validator] for TimeRecord, OfflineAction and
// FormDraft.
type OfflineValidator struct{}

func NewOfflineValidator() *OfflineValidator {
	return &OfflineValidator{}
}

func (v *OfflineValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.TimeRecord:
		return v.validateTimeRecord(ctx, value, fields...)
	case *models.TimeRecord:
		return v.validateTimeRecord(ctx, *value, fields...)

	case models.OfflineAction:
		return v.validateAction(ctx, value, fields...)
	case *models.OfflineAction:
		return v.validateAction(ctx, *value, fields...)

	case models.FormDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.FormDraft:
		return v.validateDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *OfflineValidator) validateTimeRecord(_ context.Context, record models.TimeRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProjectName, FieldStartTime, FieldTimeRange, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if strings.TrimSpace(record.ID) == "" {
				return ErrEmptyRecordID
			}
		case FieldProjectName:
			if strings.TrimSpace(record.ProjectName) == "" {
				return ErrEmptyProjectName
			}
		case FieldStartTime:
			if record.StartTime.IsZero() {
				return ErrEmptyStartTime
			}
		case FieldTimeRange:
			if record.EndTime != nil && record.EndTime.Before(record.StartTime) {
				return ErrEndBeforeStart
			}
		case FieldTags:
			for _, tag := range record.Tags {
				if strings.TrimSpace(tag) == "" {
					return ErrEmptyTag
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OfflineValidator) validateAction(_ context.Context, action models.OfflineAction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActionType, FieldEndpoint, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldActionType:
			if !action.Type.Valid() {
				return ErrInvalidActionType
			}
		case FieldEndpoint:
			if action.Endpoint == "" {
				return ErrEmptyEndpoint
			}
			if !strings.HasPrefix(action.Endpoint, "/") {
				return ErrInvalidEndpoint
			}
		case FieldPayload:
			if len(action.Payload) > 0 && !json.Valid(action.Payload) {
				return ErrInvalidPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OfflineValidator) validateDraft(_ context.Context, draft models.FormDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormID, FieldDraftData}
	}

	for _, f := range fields {
		switch f {
		case FieldFormID:
			if strings.TrimSpace(draft.FormID) == "" {
				return ErrEmptyFormID
			}
		case FieldDraftData:
			if len(draft.Data) > 0 && !json.Valid(draft.Data) {
				return ErrInvalidDraftData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
