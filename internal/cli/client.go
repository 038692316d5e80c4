// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	api "github.com/MKhiriev/go-time-keeper/internal/handler/http"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
)

// ErrDraftNotFound is returned by GetDraft when no draft is stored for the form.
var ErrDraftNotFound = errors.New("draft not found")

// APIError is a non-2xx answer of the control API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("control api answered %d", e.StatusCode)
	}
	return fmt.Sprintf("control api answered %d: %s", e.StatusCode, e.Message)
}

// ControlClient talks to the control API of a running time-keeper client.
type ControlClient struct {
	http *utils.HTTPClient

	// stream has no overall timeout, the event stream is long-lived.
	stream *utils.HTTPClient
}

// NewControlClient creates a client for the control API at address.
func NewControlClient(address string, timeout time.Duration) (*ControlClient, error) {
	client, err := utils.NewHTTPClient(address, timeout)
	if err != nil {
		return nil, err
	}
	stream, err := utils.NewHTTPClient(address, 0)
	if err != nil {
		return nil, err
	}

	return &ControlClient{http: client, stream: stream}, nil
}

// Status returns the current offline status.
func (c *ControlClient) Status(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus
	resp, err := c.http.R().SetContext(ctx).Get(api.RouteStatus)
	if err = decode(resp, err, &status); err != nil {
		return models.SyncStatus{}, err
	}
	return status, nil
}

// SyncNow runs one drain pass. A pass refused because a sync is already
// running or the client is offline is returned as a result, not an error.
func (c *ControlClient) SyncNow(ctx context.Context) (models.SyncResult, error) {
	resp, err := c.http.R().SetContext(ctx).Post(api.RouteSync)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("control api unreachable: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusConflict, http.StatusServiceUnavailable:
		var result models.SyncResult
		if err = json.Unmarshal(resp.Body(), &result); err != nil {
			return models.SyncResult{}, fmt.Errorf("decode sync result: %w", err)
		}
		return result, nil
	}

	return models.SyncResult{}, apiError(resp)
}

// ClearOfflineData wipes the queue, the offline mirror and the drafts.
func (c *ControlClient) ClearOfflineData(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Delete(api.RouteOfflineData)
	return decode(resp, err, nil)
}

// GetDraft returns the stored draft of formID.
func (c *ControlClient) GetDraft(ctx context.Context, formID string) (models.FormDraft, error) {
	var draft models.FormDraft
	resp, err := c.http.R().SetContext(ctx).SetPathParam("formID", formID).Get(api.RouteDraft)
	if err == nil && resp.StatusCode() == http.StatusNotFound {
		return models.FormDraft{}, fmt.Errorf("%w: %s", ErrDraftNotFound, formID)
	}
	if err = decode(resp, err, &draft); err != nil {
		return models.FormDraft{}, err
	}
	return draft, nil
}

// SaveDraft hands data to the autosave debouncer of formID.
func (c *ControlClient) SaveDraft(ctx context.Context, formID string, data json.RawMessage) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("formID", formID).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(data)).
		Put(api.RouteDraft)
	return decode(resp, err, nil)
}

// RemoveDraft discards the draft of formID.
func (c *ControlClient) RemoveDraft(ctx context.Context, formID string) error {
	resp, err := c.http.R().SetContext(ctx).SetPathParam("formID", formID).Delete(api.RouteDraft)
	return decode(resp, err, nil)
}

// OfflineRecords lists records created while offline and not yet replayed.
func (c *ControlClient) OfflineRecords(ctx context.Context) ([]models.OfflineRecord, error) {
	var records []models.OfflineRecord
	resp, err := c.http.R().SetContext(ctx).Get(api.RouteOfflineRecords)
	if err = decode(resp, err, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateTimeRecord creates a record, queueing it when the backend is unreachable.
func (c *ControlClient) CreateTimeRecord(ctx context.Context, record models.TimeRecord) (models.RecordOutcome, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(record).Post(api.RouteTimeRecords)
	return decodeOutcome(resp, err)
}

// UpdateTimeRecord replaces record id.
func (c *ControlClient) UpdateTimeRecord(ctx context.Context, id string, record models.TimeRecord) (models.RecordOutcome, error) {
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).SetBody(record).Put(api.RouteTimeRecord)
	return decodeOutcome(resp, err)
}

// DeleteTimeRecord deletes record id.
func (c *ControlClient) DeleteTimeRecord(ctx context.Context, id string) (models.RecordOutcome, error) {
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", id).Delete(api.RouteTimeRecord)
	if err == nil && resp.StatusCode() == http.StatusNoContent {
		return models.RecordOutcome{}, nil
	}
	return decodeOutcome(resp, err)
}

// Version returns the build version of the running client.
func (c *ControlClient) Version(ctx context.Context) (string, error) {
	resp, err := c.http.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get(api.RouteVersion)
	if err = decode(resp, err, nil); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Stream follows the server-sent event stream until ctx is done or the
// server closes it.
func (c *ControlClient) Stream(ctx context.Context, onStatus func(models.SyncStatus), onResult func(models.SyncResult)) error {
	resp, err := c.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		Get(api.RouteEvents)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("control api unreachable: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}

	err = readEvents(body, func(event string, data []byte) error {
		switch event {
		case api.EventStatus:
			var status models.SyncStatus
			if err := json.Unmarshal(data, &status); err != nil {
				return fmt.Errorf("decode %s event: %w", event, err)
			}
			onStatus(status)
		case api.EventResult:
			var result models.SyncResult
			if err := json.Unmarshal(data, &result); err != nil {
				return fmt.Errorf("decode %s event: %w", event, err)
			}
			onResult(result)
		}
		return nil
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func decodeOutcome(resp *resty.Response, err error) (models.RecordOutcome, error) {
	var outcome models.RecordOutcome
	if err = decode(resp, err, &outcome); err != nil {
		return models.RecordOutcome{}, err
	}
	return outcome, nil
}

// decode checks the transport error and the status code, then unmarshals
// the body into v when v is not nil.
func decode(resp *resty.Response, err error, v any) error {
	if err != nil {
		return fmt.Errorf("control api unreachable: %w", err)
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	if v == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode control api response: %w", err)
	}
	return nil
}

func apiError(resp *resty.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	return apiErr
}
