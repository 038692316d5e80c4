// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
	"github.com/MKhiriev/go-time-keeper/models"
	"github.com/go-resty/resty/v2"
)

const healthPath = "/health"

// TimeRecordsPath is the collection endpoint of time records.
const TimeRecordsPath = "/time-records"

type httpRemoteAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPRemoteAPI constructs the REST implementation of [RemoteAPI].
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteAPI(adapterCfg config.ClientAdapter, log *logger.Logger) (RemoteAPI, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpRemoteAPI{
		client: client,
		now:    time.Now,
		logger: log.Component("remote-api"),
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

// SetToken implements [RemoteAPI]. A full "Bearer <token>" header value is
// accepted as well.
func (h *httpRemoteAPI) SetToken(token string) {
	token = strings.TrimSpace(token)
	if bearer, err := utils.ParseBearerToken(token); err == nil {
		token = bearer
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *httpRemoteAPI) getToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [RemoteAPI].
func (h *httpRemoteAPI) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return mapTransportError(ctx, err)
	}

	return mapHTTPError(resp)
}

// CreateTimeRecord implements [RemoteAPI].
func (h *httpRemoteAPI) CreateTimeRecord(ctx context.Context, record models.TimeRecord) (models.TimeRecord, error) {
	var created models.TimeRecord
	if err := h.do(ctx, http.MethodPost, TimeRecordsPath, record, &created); err != nil {
		return models.TimeRecord{}, err
	}

	return created, nil
}

// UpdateTimeRecord implements [RemoteAPI].
func (h *httpRemoteAPI) UpdateTimeRecord(ctx context.Context, id string, record models.TimeRecord) (models.TimeRecord, error) {
	var updated models.TimeRecord
	if err := h.do(ctx, http.MethodPut, TimeRecordPath(id), record, &updated); err != nil {
		return models.TimeRecord{}, err
	}

	return updated, nil
}

// DeleteTimeRecord implements [RemoteAPI].
func (h *httpRemoteAPI) DeleteTimeRecord(ctx context.Context, id string) error {
	return h.do(ctx, http.MethodDelete, TimeRecordPath(id), nil, nil)
}

// Replay implements [RemoteAPI].
func (h *httpRemoteAPI) Replay(ctx context.Context, action models.OfflineAction) error {
	method, err := MethodFor(action.Type)
	if err != nil {
		return err
	}

	var body any
	if len(action.Payload) > 0 {
		body = []byte(action.Payload)
	}

	err = h.do(ctx, method, action.Endpoint, body, nil)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("func", "httpRemoteAPI.Replay").
			Str("action_id", action.ID).
			Str("method", method).
			Str("endpoint", action.Endpoint).
			Msg("replay failed")
	}

	return err
}

// MethodFor returns the HTTP method used to replay an action of type t.
func MethodFor(t models.ActionType) (string, error) {
	switch t {
	case models.ActionCreate:
		return http.MethodPost, nil
	case models.ActionUpdate:
		return http.MethodPut, nil
	case models.ActionDelete:
		return http.MethodDelete, nil
	}

	return "", &RequestError{Err: fmt.Errorf("%w: %q", ErrUnknownActionType, t)}
}

// TimeRecordPath returns the endpoint of a single time record.
func TimeRecordPath(id string) string {
	return TimeRecordsPath + "/" + id
}

func (h *httpRemoteAPI) do(ctx context.Context, method, path string, body, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return mapTransportError(ctx, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result != nil && len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return &RequestError{StatusCode: resp.StatusCode(), Err: ErrInvalidPayload, Cause: err}
		}
	}

	return nil
}

func (h *httpRemoteAPI) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	token := h.getToken()
	if token == "" {
		return req, nil
	}

	if exp, ok, err := utils.TokenExpiry(token); err == nil && ok && !h.now().Before(exp) {
		return nil, &RequestError{StatusCode: http.StatusUnauthorized, Err: ErrTokenExpired}
	}

	return req.SetAuthToken(token), nil
}
