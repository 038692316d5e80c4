// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-keeper/internal/app"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/mock"
	"github.com/MKhiriev/go-time-keeper/internal/retry"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/validators"
	"github.com/MKhiriev/go-time-keeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testAPI struct {
	status  *mock.MockOfflineStatusFacade
	records *mock.MockTimeRecordService
	handler *Handler
	router  http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	status := mock.NewMockOfflineStatusFacade(ctrl)
	records := mock.NewMockTimeRecordService(ctrl)
	h := NewHandler(&service.ClientServices{
		Status:            status,
		TimeRecordService: records,
	}, models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop())

	return &testAPI{status: status, records: records, handler: h, router: h.Init()}
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

const recordBody = `{"projectName":"Acme","startTime":"2026-04-06T09:30:00Z"}`

// ─────────────────────────────────────────────
// Status / sync / clear
// ─────────────────────────────────────────────

func TestHandler_GetStatus(t *testing.T) {
	api := newTestAPI(t)
	last := time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)
	api.status.EXPECT().Status().Return(models.SyncStatus{IsOnline: true, PendingActions: 2, LastSync: &last})

	rr := api.do(http.MethodGet, RouteStatus, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	got := decode[models.SyncStatus](t, rr)
	assert.True(t, got.IsOnline)
	assert.Equal(t, 2, got.PendingActions)
	require.NotNil(t, got.LastSync)
	assert.True(t, last.Equal(*got.LastSync))
}

func TestHandler_SyncNow(t *testing.T) {
	tests := []struct {
		name   string
		result models.SyncResult
		want   int
	}{
		{"success", models.SyncResult{Success: true, SyncedActions: 3, Errors: []string{}}, http.StatusOK},
		{"empty queue", models.SyncResult{Success: true, Errors: []string{}}, http.StatusOK},
		{"partial failure", models.SyncResult{SyncedActions: 1, FailedActions: 1, Errors: []string{"Failed to sync create /time-records: bad request"}}, http.StatusOK},
		{"already syncing", models.SyncResult{Errors: []string{service.ErrSyncInProgress.Error()}}, http.StatusConflict},
		{"offline", models.SyncResult{Errors: []string{retry.ErrNoConnectivity.Error()}}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.status.EXPECT().SyncNow(gomock.Any()).Return(tt.result)

			rr := api.do(http.MethodPost, RouteSync, "")
			assert.Equal(t, tt.want, rr.Code)
			got := decode[models.SyncResult](t, rr)
			assert.Equal(t, tt.result.Errors, got.Errors)
			assert.Equal(t, tt.result.SyncedActions, got.SyncedActions)
		})
	}
}

func TestHandler_ClearOfflineData(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		api := newTestAPI(t)
		api.status.EXPECT().ClearOfflineData(gomock.Any()).Return(nil)

		rr := api.do(http.MethodDelete, RouteOfflineData, "")
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("flush failure", func(t *testing.T) {
		api := newTestAPI(t)
		api.status.EXPECT().ClearOfflineData(gomock.Any()).Return(context.DeadlineExceeded)

		rr := api.do(http.MethodDelete, RouteOfflineData, "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), app.MsgClearFailed)
	})
}

// ─────────────────────────────────────────────
// Drafts
// ─────────────────────────────────────────────

func TestHandler_Drafts(t *testing.T) {
	t.Run("save is accepted", func(t *testing.T) {
		api := newTestAPI(t)
		api.status.EXPECT().SaveDraft("timer-form", json.RawMessage(`{"project":"Acme"}`)).Return(nil)

		rr := api.do(http.MethodPut, "/api/drafts/timer-form", `{"project":"Acme"}`)
		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("save invalid", func(t *testing.T) {
		api := newTestAPI(t)
		api.status.EXPECT().SaveDraft("timer-form", gomock.Any()).
			Return(fmt.Errorf("%w: %w", service.ErrInvalidDraft, validators.ErrInvalidDraftData))

		rr := api.do(http.MethodPut, "/api/drafts/timer-form", `{"project"`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid form draft")
	})

	t.Run("save too large", func(t *testing.T) {
		api := newTestAPI(t)

		rr := api.do(http.MethodPut, "/api/drafts/timer-form", `"`+strings.Repeat("x", maxDraftSize)+`"`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("get", func(t *testing.T) {
		api := newTestAPI(t)
		saved := time.Date(2026, 4, 6, 9, 30, 0, 0, time.UTC)
		api.status.EXPECT().GetDraft("timer-form").
			Return(models.FormDraft{FormID: "timer-form", Data: json.RawMessage(`{"project":"Acme"}`), SavedAt: saved}, true)

		rr := api.do(http.MethodGet, "/api/drafts/timer-form", "")
		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[models.FormDraft](t, rr)
		assert.Equal(t, "timer-form", got.FormID)
		assert.JSONEq(t, `{"project":"Acme"}`, string(got.Data))
	})

	t.Run("get missing", func(t *testing.T) {
		api := newTestAPI(t)
		api.status.EXPECT().GetDraft("other").Return(models.FormDraft{}, false)

		rr := api.do(http.MethodGet, "/api/drafts/other", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), app.MsgDraftNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		api := newTestAPI(t)
		api.status.EXPECT().RemoveDraft("timer-form")

		rr := api.do(http.MethodDelete, "/api/drafts/timer-form", "")
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

// ─────────────────────────────────────────────
// Time records
// ─────────────────────────────────────────────

func TestHandler_CreateTimeRecord(t *testing.T) {
	created := models.TimeRecord{ID: "42", ProjectName: "Acme"}

	tests := []struct {
		name     string
		body     string
		setup    func(api *testAPI)
		wantCode int
	}{
		{
			name: "applied online",
			body: recordBody,
			setup: func(api *testAPI) {
				api.records.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r models.TimeRecord) (models.RecordOutcome, error) {
						assert.Equal(t, "Acme", r.ProjectName)
						return models.RecordOutcome{Record: &created}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "queued offline",
			body: recordBody,
			setup: func(api *testAPI) {
				api.records.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(models.RecordOutcome{Queued: true, ActionID: "a1", LocalID: "l1"}, nil)
			},
			wantCode: http.StatusAccepted,
		},
		{
			name:     "invalid json",
			body:     `{"projectName":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"projectName":""}`,
			setup: func(api *testAPI) {
				api.records.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(models.RecordOutcome{}, fmt.Errorf("%w: %w", service.ErrInvalidTimeRecord, validators.ErrEmptyProjectName))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "expired token",
			body: recordBody,
			setup: func(api *testAPI) {
				api.records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.RecordOutcome{}, service.ErrTokenIsExpired)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unexpected failure",
			body: recordBody,
			setup: func(api *testAPI) {
				api.records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.RecordOutcome{}, errors.New("decode response"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.setup != nil {
				tt.setup(api)
			}

			rr := api.do(http.MethodPost, RouteTimeRecords, tt.body)
			assert.Equal(t, tt.wantCode, rr.Code, rr.Body.String())
		})
	}
}

func TestHandler_UpdateTimeRecord(t *testing.T) {
	api := newTestAPI(t)
	api.records.EXPECT().Update(gomock.Any(), "7", gomock.Any()).
		Return(models.RecordOutcome{}, service.ErrTimeRecordNotFound)
	api.records.EXPECT().Update(gomock.Any(), "8", gomock.Any()).
		Return(models.RecordOutcome{Queued: true, ActionID: "a2"}, nil)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPut, "/api/time-records/7", recordBody).Code)

	rr := api.do(http.MethodPut, "/api/time-records/8", recordBody)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "a2", decode[models.RecordOutcome](t, rr).ActionID)
}

func TestHandler_DeleteTimeRecord(t *testing.T) {
	api := newTestAPI(t)
	api.records.EXPECT().Delete(gomock.Any(), "1").Return(models.RecordOutcome{}, nil)
	api.records.EXPECT().Delete(gomock.Any(), "2").Return(models.RecordOutcome{Queued: true, ActionID: "a3"}, nil)
	api.records.EXPECT().Delete(gomock.Any(), "3").Return(models.RecordOutcome{}, service.ErrTimeRecordConflict)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/time-records/1", "").Code)
	assert.Equal(t, http.StatusAccepted, api.do(http.MethodDelete, "/api/time-records/2", "").Code)
	assert.Equal(t, http.StatusConflict, api.do(http.MethodDelete, "/api/time-records/3", "").Code)
}

func TestHandler_ListOfflineRecords(t *testing.T) {
	api := newTestAPI(t)
	api.records.EXPECT().ListOffline().Return(nil)
	api.records.EXPECT().ListOffline().Return([]models.OfflineRecord{{LocalID: "l1", IsOffline: true}})

	rr := api.do(http.MethodGet, RouteOfflineRecords, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = api.do(http.MethodGet, RouteOfflineRecords, "")
	got := decode[[]models.OfflineRecord](t, rr)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].LocalID)
}

// ─────────────────────────────────────────────
// Routing / version
// ─────────────────────────────────────────────

func TestHandler_Routing(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgRouteNotFound)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, RouteSync, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, "/api/drafts/x", "").Code)
	assert.NotEmpty(t, api.do(http.MethodGet, "/api/unknown", "").Header().Get(traceIDHeader))
}

func TestHandler_Version(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, RouteVersion, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rr.Body.String())
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(fmt.Errorf("wrap: %w", service.ErrInvalidAction)))
	assert.Equal(t, http.StatusForbidden, statusFromError(service.ErrAccessDenied))
	assert.Equal(t, http.StatusServiceUnavailable, statusFromError(retry.ErrNoConnectivity))
	assert.Equal(t, http.StatusGatewayTimeout, statusFromError(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom")))
}

// ─────────────────────────────────────────────
// Event stream
// ─────────────────────────────────────────────

type sseFrame struct {
	event string
	data  string
}

func readFrame(t *testing.T, r *bufio.Reader) sseFrame {
	t.Helper()
	var f sseFrame
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if f.event != "" {
				return f
			}
		case strings.HasPrefix(line, "event: "):
			f.event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			f.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestHandler_Events(t *testing.T) {
	api := newTestAPI(t)
	api.handler.keepAlive = 20 * time.Millisecond

	statusFns := make(chan func(models.SyncStatus), 1)
	resultFns := make(chan func(models.SyncResult), 1)
	unsubscribed := make(chan struct{}, 2)

	api.status.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(models.SyncStatus)) func() {
		statusFns <- fn
		return func() { unsubscribed <- struct{}{} }
	})
	api.status.EXPECT().SubscribeResults(gomock.Any()).DoAndReturn(func(fn func(models.SyncResult)) func() {
		resultFns <- fn
		return func() { unsubscribed <- struct{}{} }
	})
	api.status.EXPECT().Status().Return(models.SyncStatus{PendingActions: 1})

	srv := httptest.NewServer(api.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+RouteEvents, nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	first := readFrame(t, reader)
	assert.Equal(t, EventStatus, first.event)
	assert.JSONEq(t, `{"is_online":false,"is_reconnecting":false,"is_syncing":false,"pending_actions":1,"has_unsaved_changes":false}`, first.data)

	pushStatus := <-statusFns
	pushResult := <-resultFns

	pushStatus(models.SyncStatus{IsOnline: true, IsSyncing: true})
	frame := readFrame(t, reader)
	assert.Equal(t, EventStatus, frame.event)
	assert.Contains(t, frame.data, `"is_syncing":true`)

	pushResult(models.SyncResult{Success: true, SyncedActions: 2, Errors: []string{}})
	frame = readFrame(t, reader)
	assert.Equal(t, EventResult, frame.event)
	assert.Contains(t, frame.data, `"synced_actions":2`)

	// keep-alive comments are skipped by readFrame; the stream stays open
	time.Sleep(50 * time.Millisecond)
	pushStatus(models.SyncStatus{})
	assert.Equal(t, EventStatus, readFrame(t, reader).event)

	cancel()
	for i := 0; i < 2; i++ {
		select {
		case <-unsubscribed:
		case <-time.After(3 * time.Second):
			t.Fatal("stream did not unsubscribe after the client left")
		}
	}
}
