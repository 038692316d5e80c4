// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	api "github.com/MKhiriev/go-time-keeper/internal/handler/http"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/mock"
	"github.com/MKhiriev/go-time-keeper/internal/retry"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/models"
)

type testEnv struct {
	status  *mock.MockOfflineStatusFacade
	records *mock.MockTimeRecordService
	url     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		status:  mock.NewMockOfflineStatusFacade(ctrl),
		records: mock.NewMockTimeRecordService(ctrl),
	}
	h := api.NewHandler(&service.ClientServices{
		Status:            env.status,
		TimeRecordService: env.records,
	}, models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"), logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	env.url = srv.URL

	return env
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return e.runWithInput(t, "", args...)
}

func (e *testEnv) runWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(models.NewAppBuildInfo("0.3.0", "2026-10-02", "def456"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--address", e.url}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(models.AppBuildInfo{})
	require.NotNil(t, cmd)
	assert.Equal(t, "synctl", cmd.Use)

	for _, name := range []string{"status", "sync", "clear", "draft", "time-records", "watch", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	for _, path := range [][]string{{"draft", "get"}, {"draft", "save"}, {"draft", "rm"}, {"time-records", "offline"}, {"records", "create"}} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[1], sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Setenv(AddressEnv, "")
	cmd := NewRootCommand(models.AppBuildInfo{})

	address := cmd.PersistentFlags().Lookup("address")
	require.NotNil(t, address)
	assert.Equal(t, "a", address.Shorthand)
	assert.Equal(t, "127.0.0.1:7070", address.DefValue)

	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
	assert.Equal(t, "10s", cmd.PersistentFlags().Lookup("timeout").DefValue)

	t.Setenv(AddressEnv, "127.0.0.1:9999")
	cmd = NewRootCommand(models.AppBuildInfo{})
	assert.Equal(t, "127.0.0.1:9999", cmd.PersistentFlags().Lookup("address").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "--format", "yaml", "status")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestStatus(t *testing.T) {
	env := newTestEnv(t)
	env.status.EXPECT().Status().Return(models.SyncStatus{IsOnline: true, PendingActions: 3}).Times(2)

	out, err := env.run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "online")
	assert.Contains(t, out, "Pending actions")

	out, err = env.run(t, "--format", "json", "status")
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_online":true,"is_reconnecting":false,"is_syncing":false,"pending_actions":3,"has_unsaved_changes":false}`, out)
}

func TestStatus_Unreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	env := &testEnv{url: url}
	_, err := env.run(t, "status")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "control api unreachable")
}

func TestSync(t *testing.T) {
	tests := []struct {
		name     string
		result   models.SyncResult
		wantCode int
		wantOut  string
	}{
		{
			name:     "all synced",
			result:   models.SyncResult{Success: true, SyncedActions: 2, Errors: []string{}},
			wantCode: ExitSuccess,
			wantOut:  "success",
		},
		{
			name: "some failed",
			result: models.SyncResult{
				SyncedActions: 1,
				FailedActions: 1,
				Errors:        []string{"Failed to sync create /time-records: bad request"},
			},
			wantCode: ExitFailure,
			wantOut:  "bad request",
		},
		{
			name:     "already syncing",
			result:   models.SyncResult{Errors: []string{service.ErrSyncInProgress.Error()}},
			wantCode: ExitFailure,
			wantOut:  "sync already in progress",
		},
		{
			name:     "offline",
			result:   models.SyncResult{Errors: []string{retry.ErrNoConnectivity.Error()}},
			wantCode: ExitFailure,
			wantOut:  retry.ErrNoConnectivity.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.status.EXPECT().SyncNow(gomock.Any()).Return(tt.result)

			out, err := env.run(t, "sync")
			assert.Equal(t, tt.wantCode, GetExitCode(err))
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestClear(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.run(t, "clear")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("clears", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().ClearOfflineData(gomock.Any()).Return(nil)

		out, err := env.run(t, "clear", "--yes")
		require.NoError(t, err)
		assert.Contains(t, out, "offline data cleared")
	})

	t.Run("server failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().ClearOfflineData(gomock.Any()).Return(errors.New("disk full"))

		_, err := env.run(t, "clear", "-y")
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, err.Error(), "clearing offline data failed")
		assert.NotContains(t, err.Error(), "disk full")
	})
}

func TestDraft(t *testing.T) {
	saved := time.Date(2026, 4, 6, 9, 30, 0, 0, time.UTC)

	t.Run("get", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().GetDraft("timesheet").Return(models.FormDraft{
			FormID:  "timesheet",
			Data:    json.RawMessage(`{"hours":2}`),
			SavedAt: saved,
		}, true)

		out, err := env.run(t, "draft", "get", "timesheet")
		require.NoError(t, err)
		assert.Contains(t, out, `{"hours":2}`)
	})

	t.Run("get missing", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().GetDraft("timesheet").Return(models.FormDraft{}, false)

		_, err := env.run(t, "draft", "get", "timesheet")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDraftNotFound)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	})

	t.Run("save from argument", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().SaveDraft("timesheet", json.RawMessage(`{"hours":2}`)).Return(nil)

		out, err := env.run(t, "draft", "save", "timesheet", `{"hours":2}`)
		require.NoError(t, err)
		assert.Contains(t, out, "draft scheduled for timesheet")
	})

	t.Run("save from stdin", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().SaveDraft("timesheet", json.RawMessage(`{"hours":3}`)).Return(nil)

		_, err := env.runWithInput(t, `{"hours":3}`, "draft", "save", "timesheet", "--file", "-")
		require.NoError(t, err)
	})

	t.Run("save rejects invalid json locally", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.run(t, "draft", "save", "timesheet", `{"hours":`)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("save rejected by the client", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().SaveDraft("timesheet", gomock.Any()).Return(service.ErrInvalidDraft)

		_, err := env.run(t, "draft", "save", "timesheet", `[]`)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("rm", func(t *testing.T) {
		env := newTestEnv(t)
		env.status.EXPECT().RemoveDraft("timesheet")

		out, err := env.run(t, "draft", "rm", "timesheet")
		require.NoError(t, err)
		assert.Contains(t, out, "draft removed for timesheet")
	})
}

func TestTimeRecords(t *testing.T) {
	t.Run("offline list", func(t *testing.T) {
		env := newTestEnv(t)
		env.records.EXPECT().ListOffline().Return([]models.OfflineRecord{{
			LocalID:   "local-1",
			Record:    models.TimeRecord{ProjectName: "Acme"},
			IsOffline: true,
		}})

		out, err := env.run(t, "time-records", "offline")
		require.NoError(t, err)
		assert.Contains(t, out, "local-1")
		assert.Contains(t, out, "Acme")
	})

	t.Run("create queued", func(t *testing.T) {
		env := newTestEnv(t)
		env.records.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r models.TimeRecord) (models.RecordOutcome, error) {
				assert.Equal(t, "Acme", r.ProjectName)
				assert.Equal(t, "planning", r.Description)
				assert.Equal(t, []string{"meeting", "q2"}, r.Tags)
				assert.True(t, r.StartTime.Equal(time.Date(2026, 4, 6, 9, 30, 0, 0, time.UTC)))
				assert.NotNil(t, r.EndTime)
				return models.RecordOutcome{Queued: true, ActionID: "a-1", LocalID: "local-1"}, nil
			})

		out, err := env.run(t, "--format", "json", "time-records", "create",
			"--project", "Acme",
			"--description", "planning",
			"--start", "2026-04-06T09:30:00Z",
			"--end", "2026-04-06T10:30:00Z",
			"--tags", "meeting,q2",
		)
		require.NoError(t, err)
		assert.JSONEq(t, `{"queued":true,"action_id":"a-1","local_id":"local-1"}`, out)
	})

	t.Run("create needs a project", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.run(t, "time-records", "create")
		require.Error(t, err)
	})

	t.Run("create rejects a bad start", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.run(t, "time-records", "create", "--project", "Acme", "--start", "yesterday")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("update applied", func(t *testing.T) {
		env := newTestEnv(t)
		env.records.EXPECT().Update(gomock.Any(), "42", gomock.Any()).
			Return(models.RecordOutcome{Record: &models.TimeRecord{ID: "42", ProjectName: "Acme"}}, nil)

		out, err := env.run(t, "time-records", "update", "42", "--project", "Acme")
		require.NoError(t, err)
		assert.Contains(t, out, "applied record 42")
	})

	t.Run("delete applied", func(t *testing.T) {
		env := newTestEnv(t)
		env.records.EXPECT().Delete(gomock.Any(), "42").Return(models.RecordOutcome{}, nil)

		out, err := env.run(t, "time-records", "delete", "42")
		require.NoError(t, err)
		assert.Contains(t, out, "applied")
	})

	t.Run("delete terminal failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.records.EXPECT().Delete(gomock.Any(), "42").Return(models.RecordOutcome{}, service.ErrTimeRecordNotFound)

		_, err := env.run(t, "time-records", "delete", "42")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "--format", "json", "version")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"0.3.0","date":"2026-10-02","commit":"def456","client_version":"1.4.0"}`, out)
}

func TestRecordOptions(t *testing.T) {
	now := time.Date(2026, 4, 6, 9, 30, 15, 500, time.UTC)
	opts := &RecordOptions{Project: "Acme", now: func() time.Time { return now }}

	record, err := opts.record()
	require.NoError(t, err)
	assert.Equal(t, now.Truncate(time.Second), record.StartTime)
	assert.Nil(t, record.EndTime)

	opts.Start = "2026-04-06T10:00:00Z"
	opts.End = "2026-04-06T09:00:00Z"
	_, err = opts.record()
	assert.ErrorContains(t, err, "before the start")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := WrapExitError(ExitFailure, "failed to sync", &APIError{StatusCode: 500, Message: "internal"})
	assert.Equal(t, "failed to sync: control api answered 500: internal", wrapped.Error())
}
