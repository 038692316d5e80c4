// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-time-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	result models.SyncResult
	err    error
	calls  int
}

func (s *stubSource) Stream(ctx context.Context, _ func(models.SyncStatus), _ func(models.SyncResult)) error {
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubSource) SyncNow(context.Context) (models.SyncResult, error) {
	s.calls++
	return s.result, s.err
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m dashboardModel, msg tea.Msg) (dashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(dashboardModel)
	require.True(t, ok)
	return dm, cmd
}

// collect runs cmd and flattens batches. Only use it on commands that
// return immediately.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findSyncDone(t *testing.T, msgs []tea.Msg) syncDoneMsg {
	t.Helper()
	for _, msg := range msgs {
		if done, ok := msg.(syncDoneMsg); ok {
			return done
		}
	}
	require.Fail(t, "no syncDoneMsg produced")
	return syncDoneMsg{}
}

func TestDashboard_StatusUpdatesView(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubSource{})
	assert.Contains(t, m.View(), "waiting for the first status")

	m, cmd := update(t, m, statusMsg{status: models.SyncStatus{IsOnline: true, PendingActions: 2}})
	assert.Nil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "online")
	assert.Contains(t, view, "Pending actions")
	assert.NotContains(t, view, "waiting for the first status")
}

func TestDashboard_SpinnerFollowsSyncing(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubSource{})

	m, cmd := update(t, m, statusMsg{status: models.SyncStatus{IsOnline: true, IsSyncing: true}})
	require.NotNil(t, cmd, "spinner must start ticking")
	assert.True(t, m.syncScreen.running)
	assert.Contains(t, m.View(), "syncing...")

	m, cmd = update(t, m, statusMsg{status: models.SyncStatus{IsOnline: true, IsSyncing: true, PendingActions: 1}})
	assert.Nil(t, cmd, "already ticking")

	m, _ = update(t, m, statusMsg{status: models.SyncStatus{IsOnline: true}})
	assert.False(t, m.syncScreen.running)
	assert.NotContains(t, m.View(), "syncing...")
}

func TestDashboard_SyncNow(t *testing.T) {
	src := &stubSource{result: models.SyncResult{
		FailedActions: 1,
		Errors:        []string{"Failed to sync create /time-records: bad request"},
	}}
	m := newDashboardModel(context.Background(), src)

	m, cmd := update(t, m, runeKey('s'))
	require.NotNil(t, cmd)
	assert.True(t, m.requested)

	_, again := update(t, m, runeKey('s'))
	assert.Nil(t, again, "second press while a sync is running is ignored")

	done := findSyncDone(t, collect(cmd))
	assert.Equal(t, 1, src.calls)

	m, _ = update(t, m, done)
	assert.False(t, m.requested)
	require.NotNil(t, m.lastResult)
	assert.Equal(t, 1, m.lastResult.FailedActions)
	assert.Equal(t, "Failed to sync create /time-records: bad request", m.lastError)
	assert.Contains(t, m.View(), "Last error")
}

func TestDashboard_SyncNowUnreachable(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubSource{})

	m, _ = update(t, m, syncDoneMsg{err: errors.New("dial tcp 127.0.0.1:7070: connect: connection refused")})
	assert.Equal(t, "time-keeper client is not running or its control API is unreachable", m.lastError)
}

func TestDashboard_ResultFromStream(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubSource{})

	m, _ = update(t, m, resultMsg{result: models.SyncResult{Success: true, SyncedActions: 3}})
	require.NotNil(t, m.lastResult)
	assert.Equal(t, 3, m.lastResult.SyncedActions)
	assert.Empty(t, m.lastError)
	assert.Contains(t, m.View(), "Synced actions")
}

func TestDashboard_CopyLastError(t *testing.T) {
	var copied []string
	m := newDashboardModel(context.Background(), &stubSource{})
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	t.Run("nothing to copy", func(t *testing.T) {
		next, cmd := update(t, m, runeKey('c'))
		assert.NotNil(t, cmd)
		assert.Equal(t, "nothing to copy", next.notice)
		assert.Empty(t, copied)
	})

	t.Run("copies the last error", func(t *testing.T) {
		withErr, _ := update(t, m, resultMsg{result: models.SyncResult{Errors: []string{"first", "second"}}})

		_, cmd := update(t, withErr, runeKey('c'))
		require.NotNil(t, cmd)
		msg := cmd()
		assert.Equal(t, copiedMsg{}, msg)
		assert.Equal(t, []string{"second"}, copied)

		next, _ := update(t, withErr, msg)
		assert.Equal(t, "Copied!", next.notice)

		next, _ = update(t, next, clearStatusMsg{})
		assert.Empty(t, next.notice)
	})

	t.Run("clipboard failure", func(t *testing.T) {
		withErr, _ := update(t, m, resultMsg{result: models.SyncResult{Errors: []string{"boom"}}})
		withErr.copy = func(string) error { return errors.New("no clipboard utility") }

		_, cmd := update(t, withErr, runeKey('c'))
		next, _ := update(t, withErr, cmd())
		assert.Contains(t, next.notice, "no clipboard utility")
	})
}

func TestDashboard_ErrorOverlay(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubSource{})

	m, _ = update(t, m, runeKey('e'))
	assert.False(t, m.showError, "no error to show")

	m, _ = update(t, m, resultMsg{result: models.SyncResult{Errors: []string{"conflict"}}})
	m, _ = update(t, m, runeKey('e'))
	require.True(t, m.showError)
	assert.Contains(t, m.View(), "Last sync error")
	assert.Contains(t, m.View(), "conflict")

	m, cmd := update(t, m, runeKey('s'))
	assert.Nil(t, cmd, "keys other than close and copy are swallowed by the overlay")
	assert.False(t, m.requested)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestDashboard_StreamClosed(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubSource{})

	m, _ = update(t, m, streamClosedMsg{err: errors.New("unexpected EOF")})
	assert.Contains(t, m.View(), "event stream closed: unexpected EOF")

	m, _ = update(t, m, statusMsg{status: models.SyncStatus{IsOnline: true}})
	assert.Empty(t, m.streamErr)
}

func TestDashboard_Quit(t *testing.T) {
	m := newDashboardModel(context.Background(), &stubSource{})

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abcdef", fitText("abcdef", 0))
	assert.Equal(t, "abcdef", fitText("abcdef", 6))
	assert.Equal(t, "ab...", fitText("abcdef", 5))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
