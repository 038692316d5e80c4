// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-time-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 2 * time.Second

type dashboardModel struct {
	ctx    context.Context
	source Source
	copy   func(string) error

	status     models.SyncStatus
	hasStatus  bool
	lastResult *models.SyncResult
	lastError  string
	streamErr  string
	notice     string
	requested  bool

	syncScreen   syncModel
	showError    bool
	errorOverlay errorOverlayModel
	width        int
}

func newDashboardModel(ctx context.Context, source Source) dashboardModel {
	return dashboardModel{
		ctx:        ctx,
		source:     source,
		copy:       clipboard.WriteAll,
		syncScreen: newSyncModel(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case statusMsg:
		m.status = msg.status
		m.hasStatus = true
		m.streamErr = ""
		cmd := m.setRunning(m.requested || m.status.IsSyncing)
		return m, cmd

	case resultMsg:
		m.applyResult(msg.result)
		return m, nil

	case syncDoneMsg:
		m.requested = false
		m.syncScreen.running = m.status.IsSyncing
		if msg.err != nil {
			m.lastError = humanizeControlUnavailableError(msg.err)
			return m, nil
		}
		m.applyResult(msg.result)
		return m, nil

	case streamClosedMsg:
		m.streamErr = "event stream closed"
		if msg.err != nil {
			m.streamErr += ": " + humanizeControlUnavailableError(msg.err)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.notice = "Copied!"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case spinner.TickMsg:
		if !m.syncScreen.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.syncScreen.spinner, cmd = m.syncScreen.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showError {
		switch {
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			m.showError = false
			m.errorOverlay.message = ""
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(m.errorOverlay.message)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.sync):
		if m.requested {
			return m, nil
		}
		m.requested = true
		tick := m.setRunning(true)
		return m, tea.Batch(tick, m.cmdSync())

	case key.Matches(msg, keys.copy):
		if m.lastError == "" {
			m.notice = "nothing to copy"
			return m, cmdClearStatus()
		}
		return m, m.cmdCopy(m.lastError)

	case key.Matches(msg, keys.showError):
		if m.lastError != "" {
			m.showError = true
			m.errorOverlay.message = m.lastError
		}
	}

	return m, nil
}

func (m *dashboardModel) applyResult(r models.SyncResult) {
	r = r.Clone()
	m.lastResult = &r
	if len(r.Errors) > 0 {
		m.lastError = r.Errors[len(r.Errors)-1]
	}
}

// setRunning toggles the spinner and returns the tick that starts it.
func (m *dashboardModel) setRunning(running bool) tea.Cmd {
	started := running && !m.syncScreen.running
	m.syncScreen.running = running
	if started {
		return m.syncScreen.spinner.Tick
	}
	return nil
}

func (m dashboardModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}

	var b strings.Builder
	if m.hasStatus {
		b.WriteString(RenderStatus(m.status))
	} else {
		b.WriteString(m.syncScreen.spinner.View() + " waiting for the first status...")
	}

	if spin := m.syncScreen.View(); spin != "" {
		b.WriteString("\n")
		b.WriteString(spin)
	}

	if m.lastResult != nil {
		b.WriteString("\n\n")
		b.WriteString(RenderResult(*m.lastResult))
	}

	if m.lastError != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Last error: " + fitText(m.lastError, m.lineWidth())))
	}
	if m.streamErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.streamErr))
	}
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(m.notice)
	}

	return appStyle.Render(renderPage("TIME KEEPER SYNC", b.String(), "s: sync now   c: copy last error   e: show last error"))
}

func (m dashboardModel) lineWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-20, 10)
}

func (m dashboardModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	source := m.source
	return func() tea.Msg {
		result, err := source.SyncNow(ctx)
		return syncDoneMsg{result: result, err: err}
	}
}

func (m dashboardModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
