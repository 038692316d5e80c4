package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Source feeds the dashboard. Stream blocks until ctx is done or the event
// stream ends.
type Source interface {
	Stream(ctx context.Context, onStatus func(models.SyncStatus), onResult func(models.SyncResult)) error
	SyncNow(ctx context.Context) (models.SyncResult, error)
}

type TUI struct {
	source Source
	logger *logger.Logger
}

func New(source Source, log *logger.Logger) *TUI {
	return &TUI{source: source, logger: log}
}

// Watch runs the live sync dashboard until the user quits or ctx is done.
func (t *TUI) Watch(ctx context.Context, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(newDashboardModel(ctx, t.source), opts...)

	go func() {
		err := t.source.Stream(ctx,
			func(s models.SyncStatus) { p.Send(statusMsg{status: s}) },
			func(r models.SyncResult) { p.Send(resultMsg{result: r}) },
		)
		if ctx.Err() != nil {
			return
		}
		t.logger.Debug().Err(err).Str("func", "TUI.Watch").Msg("event stream closed")
		p.Send(streamClosedMsg{err: err})
	}()

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
