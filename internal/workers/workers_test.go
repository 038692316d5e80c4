// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/network"
)

type ctxKey struct{}

// recordingWorker appends its lifecycle calls to a shared journal.
type recordingWorker struct {
	id      string
	journal *[]string
	ctx     context.Context
}

func (r *recordingWorker) Start(ctx context.Context) {
	r.ctx = ctx
	*r.journal = append(*r.journal, "start "+r.id)
}

func (r *recordingWorker) Stop() {
	*r.journal = append(*r.journal, "stop "+r.id)
}

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var journal []string
	a := &recordingWorker{id: "a", journal: &journal}
	b := &recordingWorker{id: "b", journal: &journal}
	c := &recordingWorker{id: "c", journal: &journal}

	ws := NewWorkers(logger.Nop(), a, b, c)
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")
	ws.Start(ctx)
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}, journal)
	assert.Equal(t, ctx, a.ctx)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

// stubPinger reports the backend unreachable until healthy is set.
type stubPinger struct{ healthy chan struct{} }

func (p *stubPinger) Ping(context.Context) error {
	select {
	case <-p.healthy:
		return nil
	default:
		return context.DeadlineExceeded
	}
}

func TestWorkers_DriveProber(t *testing.T) {
	monitor := network.NewMonitor(true, 0, clock.New(), logger.Nop())
	pinger := &stubPinger{healthy: make(chan struct{})}
	prober := network.NewProber(pinger, monitor, 5*time.Millisecond, time.Second, logger.Nop())

	ws := NewWorkers(logger.Nop(), prober)
	ws.Start(context.Background())
	defer ws.Stop()

	require.Eventually(t, func() bool { return !monitor.IsOnline() }, 3*time.Second, time.Millisecond)

	close(pinger.healthy)
	require.Eventually(t, monitor.IsOnline, 3*time.Second, time.Millisecond)
}
