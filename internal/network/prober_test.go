// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

// stubPinger returns the configured error and counts calls.
type stubPinger struct {
	mu    sync.Mutex
	err   error
	calls atomic.Int64
}

func (s *stubPinger) Ping(ctx context.Context) error {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *stubPinger) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

type probeErr struct{ retryable bool }

func (e probeErr) Error() string   { return "probe failed" }
func (e probeErr) Retryable() bool { return e.retryable }

func newProberUnderTest(p Pinger, online bool) (*Prober, *Monitor) {
	m := NewMonitor(online, 0, clock.NewFake(epoch), logger.Nop())
	return NewProber(p, m, 10*time.Millisecond, time.Second, logger.Nop()), m
}

func TestProber_Probe(t *testing.T) {
	tests := []struct {
		name       string
		initial    bool
		err        error
		wantOnline bool
	}{
		{name: "success marks online", initial: false, err: nil, wantOnline: true},
		{name: "transport failure marks offline", initial: true, err: probeErr{retryable: true}, wantOnline: false},
		{name: "plain error marks offline", initial: true, err: errors.New("dial tcp: refused"), wantOnline: false},
		{name: "client error proves reachability", initial: false, err: probeErr{retryable: false}, wantOnline: true},
		{name: "timeout marks offline", initial: true, err: context.DeadlineExceeded, wantOnline: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m := newProberUnderTest(&stubPinger{err: tt.err}, tt.initial)
			p.Probe(context.Background())
			assert.Equal(t, tt.wantOnline, m.IsOnline())
		})
	}
}

func TestProber_Probe_CancelledLeavesStateUntouched(t *testing.T) {
	p, m := newProberUnderTest(&stubPinger{err: context.Canceled}, true)

	p.Probe(context.Background())
	assert.True(t, m.IsOnline())
}

func TestProber_StartStop(t *testing.T) {
	pinger := &stubPinger{}
	p, m := newProberUnderTest(pinger, false)

	p.Start(context.Background())
	assert.Eventually(t, m.IsOnline, time.Second, 5*time.Millisecond)

	pinger.setErr(probeErr{retryable: true})
	assert.Eventually(t, func() bool { return !m.IsOnline() }, time.Second, 5*time.Millisecond)

	p.Stop()
	calls := pinger.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, pinger.calls.Load(), "no probes after Stop")
}

func TestProber_Stop_BeforeStart_NoPanic(t *testing.T) {
	p, _ := newProberUnderTest(&stubPinger{}, true)
	assert.NotPanics(t, func() { p.Stop() })
}

func TestProber_ContextCancelStopsLoop(t *testing.T) {
	pinger := &stubPinger{}
	p, _ := newProberUnderTest(pinger, true)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	assert.Eventually(t, func() bool { return pinger.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	p.Stop()

	calls := pinger.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, pinger.calls.Load())
}
