// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

// Pinger checks whether the backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober polls a Pinger and reports the outcome to a Monitor.
//
// A probe that fails with a retryable error (transport failure, timeout,
// 5xx) marks the monitor offline. Any other outcome, including a 4xx answer,
// proves the backend is reachable and marks it online.
type Prober struct {
	pinger   Pinger
	monitor  *Monitor
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber creates an idle prober. Start launches it.
func NewProber(pinger Pinger, monitor *Monitor, interval, timeout time.Duration, log *logger.Logger) *Prober {
	return &Prober{
		pinger:   pinger,
		monitor:  monitor,
		interval: interval,
		timeout:  timeout,
		logger:   log.Component("network-prober"),
	}
}

// Start stops any previous run, probes once immediately and then every
// interval until ctx is cancelled or Stop is called. A non-positive interval
// defaults to 5 seconds.
func (p *Prober) Start(ctx context.Context) {
	if p.interval <= 0 {
		p.interval = 5 * time.Second
	}

	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.Probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probing goroutine and waits for it to exit. It is a no-op
// when the prober is not running.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Probe performs a single health check and updates the monitor. A probe
// interrupted by ctx cancellation leaves the monitor untouched.
func (p *Prober) Probe(ctx context.Context) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.pinger.Ping(ctx)
	if err != nil && errors.Is(err, context.Canceled) {
		return
	}

	online := err == nil || !isRetryable(err)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "Prober.Probe").Bool("online", online).Msg("health probe failed")
	}
	p.monitor.SetOnline(online)
}

func isRetryable(err error) bool {
	var r interface{ Retryable() bool }
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return true
}
