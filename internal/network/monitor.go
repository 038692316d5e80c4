// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks backend connectivity.
//
// [Monitor] holds the online/offline state and a short "reconnecting" grace
// window that follows every offline to online transition. [Prober] is the
// platform signal: it polls the backend health endpoint and feeds the
// monitor.
package network

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
	"github.com/MKhiriev/go-time-keeper/internal/utils"
)

// Event is a connectivity change delivered to monitor listeners.
type Event int

const (
	// EventOffline fires on an online to offline transition.
	EventOffline Event = iota
	// EventOnline fires on an offline to online transition. The grace
	// window starts at the same moment.
	EventOnline
	// EventSettled fires when the grace window after EventOnline ends while
	// still online.
	EventSettled
)

func (e Event) String() string {
	switch e {
	case EventOffline:
		return "offline"
	case EventOnline:
		return "online"
	case EventSettled:
		return "settled"
	}
	return "unknown"
}

// Monitor is the single source of truth for connectivity.
type Monitor struct {
	mu           sync.Mutex
	online       bool
	reconnecting bool
	grace        time.Duration
	graceTimer   clock.Timer
	generation   uint64

	clock     clock.Clock
	listeners *utils.Listeners[Event]
	logger    *logger.Logger
}

// NewMonitor returns a monitor in the given initial state. No event is fired
// for the initial state.
func NewMonitor(online bool, grace time.Duration, clk clock.Clock, log *logger.Logger) *Monitor {
	log = log.Component("network-monitor")
	return &Monitor{
		online: online,
		grace:  grace,
		clock:  clk,
		listeners: utils.NewListeners[Event](func(err error) {
			log.Error().Err(err).Str("func", "Monitor.notify").Msg("network listener failed")
		}),
		logger: log,
	}
}

// IsOnline reports the current connectivity.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// IsReconnecting reports whether the monitor is inside the grace window that
// follows a reconnect.
func (m *Monitor) IsReconnecting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reconnecting
}

// Subscribe registers fn for connectivity events. Listeners run
// synchronously in registration order on the goroutine that reported the
// change.
func (m *Monitor) Subscribe(fn func(Event)) (unsubscribe func()) {
	return m.listeners.Add(fn)
}

// SetOnline records the platform connectivity signal. Repeated reports of the
// same state are ignored.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}

	m.online = online
	m.generation++
	if m.graceTimer != nil {
		m.graceTimer.Stop()
		m.graceTimer = nil
	}

	event := EventOffline
	m.reconnecting = false
	if online {
		event = EventOnline
		m.reconnecting = m.grace > 0
		if m.reconnecting {
			gen := m.generation
			m.graceTimer = m.clock.AfterFunc(m.grace, func() { m.settle(gen) })
		}
	}
	m.mu.Unlock()

	m.logger.Info().Str("func", "Monitor.SetOnline").Stringer("event", event).Msg("connectivity changed")
	m.listeners.Notify(event)
}

func (m *Monitor) settle(gen uint64) {
	m.mu.Lock()
	if m.generation != gen || !m.online {
		m.mu.Unlock()
		return
	}
	m.graceTimer = nil
	m.reconnecting = false
	m.mu.Unlock()

	m.listeners.Notify(EventSettled)
}
