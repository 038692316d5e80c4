// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

const writeTimeout = 5 * time.Second

// persistWriter writes collection snapshots to a KV in the background.
// Queued writes for the same key coalesce: only the latest snapshot is
// written.
type persistWriter struct {
	kv     KV
	logger *logger.Logger

	mu       sync.Mutex
	pending  map[string][]byte
	queued   uint64
	written  uint64
	waiters  []flushWaiter
	closed   bool
	failures uint64

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

type flushWaiter struct {
	target uint64
	ch     chan struct{}
}

func newPersistWriter(kv KV, log *logger.Logger) *persistWriter {
	w := &persistWriter{
		kv:      kv,
		logger:  log,
		pending: make(map[string][]byte),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// enqueue schedules value to be written under key. A nil value removes the
// key. It never blocks on the backend.
func (w *persistWriter) enqueue(key string, value []byte) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn().Str("func", "persistWriter.enqueue").Str("key", key).Msg("write after close dropped")
		return
	}
	w.pending[key] = value
	w.queued++
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *persistWriter) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *persistWriter) drain() {
	for {
		w.mu.Lock()
		if len(w.pending) == 0 {
			w.mu.Unlock()
			return
		}
		batch := w.pending
		w.pending = make(map[string][]byte)
		target := w.queued
		w.mu.Unlock()

		for key, value := range batch {
			if err := w.write(key, value); err != nil {
				w.mu.Lock()
				w.failures++
				w.mu.Unlock()
				w.logger.Err(err).
					Str("func", "persistWriter.drain").
					Str("key", key).
					Msg("persistence failure, in-memory state kept")
			}
		}

		w.mu.Lock()
		w.written = target
		w.releaseLocked()
		w.mu.Unlock()
	}
}

func (w *persistWriter) write(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if value == nil {
		return w.kv.Remove(ctx, key)
	}
	return w.kv.Set(ctx, key, value)
}

func (w *persistWriter) releaseLocked() {
	kept := w.waiters[:0]
	for _, fw := range w.waiters {
		if fw.target <= w.written {
			close(fw.ch)
			continue
		}
		kept = append(kept, fw)
	}
	w.waiters = kept
}

// flush waits until every write queued before the call has been attempted.
func (w *persistWriter) flush(ctx context.Context) error {
	w.mu.Lock()
	if w.written >= w.queued {
		w.mu.Unlock()
		return nil
	}
	fw := flushWaiter{target: w.queued, ch: make(chan struct{})}
	w.waiters = append(w.waiters, fw)
	w.mu.Unlock()

	select {
	case <-fw.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close writes what is pending and stops the goroutine.
func (w *persistWriter) close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stop)
	<-w.done
}

func (w *persistWriter) failureCount() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failures
}
