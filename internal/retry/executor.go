// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry runs remote operations with bounded exponential backoff.
//
// An [Executor] refuses to run while the connectivity checker reports
// offline, gives every attempt its own timeout and waits
// min(base*2^(attempt-1), max) between attempts on its clock, so tests can
// drive the backoff with a fake clock.
package retry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-time-keeper/internal/clock"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

// DefaultMaxRetries is used when ExecuteWithRetry is given a non-positive
// budget.
const DefaultMaxRetries = 3

// ConnectivityChecker reports whether the backend is reachable.
type ConnectivityChecker interface {
	IsOnline() bool
}

// Operation is a single attempt of a remote call.
type Operation func(ctx context.Context) error

// Config is the backoff policy.
type Config struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
	// AttemptTimeout bounds every attempt. Zero disables it.
	AttemptTimeout time.Duration
}

// State is the observable retry indicator.
type State struct {
	Retrying   bool
	RetryCount int
}

// Executor is safe for concurrent use. State reports retrying while any
// execution is backing off; RetryCount is the most recent retry.
type Executor struct {
	connectivity ConnectivityChecker
	clock        clock.Clock
	cfg          Config
	logger       *logger.Logger

	mu       sync.Mutex
	state    State
	retriers int
}

// NewExecutor creates an Executor.
func NewExecutor(connectivity ConnectivityChecker, clk clock.Clock, cfg Config, log *logger.Logger) *Executor {
	return &Executor{
		connectivity: connectivity,
		clock:        clk,
		cfg:          cfg,
		logger:       log.Component("retry-executor"),
	}
}

// State returns a snapshot of the retry indicator.
func (e *Executor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ExecuteWithRetry runs op up to maxRetries times.
//
// It returns ErrNoConnectivity when offline before an attempt, the error of
// the first terminal failure, or the error of the last attempt once the
// budget is spent. A cancelled ctx stops the backoff wait and returns the
// context error.
func (e *Executor) ExecuteWithRetry(ctx context.Context, op Operation, maxRetries int) error {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	retried := false
	defer func() {
		if retried {
			e.doneRetrying()
		}
	}()

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if !e.connectivity.IsOnline() {
			return ErrNoConnectivity
		}

		lastErr = e.attempt(ctx, op)
		if lastErr == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ctxErr, lastErr)
		}
		if !IsRetryable(lastErr) || attempt == maxRetries {
			return lastErr
		}

		delay := Backoff(attempt, e.cfg.BaseDelay, e.cfg.MaxDelay)
		e.setRetrying(attempt, !retried)
		retried = true
		e.logger.Debug().
			Err(lastErr).
			Str("func", "Executor.ExecuteWithRetry").
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("retryable failure, backing off")

		if err := e.clock.Sleep(ctx, delay); err != nil {
			return fmt.Errorf("%w: %w", err, lastErr)
		}
	}

	return lastErr
}

func (e *Executor) attempt(ctx context.Context, op Operation) error {
	if e.cfg.AttemptTimeout <= 0 {
		return op(ctx)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, e.cfg.AttemptTimeout)
	defer cancel()

	err := op(attemptCtx)
	if err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
	}
	return err
}

func (e *Executor) setRetrying(attempt int, first bool) {
	e.mu.Lock()
	if first {
		e.retriers++
	}
	e.state = State{Retrying: true, RetryCount: attempt}
	e.mu.Unlock()
}

// doneRetrying clears the indicator once the last backing-off execution
// has finished.
func (e *Executor) doneRetrying() {
	e.mu.Lock()
	e.retriers--
	if e.retriers == 0 {
		e.state = State{}
	}
	e.mu.Unlock()
}

// Do is ExecuteWithRetry for operations that produce a value. The value of
// the successful attempt is returned.
func Do[T any](ctx context.Context, e *Executor, op func(ctx context.Context) (T, error), maxRetries int) (T, error) {
	var result T
	err := e.ExecuteWithRetry(ctx, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	}, maxRetries)
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// Backoff returns the wait after the given 1-based attempt:
// min(base*2^(attempt-1), maxDelay). A non-positive maxDelay means no cap.
func Backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	if attempt < 1 || base <= 0 {
		return 0
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if maxDelay > 0 && delay >= maxDelay {
			break
		}
		if delay > time.Duration(1<<62)/2 {
			break
		}
		delay *= 2
	}

	if maxDelay > 0 && delay > maxDelay {
		return maxDelay
	}
	return delay
}
