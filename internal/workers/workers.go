// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups workers. They are started in the given order and
// stopped in reverse order.
func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: log}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.logger.Info().Str("func", "Workers.Start").Int("workers", len(w.workers)).Msg("workers started")
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Info().Str("func", "Workers.Stop").Msg("workers stopped")
}
