// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-time-keeper/internal/retry"
	"github.com/MKhiriev/go-time-keeper/internal/service"
	"github.com/MKhiriev/go-time-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidTimeRecord:  http.StatusBadRequest,
	service.ErrInvalidAction:      http.StatusBadRequest,
	service.ErrInvalidDraft:       http.StatusBadRequest,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,
	service.ErrAccessDenied:       http.StatusForbidden,
	service.ErrTimeRecordNotFound: http.StatusNotFound,
	service.ErrTimeRecordConflict: http.StatusConflict,
	service.ErrSyncInProgress:     http.StatusConflict,

	retry.ErrNoConnectivity:  http.StatusServiceUnavailable,
	store.ErrStoreClosed:     http.StatusServiceUnavailable,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
