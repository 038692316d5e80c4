// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// time-record API.
//
// The primary abstraction is [RemoteAPI], which decouples the service layer
// from HTTP. Failures are reported as [*RequestError] values that wrap the
// sentinel errors of this package and classify themselves as retryable or
// terminal through their Retryable method, so callers can use [errors.Is]
// for status checks and the retry executor can decide whether to back off.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-time-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// RemoteAPI defines communication with the time-record backend.
type RemoteAPI interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Ping checks backend reachability via GET /health.
	Ping(ctx context.Context) error

	// CreateTimeRecord sends POST /time-records and returns the stored record.
	CreateTimeRecord(ctx context.Context, record models.TimeRecord) (models.TimeRecord, error)

	// UpdateTimeRecord sends PUT /time-records/{id} and returns the stored
	// record.
	UpdateTimeRecord(ctx context.Context, id string, record models.TimeRecord) (models.TimeRecord, error)

	// DeleteTimeRecord sends DELETE /time-records/{id}.
	DeleteTimeRecord(ctx context.Context, id string) error

	// Replay sends a queued action to its endpoint using the HTTP method
	// that matches the action type. The response body is discarded.
	Replay(ctx context.Context, action models.OfflineAction) error
}
