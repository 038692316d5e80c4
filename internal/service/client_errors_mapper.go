// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/adapter"
)

// mapAdapterError translates a terminal transport error into a service
// error. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTokenExpired),
		errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnprocessable),
		errors.Is(err, adapter.ErrInvalidPayload):
		return fmt.Errorf("%w: %w", ErrInvalidTimeRecord, err)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrTimeRecordNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrTimeRecordConflict, err)
	}

	return err
}
