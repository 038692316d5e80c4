// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// mapHTTPError converts a non-2xx response into a [*RequestError].
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrors[code]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &RequestError{
		StatusCode: code,
		Err:        sentinel,
		Body:       strings.TrimSpace(string(resp.Body())),
		retryable:  isRetryableStatus(code),
	}
}

// mapTransportError converts an error returned by resty before any response
// was received. Cancellation by the caller is passed through unchanged so it
// is never mistaken for a transient network failure.
func mapTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}

	return &RequestError{Err: ErrNetwork, Cause: err, retryable: true}
}
