// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors wrapped by [*RequestError]. Match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNetwork wraps transport failures: refused connections, DNS errors,
	// resets and request timeouts.
	ErrNetwork = errors.New("network error")

	// ErrTokenExpired is returned before sending a request whose bearer
	// token has already expired.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidPayload is returned when a request body cannot be encoded
	// or a response body cannot be decoded.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUnknownActionType is returned by Replay for an action whose type
	// has no HTTP method.
	ErrUnknownActionType = errors.New("unknown action type")
)

// RequestError describes a failed call to the remote API.
type RequestError struct {
	// StatusCode is the HTTP status, zero for transport failures.
	StatusCode int
	// Err is one of the sentinel errors of this package.
	Err error
	// Body is the trimmed response body, if any.
	Body string
	// Cause is the underlying transport error, if any.
	Cause error

	retryable bool
}

func (e *RequestError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Err, e.Cause)
	case e.Body != "":
		return fmt.Sprintf("%s (http %d): %s", e.Err, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s (http %d)", e.Err, e.StatusCode)
	default:
		return e.Err.Error()
	}
}

func (e *RequestError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// Retryable reports whether repeating the same request may succeed.
func (e *RequestError) Retryable() bool {
	return e.retryable
}

// isRetryableStatus reports whether a response status is transient.
func isRetryableStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout
}
