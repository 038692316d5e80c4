// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package retry

import (
	"context"
	"errors"
)

// ErrNoConnectivity is returned without running the operation when the
// connectivity checker reports offline.
var ErrNoConnectivity = errors.New("no connectivity")

// IsRetryable reports whether err is worth another attempt.
//
// Errors implementing Retryable() bool decide for themselves. Attempt
// timeouts are retryable. Cancellation, ErrNoConnectivity and any other
// error are terminal.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var r interface{ Retryable() bool }
	if errors.As(err, &r) {
		return r.Retryable()
	}

	return errors.Is(err, context.DeadlineExceeded)
}
