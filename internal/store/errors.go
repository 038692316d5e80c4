// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the key-value backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KV.Get] when the key has never been
	// written or was removed.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStoreClosed is returned by operations on a closed backend.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when reading a result row fails.
	ErrScanningRow = errors.New("error scanning row")
)

// Errors of the Redis backend.
var (
	// ErrRedisUnavailable is returned when the initial PING fails.
	ErrRedisUnavailable = errors.New("redis is unavailable")
)
