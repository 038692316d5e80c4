// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared across the client:
// the resty-based HTTP client, JSON response writing, JWT inspection,
// identifier generation and ordered listener sets.
package utils
