// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the input rules of the offline sync client.
//
// A Validator checks a value and can be restricted to a subset of named
// fields, so that a partial update validates only what it carries.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
