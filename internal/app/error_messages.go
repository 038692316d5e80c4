// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// control API handlers and the synctl command line client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries. synctl matches on some of them, so the
// wording is part of the control API contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgDraftNotFound is returned when no draft is stored for the requested
	// form.
	MsgDraftNotFound = "draft not found"

	// MsgDraftTooLarge is returned when a draft snapshot exceeds the body
	// limit of the control API.
	MsgDraftTooLarge = "draft is too large"

	// MsgStreamingUnsupported is returned when the response writer cannot
	// flush server-sent events.
	MsgStreamingUnsupported = "streaming unsupported"

	// MsgRouteNotFound is returned for unknown routes and unsupported methods.
	MsgRouteNotFound = "route not found"

	MsgClearFailed = "clearing offline data failed"
)
