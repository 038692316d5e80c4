// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local control API of the offline sync client.
//
// It exposes the offline status read model, manual sync, draft storage and
// the offline-aware time record mutations over REST, plus a server-sent
// events stream of status changes and sync results. Request tracing and
// access logging are handled here before requests reach the service layer.
package http
