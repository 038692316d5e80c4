// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the offline sync client runtime.
//
// It wires storage, the remote API adapter, connectivity monitoring, the
// offline services, background workers and the local control API into a
// single process lifecycle.
package client
