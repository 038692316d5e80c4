package server

import "context"

// Server defines the lifecycle contract of the control API server.
//
// Implementations block in [RunServer] until ctx is cancelled or the
// listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// Cancelling ctx triggers a graceful shutdown.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting at most until ctx is done.
	Shutdown(ctx context.Context) error
}
