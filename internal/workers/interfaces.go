// Package workers provides abstractions for managing background workers of
// the client, such as the connectivity prober and the sync manager.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines, which
// run until Stop is called or ctx is cancelled. Stop waits for them to exit
// and must be safe to call on a worker that was never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
