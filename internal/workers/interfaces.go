// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and Periodic, a worker that runs a task
// on a fixed interval.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns immediately; the worker runs until
// ctx is cancelled or Stop is called. Stop blocks until the worker has fully
// exited and is safe to call on a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
