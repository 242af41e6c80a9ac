// Package workers runs the long-lived parts of the server binary side by
// side: the HTTP server and the devtools component watcher.
package workers

import "context"

// Worker is a long-running task. Run blocks until the work is done or ctx is
// cancelled. Returning nil on cancellation is expected.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
