package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a termination signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Addr returns the bound listen address once RunServer is listening.
	// With port 0 it carries the port picked by the system.
	Addr() string

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
