// Package server runs the application's HTTP server.
//
// It owns the listener lifecycle: startup, stopping on context cancellation
// or termination signals, and graceful shutdown with a bounded drain period.
package server
