// Package server runs the journal's HTTP server.
//
// It owns the server lifecycle: startup alongside the background workers,
// signal handling, and graceful shutdown that waits for the workers to stop.
package server
