// Package workers runs the server's background jobs: the sweeper that drops
// expired in-memory sessions and the relay that carries bus events between
// instances through Redis.
//
// It defines the Worker interface and a Workers aggregate that runs all of
// them until the server shuts down.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// has nothing left to do.
//
// Example implementation:
//
//	type tick struct{}
//
//	func (tick) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
