// Package workers provides abstractions for managing and running
// background workers next to the HTTP server.
// It defines the Worker interface and a Workers aggregate that runs several
// workers until their shared context is canceled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is canceled.
type Worker interface {
	Run(ctx context.Context)
}
