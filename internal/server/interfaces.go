package server

import "context"

// Server defines the lifecycle contract of the relay process.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Closer releases a resource that outlives single requests, such as a
// database connection.
type Closer interface {
	Close(ctx context.Context) error
}
