// Package server wires and runs the relay's HTTP server.
//
// It owns the process lifecycle: startup of the listener and background
// workers, signal handling, and graceful shutdown that drains in-flight
// requests before storage connections are closed.
package server
