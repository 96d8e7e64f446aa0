// Package server wires and runs the bridge's HTTP server.
//
// It owns the server lifecycle: startup, background workers, signal
// handling and graceful shutdown.
package server
