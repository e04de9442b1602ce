// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, the background workers that run
// next to it, signal handling and graceful shutdown bounded by the
// configured shutdown timeout.
package server
