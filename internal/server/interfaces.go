package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// BackgroundRunner is a set of background jobs that stop when ctx is
// cancelled. Run blocks until every job has returned.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
