// Package workers runs the application's background jobs alongside the
// HTTP server. Every worker stops when the context passed to Run is
// cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
