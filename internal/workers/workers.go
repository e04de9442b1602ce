package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled workers. The overdue digest is skipped when
// its interval is zero.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.DigestInterval > 0 {
		w.workers = append(w.workers, NewOverdueDigestWorker(services.DashboardService, cfg.DigestInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and returns once all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
