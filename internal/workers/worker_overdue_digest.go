package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/service"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// OverdueDigestWorker periodically computes the overdue dashboard and logs
// a summary, so missed care tasks show up in the server logs.
type OverdueDigestWorker struct {
	dashboard service.DashboardService
	interval  time.Duration

	logger *logger.Logger
}

func NewOverdueDigestWorker(dashboard service.DashboardService, interval time.Duration, logger *logger.Logger) *OverdueDigestWorker {
	return &OverdueDigestWorker{
		dashboard: dashboard,
		interval:  interval,
		logger:    logger,
	}
}

func (w *OverdueDigestWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("overdue digest worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("overdue digest worker stopped")
			return
		case <-ticker.C:
			if _, err := w.digest(ctx); err != nil && ctx.Err() == nil {
				w.logger.Err(err).Str("func", "OverdueDigestWorker.Run").Msg("failed to build overdue digest")
			}
		}
	}
}

func (w *OverdueDigestWorker) digest(ctx context.Context) (models.Dashboard, error) {
	dashboard, err := w.dashboard.GetDashboard(ctx, models.DashboardQuery{Filter: models.FilterOverdue})
	if err != nil {
		return models.Dashboard{}, err
	}

	w.logger.Info().
		Int("overdue", dashboard.OverdueCount).
		Time("evaluated_at", dashboard.Now).
		Msg("overdue digest")

	for _, task := range dashboard.Tasks {
		w.logger.Debug().
			Str("plant", task.PlantName).
			Str("activity", task.Activity).
			Int("days_overdue", -task.DeltaDays).
			Msg("overdue task")
	}

	return dashboard, nil
}
