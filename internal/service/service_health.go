package service

import (
	"context"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/models"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

type healthService struct {
	db store.Pinger

	logger *logger.Logger
}

func NewHealthService(db store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{db: db, logger: logger}
}

// Check pings the database. The service itself is always reported as up.
func (s *healthService) Check(ctx context.Context) models.HealthStatus {
	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Check").Msg("database ping failed")
		return models.HealthStatus{Status: StatusDegraded, Database: err.Error()}
	}
	return models.HealthStatus{Status: StatusOK, Database: StatusOK}
}
