package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/planner"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type dashboardService struct {
	plants    store.PlantRepository
	schedules store.ScheduleRepository
	clock     Clock

	logger *logger.Logger
}

func NewDashboardService(plants store.PlantRepository, schedules store.ScheduleRepository, clock Clock, logger *logger.Logger) DashboardService {
	return &dashboardService{
		plants:    plants,
		schedules: schedules,
		clock:     clock,
		logger:    logger,
	}
}

// GetDashboard reads every plant and every plant's schedules, then
// aggregates them at the current instant. Any storage failure aborts the
// whole call.
func (s *dashboardService) GetDashboard(ctx context.Context, query models.DashboardQuery) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	plants, err := s.plants.ListPlants(ctx, models.PlantFilter{})
	if err != nil {
		log.Err(err).Str("func", "dashboardService.GetDashboard").Msg("failed to list plants")
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}

	schedules := make(map[string][]models.ScheduleEntry, len(plants))
	for _, plant := range plants {
		entries, err := s.schedules.ListScheduleEntries(ctx, plant.ID)
		if err != nil {
			log.Err(err).Str("func", "dashboardService.GetDashboard").Str("plant_id", plant.ID).Msg("failed to list schedules")
			return models.Dashboard{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
		}
		schedules[plant.ID] = entries
	}

	return planner.ComputeDashboard(plants, schedules, s.clock.Now(), query.Search, query.Filter), nil
}
