package service

import (
	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/utils"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type Services struct {
	PlantService     PlantService
	JournalService   JournalService
	ScheduleService  ScheduleService
	DashboardService DashboardService
	AppInfoService   AppInfoService
	HealthService    HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	clock := utils.NewClock(cfg.App.Location())

	return &Services{
		PlantService:     NewPlantService(storages, ids, clock, logger),
		JournalService:   NewJournalService(storages.JournalRepository, ids, clock, logger),
		ScheduleService:  NewScheduleService(storages.ScheduleRepository, ids, clock, logger),
		DashboardService: NewDashboardService(storages.PlantRepository, storages.ScheduleRepository, clock, logger),
		AppInfoService:   appInfoService,
		HealthService:    NewHealthService(storages.Pinger, logger),
	}, nil
}
