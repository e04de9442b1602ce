package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PlantService manages plants, their photos and the tag index.
type PlantService interface {
	CreatePlant(ctx context.Context, input models.PlantInput, image *models.ImageUpload) (models.Plant, error)
	GetPlantDetail(ctx context.Context, plantID string) (models.PlantDetail, error)
	ListPlants(ctx context.Context, query models.PlantQuery) (models.PlantList, error)
	// UpdatePlant replaces every editable field. A nil image keeps the
	// current photo.
	UpdatePlant(ctx context.Context, plantID string, input models.PlantInput, image *models.ImageUpload) (models.Plant, error)
	DeletePlant(ctx context.Context, plantID string) error
	ListTags(ctx context.Context) ([]string, error)
}

// JournalService manages the care journal of a plant.
type JournalService interface {
	AddEntry(ctx context.Context, plantID, note string) (models.JournalEntry, error)
	GetEntry(ctx context.Context, plantID, entryID string) (models.JournalEntry, error)
	UpdateNote(ctx context.Context, plantID, entryID, note string) (models.JournalEntry, error)
	DeleteEntry(ctx context.Context, plantID, entryID string) error
}

// ScheduleService manages recurring maintenance tasks.
type ScheduleService interface {
	// AddSchedule creates a task due frequencyRaw days from now.
	AddSchedule(ctx context.Context, plantID, activity, frequencyRaw string) (models.ScheduleEntry, error)
	// CompleteSchedule marks the task as done now and moves its due date.
	CompleteSchedule(ctx context.Context, plantID, scheduleID string) (models.ScheduleEntry, error)
	DeleteSchedule(ctx context.Context, plantID, scheduleID string) error
}

// DashboardService builds the cross-plant task dashboard.
type DashboardService interface {
	GetDashboard(ctx context.Context, query models.DashboardQuery) (models.Dashboard, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}

// Clock tells the service layer what time it is.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
