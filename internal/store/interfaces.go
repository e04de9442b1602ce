package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PlantRepository persists plants and their tags.
type PlantRepository interface {
	CreatePlant(ctx context.Context, plant models.Plant) (models.Plant, error)
	GetPlant(ctx context.Context, plantID string) (models.Plant, error)
	ListPlants(ctx context.Context, filter models.PlantFilter) ([]models.Plant, error)
	UpdatePlant(ctx context.Context, plant models.Plant) error
	// DeletePlant removes the plant together with its journal and schedule
	// entries.
	DeletePlant(ctx context.Context, plantID string) error
}

// JournalRepository persists the journal sub-collection of a plant.
type JournalRepository interface {
	CreateJournalEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	// ListJournalEntries returns the plant's entries, newest first.
	ListJournalEntries(ctx context.Context, plantID string) ([]models.JournalEntry, error)
	GetJournalEntry(ctx context.Context, plantID, entryID string) (models.JournalEntry, error)
	UpdateJournalNote(ctx context.Context, plantID, entryID, note string) error
	DeleteJournalEntry(ctx context.Context, plantID, entryID string) error
}

// ScheduleRepository persists the schedule sub-collection of a plant.
type ScheduleRepository interface {
	CreateScheduleEntry(ctx context.Context, entry models.ScheduleEntry) (models.ScheduleEntry, error)
	// ListScheduleEntries returns the plant's entries, soonest due first.
	ListScheduleEntries(ctx context.Context, plantID string) ([]models.ScheduleEntry, error)
	GetScheduleEntry(ctx context.Context, plantID, entryID string) (models.ScheduleEntry, error)
	UpdateNextDue(ctx context.Context, plantID, entryID string, due time.Time) error
	DeleteScheduleEntry(ctx context.Context, plantID, entryID string) error
}

// ImageStorage keeps uploaded plant photos.
type ImageStorage interface {
	// SaveImage stores content under a unique name derived from
	// originalName and returns the public relative path of the file.
	SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error)
	// DeleteImage removes a file previously returned by SaveImage.
	// A missing file is not an error.
	DeleteImage(ctx context.Context, relPath string) error
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
