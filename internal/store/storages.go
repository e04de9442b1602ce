package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
)

// Storages bundles every storage dependency of the service layer.
type Storages struct {
	PlantRepository    PlantRepository
	JournalRepository  JournalRepository
	ScheduleRepository ScheduleRepository
	ImageStorage       ImageStorage
	Pinger             Pinger

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories and the image storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	images, err := NewLocalImageStorage(cfg.Files.UploadDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		PlantRepository:    NewPlantRepository(db, cfg.DB.DeleteBatchSize, log),
		JournalRepository:  NewJournalRepository(db, log),
		ScheduleRepository: NewScheduleRepository(db, log),
		ImageStorage:       images,
		Pinger:             db,
		db:                 db,
	}, nil
}

// Close closes the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
