package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/planner"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// plantService is the concrete implementation of PlantService.
// Photos are stored before the plant row is written and removed again when
// the write fails, so a failed create never leaves an orphaned file behind.
type plantService struct {
	plants    store.PlantRepository
	journal   store.JournalRepository
	schedules store.ScheduleRepository
	images    store.ImageStorage

	validator validators.Validator
	ids       IDGenerator
	clock     Clock

	logger *logger.Logger
}

func NewPlantService(storages *store.Storages, ids IDGenerator, clock Clock, logger *logger.Logger) PlantService {
	return &plantService{
		plants:    storages.PlantRepository,
		journal:   storages.JournalRepository,
		schedules: storages.ScheduleRepository,
		images:    storages.ImageStorage,
		validator: validators.NewPlantValidator(),
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// CreatePlant validates input, stores the optional photo and persists the
// plant with normalized tags.
func (s *plantService) CreatePlant(ctx context.Context, input models.PlantInput, image *models.ImageUpload) (models.Plant, error) {
	log := logger.FromContext(ctx)

	input, err := s.prepareInput(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "plantService.CreatePlant").Msg("invalid plant input")
		return models.Plant{}, err
	}

	imagePath, err := s.saveImage(ctx, image)
	if err != nil {
		return models.Plant{}, err
	}

	plant := models.Plant{
		ID:        s.ids.Generate(),
		Name:      input.Name,
		Kind:      input.Kind,
		Origin:    input.Origin,
		Care:      input.Care,
		Image:     imagePath,
		Tags:      input.Tags,
		CreatedAt: s.clock.Now(),
	}

	created, err := s.plants.CreatePlant(ctx, plant)
	if err != nil {
		log.Err(err).Str("func", "plantService.CreatePlant").Msg("plant creation ended with error")
		s.discardImage(ctx, imagePath)
		return models.Plant{}, fmt.Errorf("plant creation ended with error: %w", err)
	}

	return created, nil
}

// GetPlantDetail returns the plant with its journal and schedules.
func (s *plantService) GetPlantDetail(ctx context.Context, plantID string) (models.PlantDetail, error) {
	plant, err := s.plants.GetPlant(ctx, plantID)
	if err != nil {
		return models.PlantDetail{}, err
	}

	journal, err := s.journal.ListJournalEntries(ctx, plantID)
	if err != nil {
		return models.PlantDetail{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}

	schedules, err := s.schedules.ListScheduleEntries(ctx, plantID)
	if err != nil {
		return models.PlantDetail{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}

	return models.PlantDetail{
		Plant:     plant,
		Journal:   orEmpty(journal),
		Schedules: orEmpty(schedules),
	}, nil
}

// ListPlants applies the tag filter in storage and the text search in
// memory. The tag index always covers every plant, so a user can switch
// from one tag to another.
func (s *plantService) ListPlants(ctx context.Context, query models.PlantQuery) (models.PlantList, error) {
	tag := strings.ToLower(strings.TrimSpace(query.Tag))

	all, err := s.plants.ListPlants(ctx, models.PlantFilter{})
	if err != nil {
		return models.PlantList{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}

	plants := all
	if tag != "" {
		plants, err = s.plants.ListPlants(ctx, models.PlantFilter{Tag: tag})
		if err != nil {
			return models.PlantList{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
		}
	}

	needle := strings.ToLower(strings.TrimSpace(query.Search))
	matched := make([]models.Plant, 0, len(plants))
	for _, plant := range plants {
		if needle == "" ||
			strings.Contains(strings.ToLower(plant.Name), needle) ||
			strings.Contains(strings.ToLower(plant.Kind), needle) {
			matched = append(matched, plant)
		}
	}

	return models.PlantList{
		Plants:    matched,
		AllTags:   planner.BuildTagIndex(all),
		Search:    query.Search,
		ActiveTag: tag,
	}, nil
}

// UpdatePlant replaces the plant's fields. When a new photo is given the
// previous file is deleted after the row was updated.
func (s *plantService) UpdatePlant(ctx context.Context, plantID string, input models.PlantInput, image *models.ImageUpload) (models.Plant, error) {
	log := logger.FromContext(ctx)

	input, err := s.prepareInput(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "plantService.UpdatePlant").Msg("invalid plant input")
		return models.Plant{}, err
	}

	plant, err := s.plants.GetPlant(ctx, plantID)
	if err != nil {
		return models.Plant{}, err
	}

	newImage, err := s.saveImage(ctx, image)
	if err != nil {
		return models.Plant{}, err
	}

	oldImage := plant.Image
	plant.Name = input.Name
	plant.Kind = input.Kind
	plant.Origin = input.Origin
	plant.Care = input.Care
	plant.Tags = input.Tags
	if newImage != "" {
		plant.Image = newImage
	}

	if err = s.plants.UpdatePlant(ctx, plant); err != nil {
		log.Err(err).Str("func", "plantService.UpdatePlant").Str("plant_id", plantID).Msg("plant update ended with error")
		s.discardImage(ctx, newImage)
		return models.Plant{}, fmt.Errorf("plant update ended with error: %w", err)
	}

	if newImage != "" {
		s.discardImage(ctx, oldImage)
	}

	return plant, nil
}

// DeletePlant removes the photo, then the plant with everything it owns.
func (s *plantService) DeletePlant(ctx context.Context, plantID string) error {
	plant, err := s.plants.GetPlant(ctx, plantID)
	if err != nil {
		return err
	}

	s.discardImage(ctx, plant.Image)

	if err = s.plants.DeletePlant(ctx, plantID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "plantService.DeletePlant").Str("plant_id", plantID).Msg("plant deletion ended with error")
		return fmt.Errorf("plant deletion ended with error: %w", err)
	}

	return nil
}

// ListTags returns the tag index over every plant.
func (s *plantService) ListTags(ctx context.Context) ([]string, error) {
	plants, err := s.plants.ListPlants(ctx, models.PlantFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	return planner.BuildTagIndex(plants), nil
}

func (s *plantService) prepareInput(ctx context.Context, input models.PlantInput) (models.PlantInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Kind = strings.TrimSpace(input.Kind)
	input.Origin = strings.TrimSpace(input.Origin)
	input.Tags = planner.NormalizeTagList(input.Tags)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.PlantInput{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return input, nil
}

// saveImage stores the upload and returns its public path. A nil upload or
// one without a file name yields an empty path.
func (s *plantService) saveImage(ctx context.Context, image *models.ImageUpload) (string, error) {
	if image == nil || image.Content == nil || image.FileName == "" {
		return "", nil
	}

	path, err := s.images.SaveImage(ctx, image.FileName, image.Content)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "plantService.saveImage").Str("file_name", image.FileName).Msg("failed to save image")
		if errors.Is(err, store.ErrUnsupportedImageType) {
			return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return "", err
	}
	return path, nil
}

// discardImage removes a stored photo. Failures are only logged: a stray
// file must not fail the request.
func (s *plantService) discardImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.images.DeleteImage(ctx, path); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "plantService.discardImage").Str("image", path).Msg("failed to delete image")
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
