package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/planner"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type scheduleService struct {
	schedules store.ScheduleRepository
	validator validators.Validator
	ids       IDGenerator
	clock     Clock

	logger *logger.Logger
}

func NewScheduleService(schedules store.ScheduleRepository, ids IDGenerator, clock Clock, logger *logger.Logger) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		validator: validators.NewPlantValidator(),
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// AddSchedule validates the activity and the raw frequency, then stores a
// task first due frequency days from now.
func (s *scheduleService) AddSchedule(ctx context.Context, plantID, activity, frequencyRaw string) (models.ScheduleEntry, error) {
	log := logger.FromContext(ctx)

	activity = strings.TrimSpace(activity)
	if err := s.validator.Validate(ctx, models.ScheduleEntry{PlantID: plantID, Activity: activity},
		validators.FieldPlantID, validators.FieldActivity); err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	frequency, err := planner.ParseFrequency(frequencyRaw)
	if err != nil {
		log.Debug().Err(err).Str("func", "scheduleService.AddSchedule").Str("frequency", frequencyRaw).Msg("invalid frequency")
		return models.ScheduleEntry{}, err
	}

	entry := models.ScheduleEntry{
		ID:        s.ids.Generate(),
		PlantID:   plantID,
		Activity:  activity,
		Frequency: frequency,
		NextDue:   models.NativeDueDate(planner.NextDue(s.clock.Now(), frequency)),
	}

	created, err := s.schedules.CreateScheduleEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "scheduleService.AddSchedule").Str("plant_id", plantID).Msg("schedule creation ended with error")
		return models.ScheduleEntry{}, fmt.Errorf("schedule creation ended with error: %w", err)
	}

	return created, nil
}

// CompleteSchedule rolls the task over from now. Nothing is written when the
// stored frequency is not usable.
func (s *scheduleService) CompleteSchedule(ctx context.Context, plantID, scheduleID string) (models.ScheduleEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := s.schedules.GetScheduleEntry(ctx, plantID, scheduleID)
	if err != nil {
		return models.ScheduleEntry{}, err
	}

	next, err := planner.RollOver(entry, s.clock.Now())
	if err != nil {
		log.Warn().Err(err).Str("func", "scheduleService.CompleteSchedule").Str("schedule_id", scheduleID).Msg("schedule cannot be rolled over")
		return models.ScheduleEntry{}, err
	}

	if err = s.schedules.UpdateNextDue(ctx, plantID, scheduleID, next); err != nil {
		log.Err(err).Str("func", "scheduleService.CompleteSchedule").Str("schedule_id", scheduleID).Msg("next due update ended with error")
		return models.ScheduleEntry{}, err
	}

	log.Info().Str("schedule_id", scheduleID).Str("activity", entry.Activity).Time("next_due", next).Msg("schedule completed")

	entry.NextDue = models.NativeDueDate(next)
	return entry, nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, plantID, scheduleID string) error {
	return s.schedules.DeleteScheduleEntry(ctx, plantID, scheduleID)
}
