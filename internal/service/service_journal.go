package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/internal/store"
	"github.com/MKhiriev/go-plant-keeper/internal/validators"
	"github.com/MKhiriev/go-plant-keeper/models"
)

type journalService struct {
	journal   store.JournalRepository
	validator validators.Validator
	ids       IDGenerator
	clock     Clock

	logger *logger.Logger
}

func NewJournalService(journal store.JournalRepository, ids IDGenerator, clock Clock, logger *logger.Logger) JournalService {
	return &journalService{
		journal:   journal,
		validator: validators.NewPlantValidator(),
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// AddEntry appends a note to the plant's journal. The creation time comes
// from the service clock and never changes afterwards.
func (s *journalService) AddEntry(ctx context.Context, plantID, note string) (models.JournalEntry, error) {
	entry := models.JournalEntry{
		ID:        s.ids.Generate(),
		PlantID:   plantID,
		CreatedAt: s.clock.Now(),
		Note:      strings.TrimSpace(note),
	}

	if err := s.validator.Validate(ctx, entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.journal.CreateJournalEntry(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "journalService.AddEntry").Str("plant_id", plantID).Msg("journal entry creation ended with error")
		return models.JournalEntry{}, fmt.Errorf("journal entry creation ended with error: %w", err)
	}

	return created, nil
}

func (s *journalService) GetEntry(ctx context.Context, plantID, entryID string) (models.JournalEntry, error) {
	return s.journal.GetJournalEntry(ctx, plantID, entryID)
}

// UpdateNote replaces the note of an entry and returns the updated entry.
func (s *journalService) UpdateNote(ctx context.Context, plantID, entryID, note string) (models.JournalEntry, error) {
	note = strings.TrimSpace(note)
	if err := s.validator.Validate(ctx, models.JournalEntry{Note: note}, validators.FieldNote); err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry, err := s.journal.GetJournalEntry(ctx, plantID, entryID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	if err = s.journal.UpdateJournalNote(ctx, plantID, entryID, note); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "journalService.UpdateNote").Str("entry_id", entryID).Msg("journal note update ended with error")
		return models.JournalEntry{}, err
	}

	entry.Note = note
	return entry, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, plantID, entryID string) error {
	return s.journal.DeleteJournalEntry(ctx, plantID, entryID)
}
