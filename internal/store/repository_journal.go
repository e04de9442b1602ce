package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// journalRepository is the SQL-backed implementation of [JournalRepository].
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository].
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateJournalEntry inserts entry as given; CreatedAt must already be set
// by the caller's clock. A missing parent plant yields [ErrPlantNotFound].
func (r *journalRepository) CreateJournalEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	query, args, err := r.buildInsertJournalEntryQuery(entry)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isForeignKeyViolation(err) {
			return models.JournalEntry{}, ErrPlantNotFound
		}
		r.logError(ctx, err, "journalRepository.CreateJournalEntry", "failed to insert journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *journalRepository) ListJournalEntries(ctx context.Context, plantID string) ([]models.JournalEntry, error) {
	query, args, err := r.buildSelectJournalEntriesQuery(plantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, "journalRepository.ListJournalEntries", "failed to execute query for journal entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var entry models.JournalEntry
		if err = rows.Scan(&entry.ID, &entry.PlantID, &entry.CreatedAt, &entry.Note); err != nil {
			r.logError(ctx, err, "journalRepository.ListJournalEntries", "failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		r.logError(ctx, err, "journalRepository.ListJournalEntries", "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *journalRepository) GetJournalEntry(ctx context.Context, plantID, entryID string) (models.JournalEntry, error) {
	query, args, err := r.buildSelectJournalEntryQuery(plantID, entryID)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.JournalEntry
	err = r.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.PlantID, &entry.CreatedAt, &entry.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, ErrJournalEntryNotFound
	}
	if err != nil {
		r.logError(ctx, err, "journalRepository.GetJournalEntry", "failed to scan journal row")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *journalRepository) UpdateJournalNote(ctx context.Context, plantID, entryID, note string) error {
	query, args, err := r.buildUpdateJournalNoteQuery(plantID, entryID, note)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "journalRepository.UpdateJournalNote", ErrJournalEntryNotFound, query, args)
}

func (r *journalRepository) DeleteJournalEntry(ctx context.Context, plantID, entryID string) error {
	query, args, err := r.buildDeleteJournalEntryQuery(plantID, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "journalRepository.DeleteJournalEntry", ErrJournalEntryNotFound, query, args)
}

// execAffectingOne runs a single-row UPDATE or DELETE and returns notFound
// when no row matched.
func (db *DB) execAffectingOne(ctx context.Context, funcName string, notFound error, query string, args []any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		db.logError(ctx, err, funcName, "failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
