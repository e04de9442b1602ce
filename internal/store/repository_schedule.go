package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// scheduleRepository is the SQL-backed implementation of [ScheduleRepository].
//
// The next_due column is read into [models.DueDate], so rows written by older
// clients as text, as timestamps or not at all are all returned; resolving
// them is left to the caller.
type scheduleRepository struct {
	*DB
	logger *logger.Logger
}

// NewScheduleRepository constructs a [ScheduleRepository].
func NewScheduleRepository(db *DB, logger *logger.Logger) ScheduleRepository {
	logger.Debug().Msg("creating schedule repository")
	return &scheduleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *scheduleRepository) CreateScheduleEntry(ctx context.Context, entry models.ScheduleEntry) (models.ScheduleEntry, error) {
	query, args, err := r.buildInsertScheduleEntryQuery(entry)
	if err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.isForeignKeyViolation(err) {
			return models.ScheduleEntry{}, ErrPlantNotFound
		}
		r.logError(ctx, err, "scheduleRepository.CreateScheduleEntry", "failed to insert schedule entry")
		return models.ScheduleEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *scheduleRepository) ListScheduleEntries(ctx context.Context, plantID string) ([]models.ScheduleEntry, error) {
	query, args, err := r.buildSelectScheduleEntriesQuery(plantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, "scheduleRepository.ListScheduleEntries", "failed to execute query for schedule entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ScheduleEntry, 0)
	for rows.Next() {
		entry, err := scanScheduleEntry(rows)
		if err != nil {
			r.logError(ctx, err, "scheduleRepository.ListScheduleEntries", "failed to scan schedule row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		r.logError(ctx, err, "scheduleRepository.ListScheduleEntries", "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *scheduleRepository) GetScheduleEntry(ctx context.Context, plantID, entryID string) (models.ScheduleEntry, error) {
	query, args, err := r.buildSelectScheduleEntryQuery(plantID, entryID)
	if err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanScheduleEntry(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScheduleEntry{}, ErrScheduleEntryNotFound
	}
	if err != nil {
		r.logError(ctx, err, "scheduleRepository.GetScheduleEntry", "failed to scan schedule row")
		return models.ScheduleEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *scheduleRepository) UpdateNextDue(ctx context.Context, plantID, entryID string, due time.Time) error {
	query, args, err := r.buildUpdateNextDueQuery(plantID, entryID, r.dueValue(due))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "scheduleRepository.UpdateNextDue", ErrScheduleEntryNotFound, query, args)
}

func (r *scheduleRepository) DeleteScheduleEntry(ctx context.Context, plantID, entryID string) error {
	query, args, err := r.buildDeleteScheduleEntryQuery(plantID, entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "scheduleRepository.DeleteScheduleEntry", ErrScheduleEntryNotFound, query, args)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanScheduleEntry reads one schedule row. The frequency column is scanned
// loosely: SQLite keeps non-numeric text in an INTEGER column, and such a row
// must not abort a whole listing. Unusable frequencies are returned as zero,
// which the rollover rejects.
func scanScheduleEntry(row rowScanner) (models.ScheduleEntry, error) {
	var (
		entry     models.ScheduleEntry
		frequency any
	)
	if err := row.Scan(&entry.ID, &entry.PlantID, &entry.Activity, &frequency, &entry.NextDue); err != nil {
		return models.ScheduleEntry{}, err
	}
	entry.Frequency = frequencyFromColumn(frequency)
	return entry, nil
}

// frequencyFromColumn converts a raw frequency value into days. NULL,
// fractional, non-numeric and non-positive values yield 0.
func frequencyFromColumn(v any) int {
	var days int64
	switch value := v.(type) {
	case int64:
		days = value
	case int32:
		days = int64(value)
	case int:
		days = int64(value)
	case float64:
		if value != math.Trunc(value) {
			return 0
		}
		days = int64(value)
	case []byte:
		return frequencyFromColumn(string(value))
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0
		}
		days = parsed
	default:
		return 0
	}

	if days <= 0 || days > math.MaxInt32 {
		return 0
	}
	return int(days)
}
