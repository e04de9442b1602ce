package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-plant-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	plantsTable          = "plants"
	plantTagsTable       = "plant_tags"
	journalEntriesTable  = "journal_entries"
	scheduleEntriesTable = "schedule_entries"
)

var (
	plantColumns    = []string{"id", "name", "kind", "origin", "care", "image", "created_at"}
	journalColumns  = []string{"id", "plant_id", "created_at", "note"}
	scheduleColumns = []string{"id", "plant_id", "activity", "frequency", "next_due"}
)

// ── plants ────────────────────────────────────────────────────────────────────

func (db *DB) buildInsertPlantQuery(p models.Plant) (string, []any, error) {
	return db.builder.
		Insert(plantsTable).
		Columns(plantColumns...).
		Values(p.ID, p.Name, p.Kind, p.Origin, p.Care, p.Image, p.CreatedAt.UTC()).
		ToSql()
}

func (db *DB) buildSelectPlantQuery(plantID string) (string, []any, error) {
	return db.builder.
		Select(plantColumns...).
		From(plantsTable).
		Where(sq.Eq{"id": plantID}).
		ToSql()
}

// buildSelectPlantsQuery lists plants by name. A non-empty tag keeps only
// plants carrying it.
func (db *DB) buildSelectPlantsQuery(filter models.PlantFilter) (string, []any, error) {
	query := db.builder.
		Select(plantColumns...).
		From(plantsTable).
		OrderBy("name", "id")

	if filter.Tag != "" {
		sub, subArgs, err := sq.Select("plant_id").
			From(plantTagsTable).
			Where(sq.Eq{"tag": filter.Tag}).
			ToSql()
		if err != nil {
			return "", nil, err
		}
		query = query.Where(sq.Expr("id IN ("+sub+")", subArgs...))
	}

	return query.ToSql()
}

func (db *DB) buildUpdatePlantQuery(p models.Plant) (string, []any, error) {
	return db.builder.
		Update(plantsTable).
		SetMap(map[string]any{
			"name":   p.Name,
			"kind":   p.Kind,
			"origin": p.Origin,
			"care":   p.Care,
			"image":  p.Image,
		}).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

func (db *DB) buildDeletePlantQuery(plantID string) (string, []any, error) {
	return db.builder.
		Delete(plantsTable).
		Where(sq.Eq{"id": plantID}).
		ToSql()
}

// ── tags ──────────────────────────────────────────────────────────────────────

// buildInsertTagsQuery returns an empty query when there are no tags.
func (db *DB) buildInsertTagsQuery(plantID string, tags []string) (string, []any, error) {
	if len(tags) == 0 {
		return "", nil, nil
	}

	query := db.builder.Insert(plantTagsTable).Columns("plant_id", "tag")
	for _, tag := range tags {
		query = query.Values(plantID, tag)
	}
	return query.ToSql()
}

func (db *DB) buildSelectTagsQuery(plantIDs []string) (string, []any, error) {
	return db.builder.
		Select("plant_id", "tag").
		From(plantTagsTable).
		Where(sq.Eq{"plant_id": plantIDs}).
		OrderBy("plant_id", "tag").
		ToSql()
}

func (db *DB) buildDeleteTagsQuery(plantID string) (string, []any, error) {
	return db.builder.
		Delete(plantTagsTable).
		Where(sq.Eq{"plant_id": plantID}).
		ToSql()
}

// buildDeleteBatchQuery deletes at most batchSize rows of table that belong
// to the plant. The page is selected by a LIMIT subquery, which both
// PostgreSQL and SQLite accept inside IN.
func (db *DB) buildDeleteBatchQuery(table, plantID string, batchSize int) (string, []any, error) {
	if batchSize <= 0 {
		return "", nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	sub, subArgs, err := sq.Select("id").
		From(table).
		Where(sq.Eq{"plant_id": plantID}).
		Limit(uint64(batchSize)).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return db.builder.
		Delete(table).
		Where(sq.Expr("id IN ("+sub+")", subArgs...)).
		ToSql()
}

// ── journal ───────────────────────────────────────────────────────────────────

func (db *DB) buildInsertJournalEntryQuery(e models.JournalEntry) (string, []any, error) {
	return db.builder.
		Insert(journalEntriesTable).
		Columns(journalColumns...).
		Values(e.ID, e.PlantID, e.CreatedAt.UTC(), e.Note).
		ToSql()
}

func (db *DB) buildSelectJournalEntriesQuery(plantID string) (string, []any, error) {
	return db.builder.
		Select(journalColumns...).
		From(journalEntriesTable).
		Where(sq.Eq{"plant_id": plantID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (db *DB) buildSelectJournalEntryQuery(plantID, entryID string) (string, []any, error) {
	return db.builder.
		Select(journalColumns...).
		From(journalEntriesTable).
		Where(sq.Eq{"id": entryID, "plant_id": plantID}).
		ToSql()
}

// buildUpdateJournalNoteQuery touches the note only; created_at is immutable.
func (db *DB) buildUpdateJournalNoteQuery(plantID, entryID, note string) (string, []any, error) {
	return db.builder.
		Update(journalEntriesTable).
		Set("note", note).
		Where(sq.Eq{"id": entryID, "plant_id": plantID}).
		ToSql()
}

func (db *DB) buildDeleteJournalEntryQuery(plantID, entryID string) (string, []any, error) {
	return db.builder.
		Delete(journalEntriesTable).
		Where(sq.Eq{"id": entryID, "plant_id": plantID}).
		ToSql()
}

// ── schedules ─────────────────────────────────────────────────────────────────

func (db *DB) buildInsertScheduleEntryQuery(e models.ScheduleEntry) (string, []any, error) {
	var next any
	switch e.NextDue.Kind() {
	case models.DueDateNative:
		due, _ := e.NextDue.Resolve(time.UTC)
		next = db.dueValue(due)
	default:
		value, err := e.NextDue.Value()
		if err != nil {
			return "", nil, err
		}
		next = value
	}

	return db.builder.
		Insert(scheduleEntriesTable).
		Columns(scheduleColumns...).
		Values(e.ID, e.PlantID, e.Activity, e.Frequency, next).
		ToSql()
}

func (db *DB) buildSelectScheduleEntriesQuery(plantID string) (string, []any, error) {
	return db.builder.
		Select(scheduleColumns...).
		From(scheduleEntriesTable).
		Where(sq.Eq{"plant_id": plantID}).
		OrderBy("next_due", "id").
		ToSql()
}

func (db *DB) buildSelectScheduleEntryQuery(plantID, entryID string) (string, []any, error) {
	return db.builder.
		Select(scheduleColumns...).
		From(scheduleEntriesTable).
		Where(sq.Eq{"id": entryID, "plant_id": plantID}).
		ToSql()
}

func (db *DB) buildUpdateNextDueQuery(plantID, entryID string, due any) (string, []any, error) {
	return db.builder.
		Update(scheduleEntriesTable).
		Set("next_due", due).
		Where(sq.Eq{"id": entryID, "plant_id": plantID}).
		ToSql()
}

func (db *DB) buildDeleteScheduleEntryQuery(plantID, entryID string) (string, []any, error) {
	return db.builder.
		Delete(scheduleEntriesTable).
		Where(sq.Eq{"id": entryID, "plant_id": plantID}).
		ToSql()
}
