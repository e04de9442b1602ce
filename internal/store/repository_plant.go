package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/models"
)

// plantRepository is the SQL-backed implementation of [PlantRepository].
// Tags live in the plant_tags table and are always written in the same
// transaction as the plant row.
type plantRepository struct {
	*DB
	logger          *logger.Logger
	deleteBatchSize int
}

// NewPlantRepository constructs a [PlantRepository]. deleteBatchSize is the
// page size used by DeletePlant for the journal and schedule rows.
func NewPlantRepository(db *DB, deleteBatchSize int, logger *logger.Logger) PlantRepository {
	logger.Debug().Msg("creating plant repository")
	return &plantRepository{
		DB:              db,
		logger:          logger,
		deleteBatchSize: deleteBatchSize,
	}
}

// CreatePlant inserts the plant and its tags in one transaction.
func (r *plantRepository) CreatePlant(ctx context.Context, plant models.Plant) (models.Plant, error) {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		r.logError(ctx, err, "plantRepository.CreatePlant", "failed to begin transaction")
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx)

	query, args, err := r.buildInsertPlantQuery(plant)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logError(ctx, err, "plantRepository.CreatePlant", "failed to insert plant")
		return models.Plant{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = r.insertTags(ctx, tx, plant.ID, plant.Tags); err != nil {
		return models.Plant{}, err
	}

	if err = tx.Commit(); err != nil {
		r.logError(ctx, err, "plantRepository.CreatePlant", "failed to commit transaction")
		return models.Plant{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return plant, nil
}

// GetPlant returns the plant with its tags.
func (r *plantRepository) GetPlant(ctx context.Context, plantID string) (models.Plant, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectPlantQuery(plantID)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var plant models.Plant
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&plant.ID, &plant.Name, &plant.Kind, &plant.Origin, &plant.Care, &plant.Image, &plant.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "plantRepository.GetPlant").Str("plant_id", plantID).Msg("plant not found")
		return models.Plant{}, ErrPlantNotFound
	}
	if err != nil {
		r.logError(ctx, err, "plantRepository.GetPlant", "failed to scan plant row")
		return models.Plant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	tags, err := r.selectTags(ctx, []string{plantID})
	if err != nil {
		return models.Plant{}, err
	}
	plant.Tags = nonNilTags(tags[plantID])

	return plant, nil
}

// ListPlants returns all plants ordered by name, optionally only those
// carrying filter.Tag.
func (r *plantRepository) ListPlants(ctx context.Context, filter models.PlantFilter) ([]models.Plant, error) {
	query, args, err := r.buildSelectPlantsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, "plantRepository.ListPlants", "failed to execute query for listing plants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plants := make([]models.Plant, 0)
	for rows.Next() {
		var plant models.Plant
		if err = rows.Scan(
			&plant.ID, &plant.Name, &plant.Kind, &plant.Origin, &plant.Care, &plant.Image, &plant.CreatedAt,
		); err != nil {
			r.logError(ctx, err, "plantRepository.ListPlants", "failed to scan plant row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		plants = append(plants, plant)
	}
	if err = rows.Err(); err != nil {
		r.logError(ctx, err, "plantRepository.ListPlants", "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(plants) == 0 {
		return plants, nil
	}

	ids := make([]string, len(plants))
	for i, plant := range plants {
		ids[i] = plant.ID
	}
	tags, err := r.selectTags(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range plants {
		plants[i].Tags = nonNilTags(tags[plants[i].ID])
	}

	return plants, nil
}

// UpdatePlant replaces every editable field and the full tag set.
func (r *plantRepository) UpdatePlant(ctx context.Context, plant models.Plant) error {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		r.logError(ctx, err, "plantRepository.UpdatePlant", "failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx)

	query, args, err := r.buildUpdatePlantQuery(plant)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, "plantRepository.UpdatePlant", "failed to update plant")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrPlantNotFound
	}

	query, args, err = r.buildDeleteTagsQuery(plant.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logError(ctx, err, "plantRepository.UpdatePlant", "failed to delete old tags")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = r.insertTags(ctx, tx, plant.ID, plant.Tags); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		r.logError(ctx, err, "plantRepository.UpdatePlant", "failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// DeletePlant removes journal entries and schedule entries page by page,
// then the tags and the plant row, all in one transaction. Paging stops as
// soon as a page deletes fewer rows than the batch size.
func (r *plantRepository) DeletePlant(ctx context.Context, plantID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		r.logError(ctx, err, "plantRepository.DeletePlant", "failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx)

	for _, table := range []string{journalEntriesTable, scheduleEntriesTable} {
		deleted, err := r.deleteInBatches(ctx, tx, table, plantID)
		if err != nil {
			return err
		}
		log.Debug().
			Str("func", "plantRepository.DeletePlant").
			Str("plant_id", plantID).
			Str("table", table).
			Int64("deleted", deleted).
			Msg("deleted sub-collection")
	}

	query, args, err := r.buildDeleteTagsQuery(plantID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logError(ctx, err, "plantRepository.DeletePlant", "failed to delete tags")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = r.buildDeletePlantQuery(plantID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, "plantRepository.DeletePlant", "failed to delete plant")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrPlantNotFound
	}

	if err = tx.Commit(); err != nil {
		r.logError(ctx, err, "plantRepository.DeletePlant", "failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *plantRepository) deleteInBatches(ctx context.Context, tx *sql.Tx, table, plantID string) (int64, error) {
	query, args, err := r.buildDeleteBatchQuery(table, plantID, r.deleteBatchSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	for {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			r.logError(ctx, err, "plantRepository.deleteInBatches", "failed to delete batch")
			return total, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		total += affected

		if affected < int64(r.deleteBatchSize) {
			return total, nil
		}
	}
}

func (r *plantRepository) insertTags(ctx context.Context, tx *sql.Tx, plantID string, tags []string) error {
	query, args, err := r.buildInsertTagsQuery(plantID, tags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if query == "" {
		return nil
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logError(ctx, err, "plantRepository.insertTags", "failed to insert tags")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// selectTags loads the tags of the given plants keyed by plant ID.
func (r *plantRepository) selectTags(ctx context.Context, plantIDs []string) (map[string][]string, error) {
	query, args, err := r.buildSelectTagsQuery(plantIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logError(ctx, err, "plantRepository.selectTags", "failed to execute query for tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make(map[string][]string, len(plantIDs))
	for rows.Next() {
		var plantID, tag string
		if err = rows.Scan(&plantID, &tag); err != nil {
			r.logError(ctx, err, "plantRepository.selectTags", "failed to scan tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags[plantID] = append(tags[plantID], tag)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
