package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPlantNotFound is returned when a plant lookup, update or delete
	// targets an ID that does not exist, and when a journal or schedule entry
	// is inserted for a plant that does not exist.
	ErrPlantNotFound = errors.New("plant was not found")

	// ErrJournalEntryNotFound is returned when a journal entry identified by
	// plant ID and entry ID does not exist.
	ErrJournalEntryNotFound = errors.New("journal entry was not found")

	// ErrScheduleEntryNotFound is returned when a schedule entry identified
	// by plant ID and entry ID does not exist.
	ErrScheduleEntryNotFound = errors.New("schedule entry was not found")

	// ErrUnsupportedImageType is returned by [ImageStorage.SaveImage] when the
	// uploaded file extension is not one of png, jpg, jpeg or gif.
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// ErrUnsupportedDSN is returned by [Connect] when the DSN scheme matches
	// neither PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
