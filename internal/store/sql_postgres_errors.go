package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, bad data,
	// schema errors and anything not recognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks, a server that is starting up or out of resources.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	pgErr, ok := asPgError(err)
	if !ok {
		return NonRetryable
	}
	return classifySQLState(pgErr.Code)
}

// IsForeignKeyViolation reports whether err is SQLSTATE 23503. Inserting a
// journal or schedule row for a deleted plant ends up here.
func (c *PostgresErrorClassifier) IsForeignKeyViolation(err error) bool {
	pgErr, ok := asPgError(err)
	return ok && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// classifySQLState decides by SQLSTATE class: 08 connection exceptions,
// 40 transaction rollbacks, 53 insufficient resources and 57 operator
// intervention are retryable. Query cancellation (57014) is not, since it
// is caused by our own context.
func classifySQLState(code string) ErrorClassification {
	switch {
	case code == pgerrcode.QueryCanceled:
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}

func asPgError(err error) (*pgconn.PgError, bool) {
	if err == nil {
		return nil, false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
