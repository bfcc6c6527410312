package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPostgresError maps a PostgreSQL driver error onto one of the
// package's domain sentinel errors.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Recognised codes:
//   - 23505 unique_violation          → [ErrEmployeeAlreadyExists]
//   - Class 40 transaction rollback
//     (40000, 40001, 40P01)           → [ErrUpdateConflict]
//   - 42P01 undefined_table           → [ErrStoreNotInitialized]
//
// Any other error — including non-PostgreSQL errors — yields nil, meaning
// the caller should treat the failure as an unexpected database error.
func classifyPostgresError(err error) error {
	if err == nil {
		return nil
	}

	// Attempt to unwrap to a pgconn.PgError.
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	// Class 23 — integrity constraint violations
	case pgerrcode.UniqueViolation:
		return ErrEmployeeAlreadyExists

	// Class 40 — transaction rollback: another writer got there first.
	// Surfaced as a conflict, never retried by the service.
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return ErrUpdateConflict

	// Class 42 — the employees table has never been created.
	case pgerrcode.UndefinedTable:
		return ErrStoreNotInitialized
	}

	return nil
}
