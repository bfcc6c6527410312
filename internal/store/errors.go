// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmployeeNotFound is returned when a lookup, update, or delete targets
	// an employee number that does not match any live record.
	ErrEmployeeNotFound = errors.New("employee was not found")

	// ErrEmployeeAlreadyExists is returned when an INSERT collides with the
	// primary-key constraint on employee_number. No uniqueness pre-check is
	// performed; the constraint is the only guard.
	ErrEmployeeAlreadyExists = errors.New("employee number already exists")

	// ErrUpdateConflict is returned when a write loses a race against a
	// concurrent transaction (serialization failure or deadlock rollback).
	// The service surfaces the conflict to the caller and does not retry.
	ErrUpdateConflict = errors.New("employee update conflict occurred")

	// ErrStoreNotInitialized is returned when a query fails because the
	// employees table does not exist, i.e. the store has never been
	// initialized. Reads report this as a distinct not-found condition.
	ErrStoreNotInitialized = errors.New("employee store is not initialized")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan employee row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan employee rows")
)
