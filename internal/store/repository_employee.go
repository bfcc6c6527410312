package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flexisourceit/employee-record-api/internal/logger"
	"github.com/flexisourceit/employee-record-api/models"
)

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository]. It executes all record operations directly against
// the "employees" table using the embedded [*DB] connection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type employeeRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		DB:     db,
		logger: logger,
	}
}

// FindAll returns every live employee record.
//
// An empty result is a valid outcome and returns an empty slice; the only
// not-found condition at this level is [ErrStoreNotInitialized], raised when
// the employees table itself is missing.
func (r *employeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	query, args, err := buildListEmployeesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "employeeRepository.FindAll", query, args)
}

// FindByNumber returns the live record with the given employee number.
//
// Returns [ErrEmployeeNotFound] when no live record matches — including the
// case where the record exists but has been soft-deleted.
func (r *employeeRepository) FindByNumber(ctx context.Context, employeeNumber int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEmployeeByNumberQuery(employeeNumber)
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var employee models.Employee
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&employee.EmployeeNumber,
		&employee.FirstName,
		&employee.LastName,
		&employee.Temperature,
		&employee.RecordDate,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		if classified := classifyPostgresError(err); classified != nil {
			return models.Employee{}, classified
		}

		log.Err(err).
			Str("func", "employeeRepository.FindByNumber").
			Int64("employee_number", employeeNumber).
			Msg("failed to query employee by number")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return employee, nil
}

// FindByFirstName returns the live records matching firstName exactly.
func (r *employeeRepository) FindByFirstName(ctx context.Context, firstName string) ([]models.Employee, error) {
	query, args, err := buildEmployeesByFirstNameQuery(firstName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "employeeRepository.FindByFirstName", query, args)
}

// FindByLastName returns the live records matching lastName exactly.
func (r *employeeRepository) FindByLastName(ctx context.Context, lastName string) ([]models.Employee, error) {
	query, args, err := buildEmployeesByLastNameQuery(lastName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "employeeRepository.FindByLastName", query, args)
}

// FindByTemperatureRange returns the live records whose temperature lies
// within the inclusive range. An inverted range yields zero matches.
func (r *employeeRepository) FindByTemperatureRange(ctx context.Context, tempRange models.TemperatureRange) ([]models.Employee, error) {
	query, args, err := buildEmployeesByTemperatureRangeQuery(tempRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "employeeRepository.FindByTemperatureRange", query, args)
}

// FindByDateRange returns the live records whose record date lies within the
// inclusive range. An inverted range yields zero matches.
func (r *employeeRepository) FindByDateRange(ctx context.Context, dateRange models.DateRange) ([]models.Employee, error) {
	query, args, err := buildEmployeesByDateRangeQuery(dateRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "employeeRepository.FindByDateRange", query, args)
}

// Create inserts a new employee record and returns the canonical database
// representation produced by the INSERT ... RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmployeeAlreadyExists].
//   - Missing table (42P01) → [ErrStoreNotInitialized].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *employeeRepository) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	var created models.Employee
	row := r.DB.QueryRowContext(ctx, insertEmployee,
		employee.EmployeeNumber,
		employee.FirstName,
		employee.LastName,
		employee.Temperature,
		employee.RecordDate,
	)
	if err := row.Scan(
		&created.EmployeeNumber,
		&created.FirstName,
		&created.LastName,
		&created.Temperature,
		&created.RecordDate,
	); err != nil {
		if classified := classifyPostgresError(err); classified != nil {
			log.Err(err).
				Str("func", "employeeRepository.Create").
				Int64("employee_number", employee.EmployeeNumber).
				Msg("employee insert rejected by the database")
			return models.Employee{}, classified
		}

		log.Err(err).
			Str("func", "employeeRepository.Create").
			Int64("employee_number", employee.EmployeeNumber).
			Msg("failed to insert employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "employeeRepository.Create").
		Int64("employee_number", created.EmployeeNumber).
		Msg("successfully created employee record")

	return created, nil
}

// Replace overwrites every field of the record identified by
// employee.EmployeeNumber with the supplied values (full replacement, not a
// partial patch) and clears its deletion mark.
//
// Returns [ErrEmployeeNotFound] when no row matches the employee number, and
// [ErrUpdateConflict] when the write loses a race against a concurrent
// transaction. Conflicts are reported, never retried.
func (r *employeeRepository) Replace(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, replaceEmployee,
		employee.EmployeeNumber,
		employee.FirstName,
		employee.LastName,
		employee.Temperature,
		employee.RecordDate,
	)
	if err != nil {
		if classified := classifyPostgresError(err); classified != nil {
			log.Err(err).
				Str("func", "employeeRepository.Replace").
				Int64("employee_number", employee.EmployeeNumber).
				Msg("employee update rejected by the database")
			return classified
		}

		log.Err(err).
			Str("func", "employeeRepository.Replace").
			Int64("employee_number", employee.EmployeeNumber).
			Msg("failed to update employee")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "employeeRepository.Replace").
			Int64("employee_number", employee.EmployeeNumber).
			Msg("employee not found")
		return ErrEmployeeNotFound
	}

	return nil
}

// SoftDelete marks the record identified by employeeNumber as logically
// removed by setting its deleted_at timestamp. The row is never physically
// destroyed. Deleting an already-deleted record succeeds again, mirroring
// the behaviour of the original system's unfiltered primary-key lookup.
//
// Returns [ErrEmployeeNotFound] when no row matches the employee number.
func (r *employeeRepository) SoftDelete(ctx context.Context, employeeNumber int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, softDeleteEmployee, employeeNumber)
	if err != nil {
		if classified := classifyPostgresError(err); classified != nil {
			return classified
		}

		log.Err(err).
			Str("func", "employeeRepository.SoftDelete").
			Int64("employee_number", employeeNumber).
			Msg("failed to soft delete employee")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "employeeRepository.SoftDelete").
			Int64("employee_number", employeeNumber).
			Msg("employee not found")
		return ErrEmployeeNotFound
	}

	log.Info().
		Str("func", "employeeRepository.SoftDelete").
		Int64("employee_number", employeeNumber).
		Msg("successfully soft-deleted employee record")

	return nil
}

// queryEmployees executes a read query built by one of the sql_queries.go
// builders and scans the full result set.
func (r *employeeRepository) queryEmployees(ctx context.Context, funcName, query string, args []any) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		if classified := classifyPostgresError(err); classified != nil {
			log.Err(err).
				Str("func", funcName).
				Msg("employee query rejected by the database")
			return nil, classified
		}

		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute employee query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0, 16)

	for rows.Next() {
		var employee models.Employee

		scanErr := rows.Scan(
			&employee.EmployeeNumber,
			&employee.FirstName,
			&employee.LastName,
			&employee.Temperature,
			&employee.RecordDate,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan employee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		employees = append(employees, employee)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return employees, nil
}
