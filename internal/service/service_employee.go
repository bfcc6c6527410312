package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/flexisourceit/employee-record-api/internal/logger"
	"github.com/flexisourceit/employee-record-api/internal/store"
	"github.com/flexisourceit/employee-record-api/models"
)

// maxNameLength is the column limit for first and last names.
const maxNameLength = 50

// employeeService is the concrete implementation of EmployeeService.
//
// The liveness filter itself lives in the repository's read queries; this
// layer adds field validation on writes and resolves the "zero matches is a
// not-found outcome" rule of the lookup operations.
type employeeService struct {
	employeeRepository store.EmployeeRepository

	logger *logger.Logger
}

// NewEmployeeService constructs an EmployeeService wired to the given
// repository.
func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// List returns every live employee record.
//
// An empty collection is a valid result and is returned as-is; the
// repository reports the distinct "store never initialized" condition as
// [store.ErrStoreNotInitialized].
func (s *employeeService) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing employees failed: %w", err)
	}

	return employees, nil
}

// GetByNumber returns the live record with the given employee number, or
// [store.ErrEmployeeNotFound].
func (s *employeeService) GetByNumber(ctx context.Context, employeeNumber int64) (models.Employee, error) {
	employee, err := s.employeeRepository.FindByNumber(ctx, employeeNumber)
	if err != nil {
		return models.Employee{}, fmt.Errorf("employee search by number failed: %w", err)
	}

	return employee, nil
}

// GetByFirstName returns the live records matching firstName exactly.
// Zero matches resolve to [store.ErrEmployeeNotFound].
func (s *employeeService) GetByFirstName(ctx context.Context, firstName string) ([]models.Employee, error) {
	employees, err := s.employeeRepository.FindByFirstName(ctx, firstName)
	if err != nil {
		return nil, fmt.Errorf("employee search by first name failed: %w", err)
	}

	return s.requireMatches(ctx, employees)
}

// GetByLastName returns the live records matching lastName exactly.
// Zero matches resolve to [store.ErrEmployeeNotFound].
func (s *employeeService) GetByLastName(ctx context.Context, lastName string) ([]models.Employee, error) {
	employees, err := s.employeeRepository.FindByLastName(ctx, lastName)
	if err != nil {
		return nil, fmt.Errorf("employee search by last name failed: %w", err)
	}

	return s.requireMatches(ctx, employees)
}

// GetByTemperatureRange returns the live records within the inclusive
// temperature range. The bounds are accepted as given: an inverted range
// (min > max) is not rejected and simply yields zero matches, which resolve
// to [store.ErrEmployeeNotFound].
func (s *employeeService) GetByTemperatureRange(ctx context.Context, tempRange models.TemperatureRange) ([]models.Employee, error) {
	employees, err := s.employeeRepository.FindByTemperatureRange(ctx, tempRange)
	if err != nil {
		return nil, fmt.Errorf("employee search by temperature range failed: %w", err)
	}

	return s.requireMatches(ctx, employees)
}

// GetByDateRange returns the live records within the inclusive date range.
// As with temperatures, an inverted range yields zero matches rather than
// an error.
func (s *employeeService) GetByDateRange(ctx context.Context, dateRange models.DateRange) ([]models.Employee, error) {
	employees, err := s.employeeRepository.FindByDateRange(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("employee search by date range failed: %w", err)
	}

	return s.requireMatches(ctx, employees)
}

// Create validates and inserts a new record. The caller supplies every
// field, including the employee number; uniqueness is enforced solely by the
// store's primary-key constraint.
func (s *employeeService) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if err := validateEmployee(employee); err != nil {
		log.Err(err).Int64("employee_number", employee.EmployeeNumber).Msg("invalid employee data provided")
		return models.Employee{}, err
	}

	created, err := s.employeeRepository.Create(ctx, employee)
	if err != nil {
		return models.Employee{}, fmt.Errorf("employee creation failed: %w", err)
	}

	return created, nil
}

// Update overwrites every field of the existing record identified by
// employee.EmployeeNumber (full replacement, never a partial patch).
//
// Returns [store.ErrEmployeeNotFound] when the record does not exist, or
// [store.ErrUpdateConflict] when a concurrent writer wins the race; the
// conflict is surfaced, not resolved.
func (s *employeeService) Update(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	if err := validateEmployee(employee); err != nil {
		log.Err(err).Int64("employee_number", employee.EmployeeNumber).Msg("invalid employee data provided")
		return err
	}

	if err := s.employeeRepository.Replace(ctx, employee); err != nil {
		return fmt.Errorf("employee update failed: %w", err)
	}

	return nil
}

// Delete soft-deletes the record identified by employeeNumber. The record
// stays physically present and merely disappears from every read operation.
func (s *employeeService) Delete(ctx context.Context, employeeNumber int64) error {
	if err := s.employeeRepository.SoftDelete(ctx, employeeNumber); err != nil {
		return fmt.Errorf("employee deletion failed: %w", err)
	}

	return nil
}

// requireMatches resolves the empty result of a lookup operation into the
// not-found outcome. List is the only read operation exempt from this rule.
func (s *employeeService) requireMatches(ctx context.Context, employees []models.Employee) ([]models.Employee, error) {
	if len(employees) == 0 {
		logger.FromContext(ctx).Info().Msg("no employees matched the query")
		return nil, store.ErrEmployeeNotFound
	}

	return employees, nil
}

// validateEmployee enforces the field constraints of the persisted schema:
// names are required and at most 50 characters, the record date is required.
func validateEmployee(employee models.Employee) error {
	if employee.FirstName == "" || employee.LastName == "" {
		return ErrInvalidDataProvided
	}

	if utf8.RuneCountInString(employee.FirstName) > maxNameLength ||
		utf8.RuneCountInString(employee.LastName) > maxNameLength {
		return ErrInvalidDataProvided
	}

	if employee.RecordDate.IsZero() {
		return ErrInvalidDataProvided
	}

	return nil
}
