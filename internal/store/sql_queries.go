package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/flexisourceit/employee-record-api/models"
)

const employeesTable = "employees"

// employeeColumns lists the columns scanned into models.Employee,
// in scan order.
var employeeColumns = []string{
	"employee_number",
	"first_name",
	"last_name",
	"temperature",
	"record_date",
}

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	insertEmployee = `INSERT INTO employees (employee_number, first_name, last_name, temperature, record_date)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING employee_number, first_name, last_name, temperature, record_date;`

	// replaceEmployee overwrites every caller-supplied field of the record
	// identified by employee_number. Clearing deleted_at preserves the
	// historical behaviour where a full overwrite of a soft-deleted record
	// brought it back to life.
	replaceEmployee = `UPDATE employees
    SET first_name = $2, last_name = $3, temperature = $4, record_date = $5, deleted_at = NULL
    WHERE employee_number = $1;`

	// softDeleteEmployee marks a record as logically removed. The row stays
	// physically present; read queries exclude it via the deleted_at filter.
	// Re-deleting an already-deleted record succeeds and refreshes the mark.
	softDeleteEmployee = `UPDATE employees
    SET deleted_at = NOW()
    WHERE employee_number = $1;`
)

// selectLiveEmployees is the base SELECT every read operation extends.
//
// It encodes the read-path liveness invariant twice over:
//   - deleted_at IS NULL excludes soft-deleted records;
//   - record_date <> 2100-01-01 excludes records carrying the historical
//     sentinel date, which the legacy data set used as its deletion marker.
//     A record "naturally" dated 2100-01-01 is therefore invisible too,
//     exactly as it was in the original system.
func selectLiveEmployees() sq.SelectBuilder {
	return psql.Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.NotEq{"record_date": models.SentinelDeletionDate}).
		OrderBy("employee_number")
}

func buildListEmployeesQuery() (string, []any, error) {
	return selectLiveEmployees().ToSql()
}

func buildEmployeeByNumberQuery(employeeNumber int64) (string, []any, error) {
	return selectLiveEmployees().
		Where(sq.Eq{"employee_number": employeeNumber}).
		ToSql()
}

func buildEmployeesByFirstNameQuery(firstName string) (string, []any, error) {
	return selectLiveEmployees().
		Where(sq.Eq{"first_name": firstName}).
		ToSql()
}

func buildEmployeesByLastNameQuery(lastName string) (string, []any, error) {
	return selectLiveEmployees().
		Where(sq.Eq{"last_name": lastName}).
		ToSql()
}

// buildEmployeesByTemperatureRangeQuery matches temperatures inclusively at
// both bounds. An inverted range (min > max) builds a query that matches
// nothing; it is not rejected.
func buildEmployeesByTemperatureRangeQuery(tempRange models.TemperatureRange) (string, []any, error) {
	return selectLiveEmployees().
		Where(sq.GtOrEq{"temperature": tempRange.MinTemperature}).
		Where(sq.LtOrEq{"temperature": tempRange.MaxTemperature}).
		ToSql()
}

// buildEmployeesByDateRangeQuery matches record dates inclusively at both
// bounds. An inverted range builds a query that matches nothing.
func buildEmployeesByDateRangeQuery(dateRange models.DateRange) (string, []any, error) {
	return selectLiveEmployees().
		Where(sq.GtOrEq{"record_date": dateRange.StartDate}).
		Where(sq.LtOrEq{"record_date": dateRange.EndDate}).
		ToSql()
}
