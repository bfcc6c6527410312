package store

import (
	"context"

	"github.com/flexisourceit/employee-record-api/models"
)

// EmployeeRepository is the data-access contract for employee records.
//
// All Find methods apply the read-path liveness filter: soft-deleted records
// and records dated with the historical deletion sentinel (2100-01-01) are
// never returned. Write methods deliberately do not apply the filter, so a
// full-replacement update can resurrect a soft-deleted record and a repeated
// delete is a harmless no-op.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]models.Employee, error)
	FindByNumber(ctx context.Context, employeeNumber int64) (models.Employee, error)
	FindByFirstName(ctx context.Context, firstName string) ([]models.Employee, error)
	FindByLastName(ctx context.Context, lastName string) ([]models.Employee, error)
	FindByTemperatureRange(ctx context.Context, tempRange models.TemperatureRange) ([]models.Employee, error)
	FindByDateRange(ctx context.Context, dateRange models.DateRange) ([]models.Employee, error)

	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Replace(ctx context.Context, employee models.Employee) error
	SoftDelete(ctx context.Context, employeeNumber int64) error
}
