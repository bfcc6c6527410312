package service

import (
	"context"

	"github.com/flexisourceit/employee-record-api/models"
)

// AuthService issues and validates the bearer tokens that gate every record
// operation. Tokens are stateless: nothing is persisted and there is no
// revocation list.
type AuthService interface {
	CreateToken(ctx context.Context, request models.TokenRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EmployeeService applies the record-management business rules on top of the
// employee repository: the liveness filter on reads, the zero-matches →
// not-found outcome of the lookup operations, field validation on writes,
// full-replacement update semantics, and soft deletion.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	GetByNumber(ctx context.Context, employeeNumber int64) (models.Employee, error)
	GetByFirstName(ctx context.Context, firstName string) ([]models.Employee, error)
	GetByLastName(ctx context.Context, lastName string) ([]models.Employee, error)
	GetByTemperatureRange(ctx context.Context, tempRange models.TemperatureRange) ([]models.Employee, error)
	GetByDateRange(ctx context.Context, dateRange models.DateRange) ([]models.Employee, error)

	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Update(ctx context.Context, employee models.Employee) error
	Delete(ctx context.Context, employeeNumber int64) error
}
