package store

import (
	"github.com/flexisourceit/employee-record-api/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	EmployeeRepository EmployeeRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		EmployeeRepository: NewEmployeeRepository(db, logger),
	}
}
