package service

import (
	"github.com/flexisourceit/employee-record-api/internal/config"
	"github.com/flexisourceit/employee-record-api/internal/logger"
	"github.com/flexisourceit/employee-record-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(cfg.Auth, logger),
		EmployeeService: NewEmployeeService(storages.EmployeeRepository, logger),
	}
}
