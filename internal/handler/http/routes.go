package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// token issuance is the only route reachable without a bearer token
	router.Group(func(r chi.Router) {
		r.Post("/GenerateToken", h.generateToken)
	})

	// every record operation sits behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/GetAllEmployees", h.getAllEmployees)
		r.Get("/GetById/{id}", h.getEmployeeByID)
		r.Get("/GetByFirstName/{firstName}", h.getEmployeesByFirstName)
		r.Get("/GetByLastName/{lastName}", h.getEmployeesByLastName)
		r.Post("/GetByTemperatureRange", h.getEmployeesByTemperatureRange)
		r.Post("/GetByDateRange", h.getEmployeesByDateRange)
		r.Put("/UpdateEmployee", h.updateEmployee)
		r.Post("/AddEmployee", h.addEmployee)
		r.Delete("/DeleteEmployee/{id}", h.deleteEmployee)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
