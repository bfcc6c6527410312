package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flexisourceit/employee-record-api/internal/logger"
	"github.com/flexisourceit/employee-record-api/internal/utils"
	"github.com/flexisourceit/employee-record-api/models"
)

// getAllEmployees handles GET /GetAllEmployees.
//
// An empty table yields 200 with an empty array; 404 is reserved for the
// "store never initialized" condition.
func (h *Handler) getAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.services.EmployeeService.List(r.Context())
	if err != nil {
		h.respondError(w, r, err, "error listing employees")
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

// getEmployeeByID handles GET /GetById/{id}.
func (h *Handler) getEmployeeByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	employeeNumber, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid employee number in path")
		http.Error(w, "invalid employee number", http.StatusBadRequest)
		return
	}

	employee, err := h.services.EmployeeService.GetByNumber(r.Context(), employeeNumber)
	if err != nil {
		h.respondError(w, r, err, "error getting employee by number")
		return
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

// getEmployeesByFirstName handles GET /GetByFirstName/{firstName}.
func (h *Handler) getEmployeesByFirstName(w http.ResponseWriter, r *http.Request) {
	firstName := chi.URLParam(r, "firstName")

	employees, err := h.services.EmployeeService.GetByFirstName(r.Context(), firstName)
	if err != nil {
		h.respondError(w, r, err, "error getting employees by first name")
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

// getEmployeesByLastName handles GET /GetByLastName/{lastName}.
func (h *Handler) getEmployeesByLastName(w http.ResponseWriter, r *http.Request) {
	lastName := chi.URLParam(r, "lastName")

	employees, err := h.services.EmployeeService.GetByLastName(r.Context(), lastName)
	if err != nil {
		h.respondError(w, r, err, "error getting employees by last name")
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

// getEmployeesByTemperatureRange handles POST /GetByTemperatureRange.
// Bounds are inclusive; an inverted range yields 404, never 400.
func (h *Handler) getEmployeesByTemperatureRange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var tempRange models.TemperatureRange
	if err := json.NewDecoder(r.Body).Decode(&tempRange); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	employees, err := h.services.EmployeeService.GetByTemperatureRange(r.Context(), tempRange)
	if err != nil {
		h.respondError(w, r, err, "error getting employees by temperature range")
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

// getEmployeesByDateRange handles POST /GetByDateRange.
// Bounds are inclusive; an inverted range yields 404, never 400.
func (h *Handler) getEmployeesByDateRange(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var dateRange models.DateRange
	if err := json.NewDecoder(r.Body).Decode(&dateRange); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	employees, err := h.services.EmployeeService.GetByDateRange(r.Context(), dateRange)
	if err != nil {
		h.respondError(w, r, err, "error getting employees by date range")
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

// addEmployee handles POST /AddEmployee and returns the created record.
func (h *Handler) addEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.EmployeeService.Create(r.Context(), employee)
	if err != nil {
		h.respondError(w, r, err, "error creating employee")
		return
	}

	log.Info().Int64("employee_number", created.EmployeeNumber).Msg("employee created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateEmployee handles PUT /UpdateEmployee.
//
// The body is a complete record; every field of the stored record is
// overwritten with the supplied values. There is no partial-patch form.
func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.EmployeeService.Update(r.Context(), employee); err != nil {
		h.respondError(w, r, err, "error updating employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteEmployee handles DELETE /DeleteEmployee/{id}. Deletion is always
// soft: the record is excluded from reads but never physically removed.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	employeeNumber, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid employee number in path")
		http.Error(w, "invalid employee number", http.StatusBadRequest)
		return
	}

	if err := h.services.EmployeeService.Delete(r.Context(), employeeNumber); err != nil {
		h.respondError(w, r, err, "error deleting employee")
		return
	}

	log.Info().Int64("employee_number", employeeNumber).Msg("employee soft-deleted")

	w.WriteHeader(http.StatusNoContent)
}

// respondError logs err and writes the HTTP outcome resolved through the
// error-status map. Unrecognised failures become opaque 500 responses.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(msg)

	status := statusFromError(err)
	http.Error(w, statusMessage(status), status)
}
