package http

import (
	"errors"
	"net/http"

	"github.com/flexisourceit/employee-record-api/internal/service"
	"github.com/flexisourceit/employee-record-api/internal/store"
)

// errorStatusMap resolves service- and store-level sentinel errors into HTTP
// status codes. Anything not listed is an internal error.
//
// Note that a duplicate employee number on create is deliberately mapped to
// 500 and not 409: no uniqueness pre-check exists, so the primary-key
// collision is a store-level failure, surfaced generically.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmployeeNotFound:      http.StatusNotFound,
	store.ErrStoreNotInitialized:   http.StatusNotFound,
	store.ErrUpdateConflict:        http.StatusConflict,
	store.ErrEmployeeAlreadyExists: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// statusMessage returns the response body text written for an error status.
// Internal errors never leak the underlying failure to the caller.
func statusMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "employee not found"
	case http.StatusConflict:
		return "employee was modified concurrently"
	case http.StatusBadRequest:
		return "invalid data provided"
	default:
		return http.StatusText(status)
	}
}
