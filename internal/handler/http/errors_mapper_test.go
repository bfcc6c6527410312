package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flexisourceit/employee-record-api/internal/service"
	"github.com/flexisourceit/employee-record-api/internal/store"
)

func Test_statusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "expired token", err: service.ErrTokenIsExpired, want: http.StatusUnauthorized},
		{name: "invalid token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "employee not found", err: store.ErrEmployeeNotFound, want: http.StatusNotFound},
		{name: "store not initialized", err: store.ErrStoreNotInitialized, want: http.StatusNotFound},
		{name: "update conflict", err: store.ErrUpdateConflict, want: http.StatusConflict},
		{name: "duplicate employee number", err: store.ErrEmployeeAlreadyExists, want: http.StatusInternalServerError},
		{name: "query execution failure", err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{
			name: "wrapped sentinel is still matched",
			err:  fmt.Errorf("employee update failed: %w", store.ErrUpdateConflict),
			want: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func Test_statusMessage(t *testing.T) {
	assert.Equal(t, "employee not found", statusMessage(http.StatusNotFound))
	assert.Equal(t, "employee was modified concurrently", statusMessage(http.StatusConflict))
	assert.Equal(t, "invalid data provided", statusMessage(http.StatusBadRequest))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), statusMessage(http.StatusInternalServerError))
}
