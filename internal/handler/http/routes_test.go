package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexisourceit/employee-record-api/internal/logger"
	"github.com/flexisourceit/employee-record-api/internal/service"
	"github.com/flexisourceit/employee-record-api/models"
)

// newTestRouter wires a full router with permissive mocks so requests can be
// driven end to end through the middleware chain.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{
			createTokenFn: func(_ context.Context, _ models.TokenRequest) (models.Token, error) {
				return models.Token{SignedString: "signed.jwt.token"}, nil
			},
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != "valid-token" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{Claims: models.TokenClaims{Email: "ana@example.com", UserID: 42}}, nil
			},
		},
		EmployeeService: &mockEmployeeService{
			listFn: func(_ context.Context) ([]models.Employee, error) {
				return []models.Employee{testEmployee()}, nil
			},
		},
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

func TestRoutes_GenerateTokenIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/GenerateToken", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// reaches the handler without a bearer token; the empty body is the
	// handler's own concern, not the auth middleware's
	assert.NotEqual(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_RecordRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/GetAllEmployees"},
		{http.MethodGet, "/GetById/1"},
		{http.MethodGet, "/GetByFirstName/Ana"},
		{http.MethodGet, "/GetByLastName/Cruz"},
		{http.MethodPost, "/GetByTemperatureRange"},
		{http.MethodPost, "/GetByDateRange"},
		{http.MethodPut, "/UpdateEmployee"},
		{http.MethodPost, "/AddEmployee"},
		{http.MethodDelete, "/DeleteEmployee/1"},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRoutes_AuthorizedRequestPassesThrough(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/GetAllEmployees", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"firstName":"Ana"`)
}

func TestRoutes_RejectedTokenIs401(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/GetAllEmployees", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/GenerateToken", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestRoutes_IncomingTraceIDIsPropagated(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/GenerateToken", nil)
	req.Header.Set("X-Trace-ID", "caller-supplied-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "caller-supplied-id", rr.Header().Get("X-Trace-ID"))
}

func TestRoutes_UnknownPathIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/NoSuchRoute", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
