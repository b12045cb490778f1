package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dhoini/Customer-microservice/internal/api/rest/handlers"
	"github.com/Dhoini/Customer-microservice/internal/domain"
	"github.com/Dhoini/Customer-microservice/internal/repository"
	"github.com/Dhoini/Customer-microservice/internal/service"
	"github.com/Dhoini/Customer-microservice/internal/validator"
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, svc service.CustomerService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	if svc == nil {
		svc = service.NewCustomerService(repository.NewInMemoryCustomerRepository(log), validator.New(), log)
	}
	return SetupRouter(log, prometheus.NewRegistry(), "customer-service", handlers.NewCustomerHandler(svc, log))
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&v))
	return v
}

const ivanJSON = `{"fullName":"Ivan Ivanov","email":"ivanov@gmail.com","phone":"+380976544547"}`

func TestCustomerLifecycle(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/customers", ivanJSON)
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[domain.ResponseDto](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Ivan Ivanov", created.FullName)

	w = do(t, r, http.MethodGet, "/api/customers/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[domain.ResponseDto](t, w))

	w = do(t, r, http.MethodPut, "/api/customers", `{"id":1,"fullName":"Ivan Petrov"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[domain.ResponseDto](t, w)
	assert.Equal(t, "Ivan Petrov", updated.FullName)
	assert.Equal(t, "+380976544547", updated.Phone)

	w = do(t, r, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.ResponseDto](t, w), 1)

	w = do(t, r, http.MethodDelete, "/api/customers/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodPut, "/api/customers/1", `{"fullName":"Ivan Sidorov"}`)
	assert.Equal(t, http.StatusGone, w.Code)
	assert.Equal(t, "can't update deleted customer: id = 1", decode[map[string]any](t, w)["error"])
}

func TestUpdatePathIDWins(t *testing.T) {
	r := newTestRouter(t, nil)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/customers", ivanJSON).Code)

	w := do(t, r, http.MethodPut, "/api/customers/1", `{"id":99,"fullName":"Ivan Petrov","phone":"+380501112233"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[domain.ResponseDto](t, w)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "+380501112233", updated.Phone)
}

func TestErrorStatuses(t *testing.T) {
	r := newTestRouter(t, nil)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/customers", ivanJSON).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/customers", `{"fullName":"Petr Petrov","email":"petrov@gmail.com","phone":"+380501112233"}`).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/api/customers/2", "").Code)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"duplicate email", http.MethodPost, "/api/customers", ivanJSON, http.StatusConflict},
		{"invalid registration", http.MethodPost, "/api/customers", `{"fullName":"I","email":"x@y","phone":"+3809765"}`, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/api/customers", `{"fullName":`, http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/api/customers/42", "", http.StatusNotFound},
		{"non numeric id", http.MethodGet, "/api/customers/abc", "", http.StatusBadRequest},
		{"update unknown id", http.MethodPut, "/api/customers", `{"id":42,"fullName":"Ivan Petrov"}`, http.StatusNotFound},
		{"update invalid name", http.MethodPut, "/api/customers/1", `{"fullName":" Ivan"}`, http.StatusBadRequest},
		{"delete unknown id", http.MethodDelete, "/api/customers/42", "", http.StatusNotFound},
		{"update deleted customer", http.MethodPut, "/api/customers/2", `{"fullName":"Petr Sidorov"}`, http.StatusGone},
		{"invalid update on deleted customer", http.MethodPut, "/api/customers/2", `{"fullName":"x"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, decode[map[string]any](t, w)["error"])
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/customers", `{"fullName":"Ivan Ivanov","email":"ivanov@gmail.com","phone":"12345"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[struct {
		Error   string                   `json:"error"`
		Details []domain.ValidationError `json:"details"`
	}](t, w)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "phone", body.Details[0].Field)
}

type brokenService struct {
	service.CustomerService
}

func (brokenService) GetAll(context.Context) ([]domain.ResponseDto, error) {
	return nil, errors.New("pq: connection refused")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	r := newTestRouter(t, brokenService{})

	w := do(t, r, http.MethodGet, "/api/customers", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]any](t, w)
	assert.Equal(t, "OK", health["status"])
	assert.Equal(t, "customer-service", health["service"])

	w = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
