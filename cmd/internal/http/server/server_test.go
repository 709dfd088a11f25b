package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"solidusers/cmd/internal/contract"
	"solidusers/cmd/internal/domain/memory"
	"solidusers/cmd/internal/domain/policy"
	"solidusers/cmd/internal/http/handler"
	"solidusers/cmd/internal/http/server"
	"solidusers/cmd/internal/service"
	"solidusers/cmd/internal/utils/validators"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	repo := memory.NewUserRepository()
	userPolicy := policy.NewUserPolicy()
	routes := handler.NewUserDefault(
		service.NewCreateUserService(repo, validators.New(), userPolicy),
		service.NewListAllUsersService(repo),
		service.NewShowUserProfileService(repo),
		service.NewTurnUserAdminService(repo, userPolicy),
	)

	e, err := server.NewServer(&server.ServerConfig{
		BodyLimit: "1M",
		MachineID: 1,
		Registry:  prometheus.NewRegistry(),
	}, routes)
	require.NoError(t, err)
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestUsersEndToEnd(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/users", `{"name":"Diego","email":"diego@email.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[contract.UserResponse](t, rec)
	require.NotEmpty(t, created.ID)
	require.False(t, created.Admin)
	require.Equal(t, "Diego", created.Name)
	require.NotEmpty(t, created.CreatedAt)

	rec = do(t, e, http.MethodGet, "/users/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created, decode[contract.UserResponse](t, rec))

	rec = do(t, e, http.MethodPatch, "/users/"+created.ID+"/admin", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	promoted := decode[contract.UserResponse](t, rec)
	require.True(t, promoted.Admin)
	require.Equal(t, created.ID, promoted.ID)

	rec = do(t, e, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[[]contract.UserResponse](t, rec)
	require.Len(t, users, 1)
	require.Equal(t, created.ID, users[0].ID)
	require.True(t, users[0].Admin)
}

func TestUsers_ErrorResponses(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/users", `{"name":"Diego","email":"diego@email.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPost, "/users", `{"name":"Other","email":"diego@email.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"User already exists"}`, rec.Body.String())

	rec = do(t, e, http.MethodPost, "/users", `{"email":"x@email.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Field 'name' is required"}`, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/users/6f80003e-4582-4d7c-87e9-0295985e13e5", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())

	rec = do(t, e, http.MethodPatch, "/users/6f80003e-4582-4d7c-87e9-0295985e13e5/admin", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodGet, "/users", "")
	require.Len(t, decode[[]contract.UserResponse](t, rec), 1)
}

func TestHealthRequestIDAndMetrics(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	do(t, e, http.MethodGet, "/users", "")

	rec = do(t, e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `solidusers_api_http_requests_total{method="GET",route="/users",status="200"} 1`)
}
