package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	var pingErr error
	h := NewHealthHandler("realty-admin", pingFunc(func(context.Context) error { return pingErr }))
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	app := fiber.New()
	h.Register(app, app.Group("/api"))

	resp, body := call(t, app, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Backend Working Fine", body["message"])
	assert.Equal(t, "2026-01-02T03:04:05Z", body["timestamp"])

	resp, body = call(t, app, http.MethodGet, "/api/test", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Backend is working!", body["message"])

	resp, body = call(t, app, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])

	pingErr = errors.New("connection refused")
	resp, body = call(t, app, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "connection refused", body["error"])
}

type fakeAuditReader struct {
	gotLimit  int
	gotAction string
}

func (f *fakeAuditReader) ListAuditLogs(_ context.Context, limit int, action string) ([]domain.AuditLog, error) {
	f.gotLimit, f.gotAction = limit, action
	return []domain.AuditLog{{ID: "1", Action: action}}, nil
}

func TestAuditHandler_ListLogs(t *testing.T) {
	reader := &fakeAuditReader{}
	app := fiber.New()
	NewAuditHandler(reader).Register(app.Group("/api"), testAuth())

	resp, _ := call(t, app, http.MethodGet, "/api/audit/logs", nil, tokenFor(t, testSubadmin))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := call(t, app, http.MethodGet, "/api/audit/logs?limit=5000&action=login", nil, tokenFor(t, testAdmin))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, DefaultAuditLimit, reader.gotLimit)
	assert.Equal(t, "login", reader.gotAction)
}
