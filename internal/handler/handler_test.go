package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/middleware"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

var testJWT = middleware.JWTConfig{Secret: "handler-secret", Issuer: "realty-admin", ExpiresIn: time.Hour}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type adminLoader map[string]*domain.Admin

func (l adminLoader) GetAdmin(_ context.Context, id string) (*domain.Admin, error) {
	if a, ok := l[id]; ok {
		return a, nil
	}
	return nil, port.ErrNotFound
}

var (
	testAdmin    = &domain.Admin{ID: "boss", FirstName: "Nora", Role: domain.RoleAdmin, IsActive: true}
	testSubadmin = &domain.Admin{ID: "sub", FirstName: "Omar", Role: domain.RoleSubadmin, IsActive: true}
)

func testAuth() fiber.Handler {
	return middleware.JWTMiddleware(testJWT, adminLoader{"boss": testAdmin, "sub": testSubadmin})
}

func tokenFor(t *testing.T, a *domain.Admin) string {
	t.Helper()
	token, err := middleware.GenerateJWT(a, testJWT)
	require.NoError(t, err)
	return token
}

// call sends a request and decodes the JSON response body.
func call(t *testing.T, app *fiber.App, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}
