package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

func newJobsApp(tracker *JobTracker) *fiber.App {
	app := fiber.New()
	NewJobsHandler(tracker).Register(app.Group("/api"), testAuth())
	return app
}

func TestJobTracker_Lifecycle(t *testing.T) {
	tracker := NewJobTracker()
	tracker.CreateJob("j1", []string{"50449"})

	ch := tracker.Subscribe("j1")
	tracker.Finish("j1", &domain.SyncStats{Synced: 4}, nil)

	select {
	case update := <-ch:
		assert.Equal(t, JobComplete, update.Status)
		assert.Equal(t, 4, update.Stats.Synced)
		assert.NotNil(t, update.CompletedAt)
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}
	tracker.Unsubscribe("j1", ch)

	tracker.CreateJob("j2", nil)
	tracker.Finish("j2", nil, errors.New("partner down"))
	job, ok := tracker.GetJob("j2")
	require.True(t, ok)
	assert.Equal(t, JobError, job.Status)
	assert.Equal(t, "partner down", job.Error)

	// Unknown ids are ignored.
	tracker.Finish("missing", nil, nil)
	_, ok = tracker.GetJob("missing")
	assert.False(t, ok)
}

func TestJobsHandler_GetStatus(t *testing.T) {
	tracker := NewJobTracker()
	tracker.CreateJob("j1", []string{"50449"})
	app := newJobsApp(tracker)
	token := tokenFor(t, testSubadmin)

	resp, body := call(t, app, http.MethodGet, "/api/jobs/j1", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, JobRunning, body["data"].(map[string]any)["status"])

	resp, _ = call(t, app, http.MethodGet, "/api/jobs/nope", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/jobs/j1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJobsHandler_StreamFinishedJob(t *testing.T) {
	tracker := NewJobTracker()
	tracker.CreateJob("j1", nil)
	tracker.Finish("j1", &domain.SyncStats{Synced: 2}, nil)
	app := newJobsApp(tracker)

	// EventSource cannot set headers, so the token travels in the query.
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/j1/stream?token="+tokenFor(t, testSubadmin), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "event: complete\ndata: "), string(raw))
	assert.Contains(t, string(raw), `"synced":2`)
}
