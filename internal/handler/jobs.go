package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// Job states.
const (
	JobRunning  = "running"
	JobComplete = "complete"
	JobError    = "error"
)

// JobStatus represents the current state of a background agent sync.
type JobStatus struct {
	ID          string            `json:"id"`
	OrgIDs      []string          `json:"org_ids"`
	Status      string            `json:"status"`
	Stats       *domain.SyncStats `json:"stats,omitempty"`
	Error       string            `json:"error,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

func (j *JobStatus) done() bool {
	return j.Status == JobComplete || j.Status == JobError
}

// JobTracker manages sync jobs in memory.
type JobTracker struct {
	mu   sync.RWMutex
	jobs map[string]*JobStatus
	subs map[string][]chan JobStatus // subscribers per job
	now  func() time.Time
}

// NewJobTracker creates a new job tracker.
func NewJobTracker() *JobTracker {
	return &JobTracker{
		jobs: make(map[string]*JobStatus),
		subs: make(map[string][]chan JobStatus),
		now:  time.Now,
	}
}

// CreateJob creates a running job entry.
func (t *JobTracker) CreateJob(id string, orgIDs []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs[id] = &JobStatus{
		ID:        id,
		OrgIDs:    orgIDs,
		Status:    JobRunning,
		StartedAt: t.now(),
	}
}

// Finish records the outcome of a job and notifies subscribers.
func (t *JobTracker) Finish(id string, stats *domain.SyncStats, err error) {
	t.mu.Lock()
	job, ok := t.jobs[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	completed := t.now()
	job.CompletedAt = &completed
	if err != nil {
		job.Status = JobError
		job.Error = err.Error()
	} else {
		job.Status = JobComplete
		job.Stats = stats
	}
	snapshot := *job
	subs := t.subs[id]
	t.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// GetJob returns a job status.
func (t *JobTracker) GetJob(id string) (*JobStatus, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	job, ok := t.jobs[id]
	if !ok {
		return nil, false
	}
	snapshot := *job
	return &snapshot, true
}

// Subscribe returns a channel that receives job updates.
func (t *JobTracker) Subscribe(id string) chan JobStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	ch := make(chan JobStatus, 10)
	t.subs[id] = append(t.subs[id], ch)
	return ch
}

// Unsubscribe removes a channel from subscribers.
func (t *JobTracker) Unsubscribe(id string, ch chan JobStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	subs := t.subs[id]
	for i, s := range subs {
		if s == ch {
			t.subs[id] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(t.subs[id]) == 0 {
		delete(t.subs, id)
	}
	close(ch)
}

// JobsHandler handles job-related endpoints.
type JobsHandler struct {
	tracker *JobTracker
	timeout time.Duration
}

// NewJobsHandler creates a new jobs handler.
func NewJobsHandler(tracker *JobTracker) *JobsHandler {
	return &JobsHandler{tracker: tracker, timeout: 5 * time.Minute}
}

// Register sets up job routes.
func (h *JobsHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/jobs/:id", auth, h.GetStatus)
	router.Get("/jobs/:id/stream", auth, h.StreamSSE)
}

// GetStatus returns the current job status.
func (h *JobsHandler) GetStatus(c fiber.Ctx) error {
	job, ok := h.tracker.GetJob(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Job not found"})
	}
	return c.JSON(fiber.Map{"success": true, "data": job})
}

// StreamSSE streams job updates via Server-Sent Events.
func (h *JobsHandler) StreamSSE(c fiber.Ctx) error {
	id := c.Params("id")

	job, ok := h.tracker.GetJob(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Job not found"})
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	// A finished job gets its final status and nothing else.
	if job.done() {
		data, _ := json.Marshal(job)
		return c.SendString(fmt.Sprintf("event: %s\ndata: %s\n\n", job.Status, data))
	}

	ch := h.tracker.Subscribe(id)
	timeout := h.timeout

	return c.SendStreamWriter(func(w *bufio.Writer) {
		defer h.tracker.Unsubscribe(id, ch)

		// Re-read after subscribing so a job finishing in between is not missed.
		if current, ok := h.tracker.GetJob(id); ok {
			job = current
		}
		event := "progress"
		if job.done() {
			event = job.Status
		}
		data, _ := json.Marshal(job)
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		if err := w.Flush(); err != nil || job.done() {
			return
		}

		deadline := time.After(timeout)
		for {
			select {
			case update, ok := <-ch:
				if !ok {
					return
				}
				data, _ := json.Marshal(update)
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", update.Status, data)
				if err := w.Flush(); err != nil {
					return
				}
				if update.done() {
					return
				}
			case <-deadline:
				slog.Warn("SSE timeout", "job_id", id)
				return
			}
		}
	})
}
