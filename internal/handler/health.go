package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness checks.
type HealthHandler struct {
	appName string
	db      Pinger
	now     func() time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(appName string, db Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, db: db, now: time.Now}
}

// Register sets up health routes on the app root and the api group.
func (h *HealthHandler) Register(app fiber.Router, api fiber.Router) {
	app.Get("/", h.Root)
	api.Get("/test", h.Test)
	api.Get("/health", h.Ready)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "success",
		"message":   "Backend Working Fine",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Test(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "success",
		"message":   "Backend is working!",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// Ready checks the database.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"app":    h.appName,
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "healthy", "app": h.appName})
}
