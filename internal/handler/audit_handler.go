package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/middleware"
)

// Audit log page bounds.
const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 1000
)

// AuditReader lists stored audit records.
type AuditReader interface {
	ListAuditLogs(ctx context.Context, limit int, action string) ([]domain.AuditLog, error)
}

// AuditHandler handles audit log endpoints.
type AuditHandler struct {
	logs AuditReader
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(logs AuditReader) *AuditHandler {
	return &AuditHandler{logs: logs}
}

// Register sets up audit routes. Only admins may read the log.
func (h *AuditHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/audit/logs", auth, middleware.RequireAdmin(), h.ListLogs)
}

// ListLogs returns audit logs with optional filtering.
func (h *AuditHandler) ListLogs(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", DefaultAuditLimit)
	if err != nil {
		return fail(c, err)
	}
	if limit < 1 || limit > MaxAuditLimit {
		limit = DefaultAuditLimit
	}

	logs, err := h.logs.ListAuditLogs(c.Context(), limit, c.Query("action"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"logs":    logs,
		"count":   len(logs),
	})
}
