package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/middleware"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
)

// AdminHandler handles management of other accounts. The service enforces
// the admin role so the messages match each operation.
type AdminHandler struct {
	admins *service.AdminService
	audit  middleware.AuditWriter
}

// NewAdminHandler creates a new admin handler. audit may be nil.
func NewAdminHandler(admins *service.AdminService, audit middleware.AuditWriter) *AdminHandler {
	return &AdminHandler{admins: admins, audit: audit}
}

// Register sets up admin routes.
func (h *AdminHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/admins", auth, h.List)
	// Registered before /admins/:id so "role" is not taken as an id.
	router.Put("/admins/role", auth, h.SetRole)
	router.Put("/admins/:id", auth, h.Update)
	router.Delete("/admins/:id", auth, h.Delete)
}

// List returns every account.
func (h *AdminHandler) List(c fiber.Ctx) error {
	users, err := h.admins.List(c.Context(), middleware.GetAdminContext(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "users": users})
}

// Update edits another account.
func (h *AdminHandler) Update(c fiber.Ctx) error {
	var patch domain.AdminPatch
	if err := bindJSON(c, &patch); err != nil {
		return fail(c, err)
	}
	user, err := h.admins.Update(c.Context(), middleware.GetAdminContext(c), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "User updated.", "user": user})
}

// Delete removes another account.
func (h *AdminHandler) Delete(c fiber.Ctx) error {
	if err := h.admins.Delete(c.Context(), middleware.GetAdminContext(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "User deleted."})
}

// SetRole changes an account's role and permissions.
func (h *AdminHandler) SetRole(c fiber.Ctx) error {
	var req struct {
		UserID      string   `json:"userId"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}
	if err := bindJSON(c, &req); err != nil {
		return fail(c, err)
	}

	user, err := h.admins.SetRole(c.Context(), middleware.GetAdminContext(c), req.UserID, req.Role, req.Permissions)
	if err != nil {
		return fail(c, err)
	}
	middleware.RecordAudit(h.audit, c, "", domain.AuditActionRoleChange, "admin", user.ID, map[string]interface{}{
		"role":        user.Role,
		"permissions": user.Permissions,
	})
	return c.JSON(fiber.Map{"success": true, "message": "Role and permissions updated.", "user": user})
}
