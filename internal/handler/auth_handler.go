package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/middleware"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
)

// AuthHandler handles registration, login and the caller's own profile.
type AuthHandler struct {
	auth         *service.AuthService
	audit        middleware.AuditWriter
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. audit may be nil.
func NewAuthHandler(auth *service.AuthService, audit middleware.AuditWriter, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, audit: audit, secureCookie: secureCookie}
}

// Register sets up auth routes.
func (h *AuthHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Post("/auth/register", h.SignUp)
	router.Post("/auth/login", h.Login)
	router.Post("/auth/logout", h.Logout)

	router.Get("/auth/profile", auth, h.Profile)
	router.Put("/auth/profile", auth, h.UpdateProfile)
	router.Put("/auth/change-password", auth, h.ChangePassword)
}

// SignUp creates an account and starts a session for it.
func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	var reg domain.Registration
	if err := bindJSON(c, &reg); err != nil {
		return fail(c, err)
	}

	admin, token, err := h.auth.Register(c.Context(), reg)
	if err != nil {
		return fail(c, err)
	}

	h.setSession(c, token)
	middleware.RecordAudit(h.audit, c, admin.ID, domain.AuditActionRegister, "admin", admin.ID, map[string]interface{}{
		"role": admin.Role,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Admin registered successfully",
		"admin":   admin,
	})
}

// Login verifies a phone number and password and starts a session.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req struct {
		PhoneNumber string `json:"phoneNumber"`
		Password    string `json:"password"`
	}
	if err := bindJSON(c, &req); err != nil {
		return fail(c, err)
	}

	admin, token, err := h.auth.Login(c.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		return fail(c, err)
	}

	h.setSession(c, token)
	middleware.RecordAudit(h.audit, c, admin.ID, domain.AuditActionLogin, "admin", admin.ID, nil)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"admin":   admin,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	middleware.RecordAudit(h.audit, c, "", domain.AuditActionLogout, "admin", "", nil)
	return c.JSON(fiber.Map{"success": true, "message": "Logout successful"})
}

func (h *AuthHandler) setSession(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(h.auth.TokenTTL().Seconds()),
	})
}

// Profile returns the caller's account.
func (h *AuthHandler) Profile(c fiber.Ctx) error {
	admin, err := h.auth.Profile(c.Context(), middleware.GetAdminContext(c).AdminID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "admin": admin})
}

// UpdateProfile edits the caller's name and email.
func (h *AuthHandler) UpdateProfile(c fiber.Ctx) error {
	var patch domain.AdminPatch
	if err := bindJSON(c, &patch); err != nil {
		return fail(c, err)
	}
	admin, err := h.auth.UpdateProfile(c.Context(), middleware.GetAdminContext(c).AdminID, patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"admin":   admin,
	})
}

// ChangePassword replaces the caller's password.
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := bindJSON(c, &req); err != nil {
		return fail(c, err)
	}
	if err := h.auth.ChangePassword(c.Context(), middleware.GetAdminContext(c).AdminID, req.CurrentPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
}
