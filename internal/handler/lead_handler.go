package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
)

// LeadHandler handles website form submissions.
type LeadHandler struct {
	leads *service.LeadService
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// Register sets up lead routes. Only submission is public.
func (h *LeadHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Post("/leads", h.Create)
	router.Get("/leads", auth, h.List)
	router.Get("/leads/regional", auth, h.Regional)
	router.Get("/leads/:id", auth, h.Get)
	router.Put("/leads/:id", auth, h.Update)
	router.Delete("/leads/:id", auth, h.Delete)
}

type leadRequest struct {
	domain.Lead
	MobileNumber string `json:"mobileNumber"`
}

// Create stores a form submission.
func (h *LeadHandler) Create(c fiber.Ctx) error {
	var req leadRequest
	if err := bindJSON(c, &req); err != nil {
		return fail(c, err)
	}
	in := req.Lead
	if in.Phone == "" {
		in.Phone = req.MobileNumber
	}

	lead, err := h.leads.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Lead created", lead)
}

// List returns leads, optionally limited by ?range=today|week|month|year.
func (h *LeadHandler) List(c fiber.Ctx) error {
	r := domain.LeadRange(strings.ToLower(strings.TrimSpace(c.Query("range"))))
	switch r {
	case domain.LeadRangeAll, domain.LeadRangeToday, domain.LeadRangeWeek, domain.LeadRangeMonth, domain.LeadRangeYear:
	default:
		return fail(c, port.Invalid("range", "range must be one of today, week, month, year"))
	}

	leads, err := h.leads.List(c.Context(), r)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(leads), "data": leads})
}

// Regional returns the leads of the regional forms.
func (h *LeadHandler) Regional(c fiber.Ctx) error {
	leads, err := h.leads.Regional(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(leads), "data": leads})
}

// Get returns one lead.
func (h *LeadHandler) Get(c fiber.Ctx) error {
	lead, err := h.leads.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", lead)
}

// Update edits a lead.
func (h *LeadHandler) Update(c fiber.Ctx) error {
	var patch domain.LeadPatch
	if err := bindJSON(c, &patch); err != nil {
		return fail(c, err)
	}
	lead, err := h.leads.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Lead updated", lead)
}

// Delete removes a lead and echoes it back.
func (h *LeadHandler) Delete(c fiber.Ctx) error {
	lead, err := h.leads.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Lead deleted", lead)
}
