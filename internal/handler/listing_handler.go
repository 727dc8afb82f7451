package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/listing"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
)

// DefaultNewDevelopmentLimit is the window size when no limit is given.
const DefaultNewDevelopmentLimit = 20

// ListingHandler serves the partner listings views.
type ListingHandler struct {
	listings *service.ListingService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listings *service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// Register sets up listing routes.
func (h *ListingHandler) Register(router fiber.Router) {
	router.Post("/list/properties", h.Search)
	router.Get("/property/newdevelopment/:id", h.NewDevelopments)
	router.Get("/property/:id", h.Get)
}

// Search returns one page of filtered listings.
func (h *ListingHandler) Search(c fiber.Ctx) error {
	p, err := newParams(c)
	if err != nil {
		return fail(c, err)
	}
	page, err := p.intOr("page", 1)
	if err != nil {
		return fail(c, err)
	}
	limit, err := p.intOr("limit", listing.DefaultPerPage)
	if err != nil {
		return fail(c, err)
	}
	criteria, err := p.criteria()
	if err != nil {
		return fail(c, err)
	}

	data, pagination, err := h.listings.Search(c.Context(), criteria, page, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"pagination": pagination,
		"count":      len(data),
		"data":       data,
	})
}

// Get returns a single listing by its canonical id.
func (h *ListingHandler) Get(c fiber.Ctx) error {
	l, err := h.listings.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": l})
}

// NewDevelopments returns an offset window over active for-sale listings.
func (h *ListingHandler) NewDevelopments(c fiber.Ctx) error {
	offset := 0
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fail(c, port.Invalid("offset", "offset must be an integer"))
		}
		offset = n
	}

	limit, all := DefaultNewDevelopmentLimit, false
	switch v := strings.TrimSpace(c.Query("limit")); {
	case v == "":
	case strings.EqualFold(v, "all"):
		all = true
	default:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fail(c, port.Invalid("limit", "limit must be a positive number or \"all\""))
		}
		limit = n
	}

	data, total, err := h.listings.NewDevelopments(c.Context(), offset, limit, all)
	if err != nil {
		return fail(c, err)
	}

	var limitOut interface{} = limit
	if all {
		limitOut = "all"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"total":   total,
		"offset":  offset,
		"limit":   limitOut,
		"data":    data,
	})
}
