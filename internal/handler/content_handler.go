package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
)

// BlogHandler handles blog posts.
type BlogHandler struct {
	blogs *service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// Register sets up blog routes. Reads are public.
func (h *BlogHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/blogs", h.List)
	router.Get("/blog/slug/:slug", h.GetBySlug)
	router.Get("/blog/:id", h.Get)

	router.Post("/blog", auth, h.Create)
	router.Put("/blog/slug/:slug", auth, h.UpdateBySlug)
	router.Put("/blog/:id", auth, h.Update)
	router.Delete("/blog/slug/:slug", auth, h.DeleteBySlug)
	router.Delete("/blog/:id", auth, h.Delete)
}

func (h *BlogHandler) List(c fiber.Ctx) error {
	blogs, err := h.blogs.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(blogs), "data": blogs})
}

func (h *BlogHandler) Get(c fiber.Ctx) error {
	b, err := h.blogs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", b)
}

func (h *BlogHandler) GetBySlug(c fiber.Ctx) error {
	b, err := h.blogs.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", b)
}

func (h *BlogHandler) Create(c fiber.Ctx) error {
	var in domain.Blog
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	b, err := h.blogs.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Blog created successfully", b)
}

func (h *BlogHandler) Update(c fiber.Ctx) error {
	var patch domain.BlogPatch
	if err := bindJSON(c, &patch); err != nil {
		return fail(c, err)
	}
	b, err := h.blogs.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Blog updated successfully", b)
}

func (h *BlogHandler) UpdateBySlug(c fiber.Ctx) error {
	var patch domain.BlogPatch
	if err := bindJSON(c, &patch); err != nil {
		return fail(c, err)
	}
	b, err := h.blogs.UpdateBySlug(c.Context(), c.Params("slug"), patch)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Blog updated successfully", b)
}

func (h *BlogHandler) Delete(c fiber.Ctx) error {
	if err := h.blogs.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Blog deleted successfully"})
}

func (h *BlogHandler) DeleteBySlug(c fiber.Ctx) error {
	if err := h.blogs.DeleteBySlug(c.Context(), c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Blog deleted successfully"})
}

// TeamHandler handles team member profiles.
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

// Register sets up team routes. Reads are public.
func (h *TeamHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/team", h.List)
	router.Get("/team/:id", h.Get)

	router.Post("/team", auth, h.Create)
	router.Put("/team/:id", auth, h.Update)
	router.Delete("/team/:id", auth, h.Delete)
}

func (h *TeamHandler) List(c fiber.Ctx) error {
	members, err := h.team.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(members), "data": members})
}

func (h *TeamHandler) Get(c fiber.Ctx) error {
	m, err := h.team.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", m)
}

func (h *TeamHandler) Create(c fiber.Ctx) error {
	var in domain.TeamMember
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	m, err := h.team.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Team member created successfully", m)
}

func (h *TeamHandler) Update(c fiber.Ctx) error {
	var patch domain.TeamPatch
	if err := bindJSON(c, &patch); err != nil {
		return fail(c, err)
	}
	m, err := h.team.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Team member updated successfully", m)
}

func (h *TeamHandler) Delete(c fiber.Ctx) error {
	if err := h.team.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Team member deleted successfully"})
}
