package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/middleware"
	"github.com/arturoeanton/realty-admin-backend/internal/scheduler"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
)

// DefaultSyncPerPage is the page size of a sync response.
const DefaultSyncPerPage = 50

// AgentHandler handles partner agent syncing and the stored agent list.
type AgentHandler struct {
	agents  *service.AgentService
	tracker *JobTracker
	audit   middleware.AuditWriter
}

// NewAgentHandler creates a new agent handler. audit may be nil.
func NewAgentHandler(agents *service.AgentService, tracker *JobTracker, audit middleware.AuditWriter) *AgentHandler {
	return &AgentHandler{agents: agents, tracker: tracker, audit: audit}
}

// Register sets up agent routes. Reads and syncs are public; edits and
// background jobs run behind auth.
func (h *AgentHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/agent/:org_id", h.SyncOrg)
	router.Get("/agents/merge", h.SyncConfigured)
	router.Get("/agents", h.List)
	router.Get("/agents/:id", h.Get)

	router.Post("/agents/sync", auth, h.StartSync)
	router.Post("/agents", auth, h.Create)
	router.Put("/agents/:id", auth, h.Update)
	router.Delete("/agents/:id", auth, h.Delete)
}

// SyncOrg pulls one organization's people and returns a page of the result.
func (h *AgentHandler) SyncOrg(c fiber.Ctx) error {
	orgID := strings.TrimSpace(c.Params("org_id"))
	return h.sync(c, []string{orgID}, fiber.Map{"org_id": orgID})
}

// SyncConfigured pulls every configured organization.
func (h *AgentHandler) SyncConfigured(c fiber.Ctx) error {
	orgIDs := h.agents.OrgIDs()
	return h.sync(c, orgIDs, fiber.Map{"org_ids": orgIDs})
}

func (h *AgentHandler) sync(c fiber.Ctx, orgIDs []string, body fiber.Map) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return fail(c, err)
	}
	perPage, err := queryInt(c, "limit", DefaultSyncPerPage)
	if err != nil {
		return fail(c, err)
	}
	active, err := queryBool(c, "active")
	if err != nil {
		return fail(c, err)
	}

	synced, _, err := h.agents.SyncOrgs(c.Context(), orgIDs, active)
	if err != nil {
		return fail(c, err)
	}

	data := pageOf(synced, page, perPage)
	body["success"] = true
	body["total"] = len(synced)
	body["page"] = page
	body["per_page"] = perPage
	body["count"] = len(data)
	body["data"] = data
	return c.JSON(body)
}

// StartSync syncs the configured (or given) organizations in the background
// and returns the job id to poll or stream.
func (h *AgentHandler) StartSync(c fiber.Ctx) error {
	var req struct {
		OrgIDs []string `json:"org_ids"`
	}
	if err := bindJSON(c, &req); err != nil {
		return fail(c, err)
	}
	orgIDs := req.OrgIDs
	if len(orgIDs) == 0 {
		orgIDs = h.agents.OrgIDs()
	}

	jobID := uuid.NewString()
	h.tracker.CreateJob(jobID, orgIDs)
	middleware.RecordAudit(h.audit, c, "", domain.AuditActionAgentSync, "agents", jobID, map[string]interface{}{
		"org_ids": orgIDs,
	})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduler.DefaultRunTimeout)
		defer cancel()
		_, stats, err := h.agents.SyncOrgs(ctx, orgIDs, nil)
		h.tracker.Finish(jobID, stats, err)
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"job_id":  jobID,
		"status":  JobRunning,
	})
}

// List returns stored agents filtered by name, market center and city.
func (h *AgentHandler) List(c fiber.Ctx) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return fail(c, err)
	}
	limit, err := queryInt(c, "limit", service.DefaultAgentListLimit)
	if err != nil {
		return fail(c, err)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = service.DefaultAgentListLimit
	}

	agents, total, err := h.agents.List(c.Context(), domain.AgentFilter{
		Name:         strings.TrimSpace(c.Query("name")),
		MarketCenter: strings.TrimSpace(c.Query("marketCenter")),
		City:         strings.TrimSpace(c.Query("city")),
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"total":   total,
		"page":    page,
		"count":   len(agents),
		"data":    agents,
	})
}

// Get returns one stored agent.
func (h *AgentHandler) Get(c fiber.Ctx) error {
	a, err := h.agents.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "", a)
}

// Create adds a dashboard agent.
func (h *AgentHandler) Create(c fiber.Ctx) error {
	var in domain.Agent
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	a, err := h.agents.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, "Agent created successfully", a)
}

// Update edits a stored agent.
func (h *AgentHandler) Update(c fiber.Ctx) error {
	var patch domain.AgentPatch
	if err := bindJSON(c, &patch); err != nil {
		return fail(c, err)
	}
	a, err := h.agents.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, "Agent updated successfully", a)
}

// Delete removes a stored agent.
func (h *AgentHandler) Delete(c fiber.Ctx) error {
	if err := h.agents.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Agent deleted successfully"})
}
