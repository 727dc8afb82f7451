package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// DefaultMarketCenter is assigned to dashboard-created agents without one.
const DefaultMarketCenter = "KW Saudi Arabia"

// Defaults for people paging and the stored agent list.
const (
	DefaultPeoplePageSize = 100
	DefaultPeopleMaxPages = 50
	DefaultAgentListLimit = 10
)

// Filter values the dashboard sends for "no selection".
var agentFilterPlaceholders = map[string]bool{
	"MARKET CENTER": true,
	"CITY":          true,
	"RESET_ALL":     true,
}

// AgentConfig configures partner people syncing.
type AgentConfig struct {
	OrgIDs   []string
	PageSize int
	MaxPages int
}

// AgentService syncs agents from the partner people feed and manages
// the stored agent list.
type AgentService struct {
	people port.PeopleSource
	store  AgentStore
	cfg    AgentConfig
	logger *slog.Logger
}

// NewAgentService creates an agent service.
func NewAgentService(people port.PeopleSource, store AgentStore, cfg AgentConfig, logger *slog.Logger) *AgentService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPeoplePageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultPeopleMaxPages
	}
	return &AgentService{
		people: people,
		store:  store,
		cfg:    cfg,
		logger: logger.With("component", "agents"),
	}
}

// OrgIDs returns the configured partner organizations.
func (s *AgentService) OrgIDs() []string {
	return s.cfg.OrgIDs
}

// Sync runs a full sync of the configured organizations. It satisfies
// scheduler.Syncer.
func (s *AgentService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	_, stats, err := s.SyncOrgs(ctx, s.cfg.OrgIDs, nil)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// SyncOrgs fetches every person of each organization, keeps those matching
// active when it is set, drops duplicates by slug and upserts the rest.
// A fetch failure aborts the sync; a failed upsert only skips that person.
func (s *AgentService) SyncOrgs(ctx context.Context, orgIDs []string, active *bool) ([]domain.Agent, *domain.SyncStats, error) {
	stats := &domain.SyncStats{OrgIDs: orgIDs}

	var people []domain.Person
	for _, orgID := range orgIDs {
		if orgID == "" {
			return nil, nil, port.Invalid("org_id", "Missing route param: org_id")
		}
		fetched, err := s.fetchPeople(ctx, orgID)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch people for org %s: %w", orgID, err)
		}
		people = append(people, fetched...)
	}
	stats.Fetched = len(people)

	seen := make(map[string]bool, len(people))
	synced := make([]domain.Agent, 0, len(people))
	for _, p := range people {
		if active != nil && p.IsActive() != *active {
			continue
		}
		if p.KWUID == "" || p.FirstName == "" {
			stats.Skipped++
			s.logger.Debug("skipping person without kw_uid or first_name", "kw_uid", p.KWUID)
			continue
		}
		agent := agentFromPerson(p)
		if seen[agent.Slug] {
			continue
		}
		seen[agent.Slug] = true

		saved, err := s.store.UpsertAgentBySlug(ctx, agent)
		if err != nil {
			stats.Failed++
			s.logger.Error("failed to sync agent", "slug", agent.Slug, "error", err)
			continue
		}
		synced = append(synced, *saved)
	}
	stats.Synced = len(synced)

	s.logger.Info("agent sync completed",
		"orgs", orgIDs,
		"fetched", stats.Fetched,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"synced", stats.Synced,
	)
	return synced, stats, nil
}

// fetchPeople pages through one organization. The total from the first page
// bounds the loop; without one it stops on a short or empty page.
func (s *AgentService) fetchPeople(ctx context.Context, orgID string) ([]domain.Person, error) {
	var (
		all    []domain.Person
		total  = -1
		offset int
	)
	for page := 0; page < s.cfg.MaxPages; page++ {
		res, err := s.people.FetchPeoplePage(ctx, orgID, offset, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		if page == 0 && res.Total != nil {
			total = *res.Total
		}
		all = append(all, res.People...)
		offset += s.cfg.PageSize

		if len(res.People) == 0 {
			break
		}
		if total >= 0 && offset >= total {
			break
		}
		if total < 0 && len(res.People) < s.cfg.PageSize {
			break
		}
	}
	return all, nil
}

func agentFromPerson(p domain.Person) *domain.Agent {
	slug := p.Slug
	if slug == "" {
		slug = strings.ToLower(p.KWUID)
	}
	return &domain.Agent{
		Slug:         slug,
		KWID:         p.KWUID,
		FullName:     strings.TrimSpace(p.FirstName + " " + p.LastName),
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		MarketCenter: p.MarketCenterNumber,
		City:         p.City,
		Photo:        p.Photo,
		Active:       p.IsActive(),
		IsAgent:      true,
	}
}

// List returns one page of stored agents and the total match count.
func (s *AgentService) List(ctx context.Context, f domain.AgentFilter) ([]domain.Agent, int, error) {
	if agentFilterPlaceholders[f.MarketCenter] {
		f.MarketCenter = ""
	}
	if agentFilterPlaceholders[f.City] {
		f.City = ""
	}
	if f.Limit <= 0 {
		f.Limit = DefaultAgentListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.store.ListAgents(ctx, f)
}

// Get returns one agent.
func (s *AgentService) Get(ctx context.Context, id string) (*domain.Agent, error) {
	a, err := s.store.GetAgent(ctx, id)
	if err != nil {
		return nil, notFound(err, "Agent not found")
	}
	return a, nil
}

// Create stores a dashboard-created agent.
func (s *AgentService) Create(ctx context.Context, in domain.Agent) (*domain.Agent, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" || in.Email == "" {
		return nil, port.Invalid("", "Full name and email are required")
	}
	if err := s.ensureEmailFree(ctx, in.Email, ""); err != nil {
		return nil, err
	}

	in.Slug = slugify(in.FullName)
	if in.MarketCenter == "" {
		in.MarketCenter = DefaultMarketCenter
	}
	in.Active = true
	in.IsAgent = false

	created, err := s.store.CreateAgent(ctx, &in)
	if err != nil {
		return nil, conflict(err, "An agent with this name already exists")
	}
	return created, nil
}

// Update applies patch to an agent. Renaming regenerates the slug.
func (s *AgentService) Update(ctx context.Context, id string, patch domain.AgentPatch) (*domain.Agent, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != "" && !strings.EqualFold(*patch.Email, a.Email) {
		if err := s.ensureEmailFree(ctx, *patch.Email, a.ID); err != nil {
			return nil, err
		}
		a.Email = *patch.Email
	}
	if patch.FullName != nil && *patch.FullName != "" {
		a.FullName = *patch.FullName
		a.Slug = slugify(a.FullName)
	}
	if patch.LastName != nil {
		a.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		a.Phone = *patch.Phone
	}
	if patch.City != nil {
		a.City = *patch.City
	}
	if patch.MarketCenter != nil {
		a.MarketCenter = *patch.MarketCenter
	}
	if patch.Active != nil {
		a.Active = *patch.Active
	}

	updated, err := s.store.UpdateAgent(ctx, a)
	if err != nil {
		return nil, conflict(notFound(err, "Agent not found"), "An agent with this name already exists")
	}
	return updated, nil
}

// Delete removes an agent.
func (s *AgentService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteAgent(ctx, id); err != nil {
		return notFound(err, "Agent not found")
	}
	return nil
}

func (s *AgentService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.store.FindAgentByEmail(ctx, email)
	switch {
	case errors.Is(err, port.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		if selfID == "" {
			return port.Errorf(port.ErrConflict, "Agent with this email already exists")
		}
		return port.Errorf(port.ErrConflict, "Email already exists with another agent")
	}
	return nil
}

// notFound replaces a store not-found error with a caller-facing message.
func notFound(err error, msg string) error {
	if errors.Is(err, port.ErrNotFound) {
		return port.Errorf(port.ErrNotFound, "%s", msg)
	}
	return err
}

// conflict replaces a store unique-violation error with a caller-facing message.
func conflict(err error, msg string) error {
	var pe *port.Error
	if errors.Is(err, port.ErrConflict) && !errors.As(err, &pe) {
		return port.Errorf(port.ErrConflict, "%s", msg)
	}
	return err
}
