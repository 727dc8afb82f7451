package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

const agentColumns = `id, slug, kw_id, full_name, last_name, email, phone, market_center, city, photo,
	active, is_agent, created_at, updated_at`

// UpsertAgentBySlug inserts a synced agent or refreshes the one holding the same slug.
func (s *PostgresStore) UpsertAgentBySlug(ctx context.Context, a *domain.Agent) (*domain.Agent, error) {
	query := `
		INSERT INTO agents (slug, kw_id, full_name, last_name, email, phone, market_center, city, photo, active, is_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
		ON CONFLICT (slug) DO UPDATE SET
			kw_id = EXCLUDED.kw_id,
			full_name = EXCLUDED.full_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			market_center = EXCLUDED.market_center,
			city = EXCLUDED.city,
			photo = EXCLUDED.photo,
			active = EXCLUDED.active,
			is_agent = TRUE,
			updated_at = NOW()
		RETURNING ` + agentColumns

	var out domain.Agent
	err := s.db.GetContext(ctx, &out, query,
		a.Slug, a.KWID, a.FullName, a.LastName, a.Email, a.Phone, a.MarketCenter, a.City, a.Photo, a.Active,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert agent %s: %w", a.Slug, mapError(err))
	}
	return &out, nil
}

// CreateAgent inserts a dashboard-created agent.
func (s *PostgresStore) CreateAgent(ctx context.Context, a *domain.Agent) (*domain.Agent, error) {
	query := `
		INSERT INTO agents (slug, kw_id, full_name, last_name, email, phone, market_center, city, photo, active, is_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + agentColumns

	var out domain.Agent
	err := s.db.GetContext(ctx, &out, query,
		a.Slug, a.KWID, a.FullName, a.LastName, a.Email, a.Phone, a.MarketCenter, a.City, a.Photo,
		a.Active, a.IsAgent,
	)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", mapError(err))
	}
	return &out, nil
}

// GetAgent retrieves an agent by ID.
func (s *PostgresStore) GetAgent(ctx context.Context, id string) (*domain.Agent, error) {
	var out domain.Agent
	err := s.db.GetContext(ctx, &out, `SELECT `+agentColumns+` FROM agents WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", mapError(err))
	}
	return &out, nil
}

// FindAgentByEmail looks an agent up by email, ignoring case.
func (s *PostgresStore) FindAgentByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	var out domain.Agent
	err := s.db.GetContext(ctx, &out,
		`SELECT `+agentColumns+` FROM agents WHERE lower(email) = lower($1) LIMIT 1`, email)
	if err != nil {
		return nil, fmt.Errorf("find agent by email: %w", mapError(err))
	}
	return &out, nil
}

// ListAgents returns one page of agents matching f and the total match count.
func (s *PostgresStore) ListAgents(ctx context.Context, f domain.AgentFilter) ([]domain.Agent, int, error) {
	var (
		where []string
		args  []interface{}
	)
	add := func(cond string, v interface{}) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Name != "" {
		add("full_name ILIKE $%d", "%"+escapeLike(f.Name)+"%")
	}
	if f.MarketCenter != "" {
		add("lower(market_center) = lower($%d)", f.MarketCenter)
	}
	if f.City != "" {
		add("lower(city) = lower($%d)", f.City)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM agents`+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count agents: %w", mapError(err))
	}

	query := `SELECT ` + agentColumns + ` FROM agents` + clause + ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	agents := []domain.Agent{}
	if err := s.db.SelectContext(ctx, &agents, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list agents: %w", mapError(err))
	}
	return agents, total, nil
}

// UpdateAgent overwrites the editable fields of an agent.
func (s *PostgresStore) UpdateAgent(ctx context.Context, a *domain.Agent) (*domain.Agent, error) {
	query := `
		UPDATE agents SET
			slug = $2, full_name = $3, last_name = $4, email = $5, phone = $6,
			market_center = $7, city = $8, photo = $9, active = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + agentColumns

	var out domain.Agent
	err := s.db.GetContext(ctx, &out, query,
		a.ID, a.Slug, a.FullName, a.LastName, a.Email, a.Phone, a.MarketCenter, a.City, a.Photo, a.Active,
	)
	if err != nil {
		return nil, fmt.Errorf("update agent: %w", mapError(err))
	}
	return &out, nil
}

// DeleteAgent removes an agent.
func (s *PostgresStore) DeleteAgent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agent: %w", mapError(err))
	}
	if err := affectedOne(res); err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	return nil
}

// FindMarketAgent returns a synced agent whose market center mentions region,
// or who works in city when one is given.
func (s *PostgresStore) FindMarketAgent(ctx context.Context, region, city string) (*domain.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents
		WHERE is_agent AND market_center <> ''
		  AND (market_center ILIKE $1 OR ($2 <> '' AND city ILIKE $3))
		ORDER BY created_at
		LIMIT 1`

	var out domain.Agent
	err := s.db.GetContext(ctx, &out, query,
		"%"+escapeLike(region)+"%", city, "%"+escapeLike(city)+"%")
	if err != nil {
		return nil, fmt.Errorf("find market agent: %w", mapError(err))
	}
	return &out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
