package store

import (
	"context"
	"fmt"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

const teamColumns = `id, name, position, email, phone, profile_image, department, bio, linkedin, twitter,
	facebook, is_active, join_date, created_at, updated_at`

// CreateTeamMember inserts a member. A zero JoinDate defaults to now.
func (s *PostgresStore) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	query := `
		INSERT INTO team_members (name, position, email, phone, profile_image, department, bio, linkedin,
			twitter, facebook, is_active, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, NOW()))
		RETURNING ` + teamColumns

	var joined interface{}
	if !m.JoinDate.IsZero() {
		joined = m.JoinDate
	}

	var out domain.TeamMember
	err := s.db.GetContext(ctx, &out, query,
		m.Name, m.Position, m.Email, m.Phone, m.ProfileImage, m.Department, m.Bio, m.LinkedIn,
		m.Twitter, m.Facebook, m.IsActive, joined,
	)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", mapError(err))
	}
	return &out, nil
}

// GetTeamMember retrieves a member by ID.
func (s *PostgresStore) GetTeamMember(ctx context.Context, id string) (*domain.TeamMember, error) {
	var out domain.TeamMember
	err := s.db.GetContext(ctx, &out, `SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get team member: %w", mapError(err))
	}
	return &out, nil
}

// ListTeamMembers returns all members, newest first.
func (s *PostgresStore) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	members := []domain.TeamMember{}
	err := s.db.SelectContext(ctx, &members, `SELECT `+teamColumns+` FROM team_members ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", mapError(err))
	}
	return members, nil
}

// UpdateTeamMember overwrites every editable field of the member with m.ID.
func (s *PostgresStore) UpdateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	query := `
		UPDATE team_members SET
			name = $2, position = $3, email = $4, phone = $5, profile_image = $6, department = $7, bio = $8,
			linkedin = $9, twitter = $10, facebook = $11, is_active = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + teamColumns

	var out domain.TeamMember
	err := s.db.GetContext(ctx, &out, query,
		m.ID, m.Name, m.Position, m.Email, m.Phone, m.ProfileImage, m.Department, m.Bio, m.LinkedIn,
		m.Twitter, m.Facebook, m.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("update team member: %w", mapError(err))
	}
	return &out, nil
}

// DeleteTeamMember removes a member.
func (s *PostgresStore) DeleteTeamMember(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", mapError(err))
	}
	if err := affectedOne(res); err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}
