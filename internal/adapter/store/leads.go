package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

const leadColumns = `id, slug, full_name, email, phone, city, message, form_type, market_center, purpose,
	appointment_date, appointment_time, terms_accepted, notes, created_at, updated_at`

// CreateLead stores a form submission. A second lead with the same email and
// form type fails with port.ErrConflict.
func (s *PostgresStore) CreateLead(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	query := `
		INSERT INTO leads (slug, full_name, email, phone, city, message, form_type, market_center, purpose,
			appointment_date, appointment_time, terms_accepted, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + leadColumns

	var out domain.Lead
	err := s.db.GetContext(ctx, &out, query,
		l.Slug, l.FullName, l.Email, l.Phone, l.City, l.Message, l.FormType, l.MarketCenter, l.Purpose,
		l.AppointmentDate, l.AppointmentTime, l.TermsAccepted, l.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", mapError(err))
	}
	return &out, nil
}

// LeadExists reports whether a lead with this email and form type is stored.
func (s *PostgresStore) LeadExists(ctx context.Context, email, formType string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM leads WHERE email = $1 AND form_type = $2)`, email, formType)
	if err != nil {
		return false, fmt.Errorf("check lead: %w", mapError(err))
	}
	return exists, nil
}

// GetLead retrieves a lead by ID.
func (s *PostgresStore) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	var out domain.Lead
	err := s.db.GetContext(ctx, &out, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", mapError(err))
	}
	return &out, nil
}

// ListLeads returns leads newest first, optionally only those created at or after since.
func (s *PostgresStore) ListLeads(ctx context.Context, since *time.Time) ([]domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	args := []interface{}{}
	if since != nil {
		query += ` WHERE created_at >= $1`
		args = append(args, *since)
	}
	query += ` ORDER BY created_at DESC`

	leads := []domain.Lead{}
	if err := s.db.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, fmt.Errorf("list leads: %w", mapError(err))
	}
	return leads, nil
}

// ListLeadsByFormTypes returns leads of the given form types, newest first.
func (s *PostgresStore) ListLeadsByFormTypes(ctx context.Context, formTypes []string) ([]domain.Lead, error) {
	leads := []domain.Lead{}
	err := s.db.SelectContext(ctx, &leads,
		`SELECT `+leadColumns+` FROM leads WHERE form_type = ANY($1) ORDER BY created_at DESC`,
		pq.Array(formTypes))
	if err != nil {
		return nil, fmt.Errorf("list leads by form type: %w", mapError(err))
	}
	return leads, nil
}

// UpdateLead overwrites the editable fields of a lead.
func (s *PostgresStore) UpdateLead(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	query := `
		UPDATE leads SET
			full_name = $2, email = $3, phone = $4, city = $5, message = $6,
			market_center = $7, notes = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	var out domain.Lead
	err := s.db.GetContext(ctx, &out, query,
		l.ID, l.FullName, l.Email, l.Phone, l.City, l.Message, l.MarketCenter, l.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("update lead: %w", mapError(err))
	}
	return &out, nil
}

// DeleteLead removes a lead and returns it.
func (s *PostgresStore) DeleteLead(ctx context.Context, id string) (*domain.Lead, error) {
	var out domain.Lead
	err := s.db.GetContext(ctx, &out, `DELETE FROM leads WHERE id = $1 RETURNING `+leadColumns, id)
	if err != nil {
		return nil, fmt.Errorf("delete lead: %w", mapError(err))
	}
	return &out, nil
}
