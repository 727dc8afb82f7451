package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// RegionalFormTypes are the forms routed to a regional market center.
var RegionalFormTypes = []string{domain.FormTypeJasmin, domain.FormTypeJeddah}

// LeadService handles website form submissions.
type LeadService struct {
	store     LeadStore
	agents    AgentStore
	publisher LeadPublisher // optional
	now       func() time.Time
	logger    *slog.Logger
}

// NewLeadService creates a lead service. publisher may be nil.
func NewLeadService(store LeadStore, agents AgentStore, publisher LeadPublisher, logger *slog.Logger) *LeadService {
	return &LeadService{
		store:     store,
		agents:    agents,
		publisher: publisher,
		now:       time.Now,
		logger:    logger.With("component", "leads"),
	}
}

// Create validates and stores a submission, then announces it on the
// publisher when one is configured.
func (s *LeadService) Create(ctx context.Context, in domain.Lead) (*domain.Lead, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" || in.Email == "" {
		return nil, port.Invalid("", "Full name and email are required")
	}
	if in.FormType == "" {
		in.FormType = domain.FormTypeContactUs
	}
	if in.FormType == domain.FormTypeAppointment &&
		(in.Purpose == "" || in.AppointmentDate == "" || in.AppointmentTime == "" || !in.TermsAccepted) {
		return nil, port.Invalid("", "Purpose, appointment date, time, and terms acceptance are required for appointments")
	}

	exists, err := s.store.LeadExists(ctx, in.Email, in.FormType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, port.Errorf(port.ErrConflict, "Lead already exists")
	}

	in.Slug = slugify(fmt.Sprintf("%s-%d", in.FullName, s.now().UnixMilli()))

	if isRegional(in.FormType) {
		in.MarketCenter = s.regionalMarketCenter(ctx, in.FormType, in.City, in.MarketCenter)
	} else {
		in.MarketCenter = ""
	}

	created, err := s.store.CreateLead(ctx, &in)
	if err != nil {
		return nil, conflict(err, "Lead already exists")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishLead(ctx, created); err != nil {
			s.logger.Error("failed to publish lead", "lead_id", created.ID, "error", err)
		}
	}
	return created, nil
}

// regionalMarketCenter looks up the market center of a synced agent for the
// region. Lookup failures keep the submitted value.
func (s *LeadService) regionalMarketCenter(ctx context.Context, region, city, fallback string) string {
	agent, err := s.agents.FindMarketAgent(ctx, region, city)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			s.logger.Warn("market center lookup failed", "form_type", region, "error", err)
		}
		return fallback
	}
	return agent.MarketCenter
}

func isRegional(formType string) bool {
	for _, ft := range RegionalFormTypes {
		if formType == ft {
			return true
		}
	}
	return false
}

// List returns leads newest first, limited to the trailing range when one is given.
func (s *LeadService) List(ctx context.Context, r domain.LeadRange) ([]domain.Lead, error) {
	if since, ok := r.Since(s.now()); ok {
		return s.store.ListLeads(ctx, &since)
	}
	return s.store.ListLeads(ctx, nil)
}

// Regional returns the jasmin and jeddah leads.
func (s *LeadService) Regional(ctx context.Context) ([]domain.Lead, error) {
	return s.store.ListLeadsByFormTypes(ctx, RegionalFormTypes)
}

// Get returns one lead.
func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := s.store.GetLead(ctx, id)
	if err != nil {
		return nil, notFound(err, "Lead not found")
	}
	return l, nil
}

// Update applies patch to a lead.
func (s *LeadService) Update(ctx context.Context, id string, patch domain.LeadPatch) (*domain.Lead, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&l.FullName, patch.FullName)
	setString(&l.Email, patch.Email)
	setString(&l.Phone, patch.Phone)
	setString(&l.City, patch.City)
	setString(&l.Message, patch.Message)
	setString(&l.MarketCenter, patch.MarketCenter)
	setString(&l.Notes, patch.Notes)

	if strings.TrimSpace(l.FullName) == "" || strings.TrimSpace(l.Email) == "" {
		return nil, port.Invalid("", "Full name and email are required")
	}

	updated, err := s.store.UpdateLead(ctx, l)
	if err != nil {
		return nil, conflict(notFound(err, "Lead not found"), "Lead already exists")
	}
	return updated, nil
}

// Delete removes a lead and returns it.
func (s *LeadService) Delete(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := s.store.DeleteLead(ctx, id)
	if err != nil {
		return nil, notFound(err, "Lead not found")
	}
	return l, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
