package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
	"github.com/arturoeanton/realty-admin-backend/internal/service/mocks"
)

type LeadServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockLeadStore
	agents    *mocks.MockAgentStore
	publisher *mocks.MockLeadPublisher
	service   *LeadService
	now       time.Time
	ctx       context.Context
}

func (s *LeadServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockLeadStore(s.ctrl)
	s.agents = mocks.NewMockAgentStore(s.ctrl)
	s.publisher = mocks.NewMockLeadPublisher(s.ctrl)
	s.service = NewLeadService(s.store, s.agents, s.publisher, discardLogger())
	s.now = time.UnixMilli(1700000000123)
	s.service.now = func() time.Time { return s.now }
	s.ctx = context.Background()
}

func (s *LeadServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}

func echoLead(_ context.Context, l *domain.Lead) (*domain.Lead, error) {
	out := *l
	out.ID = "lead-1"
	return &out, nil
}

func (s *LeadServiceTestSuite) TestCreate_ContactUs() {
	s.store.EXPECT().LeadExists(s.ctx, "sara@example.com", domain.FormTypeContactUs).Return(false, nil)
	s.store.EXPECT().CreateLead(s.ctx, gomock.Any()).DoAndReturn(echoLead)
	s.publisher.EXPECT().PublishLead(s.ctx, gomock.Any()).Return(nil)

	lead, err := s.service.Create(s.ctx, domain.Lead{FullName: "Sara Ali!", Email: "sara@example.com", MarketCenter: "ignored"})

	s.Require().NoError(err)
	s.Equal(domain.FormTypeContactUs, lead.FormType)
	s.Equal("sara-ali-1700000000123", lead.Slug)
	s.Empty(lead.MarketCenter)
}

func (s *LeadServiceTestSuite) TestCreate_Validation() {
	_, err := s.service.Create(s.ctx, domain.Lead{FullName: "Sara"})
	s.True(port.IsValidation(err))

	_, err = s.service.Create(s.ctx, domain.Lead{
		FullName: "Sara", Email: "s@example.com", FormType: domain.FormTypeAppointment,
		Purpose: "viewing", AppointmentDate: "2026-01-01", AppointmentTime: "10:00",
	})
	s.True(port.IsValidation(err), "terms must be accepted")
}

func (s *LeadServiceTestSuite) TestCreate_Duplicate() {
	s.store.EXPECT().LeadExists(s.ctx, "sara@example.com", "jeddah").Return(true, nil)

	_, err := s.service.Create(s.ctx, domain.Lead{FullName: "Sara", Email: "sara@example.com", FormType: "jeddah"})

	s.ErrorIs(err, port.ErrConflict)
	s.EqualError(err, "Lead already exists")
}

func (s *LeadServiceTestSuite) TestCreate_RegionalTakesAgentMarketCenter() {
	s.store.EXPECT().LeadExists(s.ctx, "sara@example.com", domain.FormTypeJasmin).Return(false, nil)
	s.agents.EXPECT().FindMarketAgent(s.ctx, domain.FormTypeJasmin, "Riyadh").
		Return(&domain.Agent{MarketCenter: "KW Jasmin"}, nil)
	s.store.EXPECT().CreateLead(s.ctx, gomock.Any()).DoAndReturn(echoLead)
	s.publisher.EXPECT().PublishLead(s.ctx, gomock.Any()).Return(nil)

	lead, err := s.service.Create(s.ctx, domain.Lead{
		FullName: "Sara", Email: "sara@example.com", City: "Riyadh", FormType: domain.FormTypeJasmin,
	})

	s.Require().NoError(err)
	s.Equal("KW Jasmin", lead.MarketCenter)
}

func (s *LeadServiceTestSuite) TestCreate_RegionalWithoutAgentKeepsSubmitted() {
	s.store.EXPECT().LeadExists(s.ctx, "sara@example.com", domain.FormTypeJeddah).Return(false, nil)
	s.agents.EXPECT().FindMarketAgent(s.ctx, domain.FormTypeJeddah, "").Return(nil, port.ErrNotFound)
	s.store.EXPECT().CreateLead(s.ctx, gomock.Any()).DoAndReturn(echoLead)
	s.publisher.EXPECT().PublishLead(s.ctx, gomock.Any()).Return(nil)

	lead, err := s.service.Create(s.ctx, domain.Lead{
		FullName: "Sara", Email: "sara@example.com", FormType: domain.FormTypeJeddah, MarketCenter: "KW Jeddah",
	})

	s.Require().NoError(err)
	s.Equal("KW Jeddah", lead.MarketCenter)
}

func (s *LeadServiceTestSuite) TestCreate_PublishFailureDoesNotFailRequest() {
	s.store.EXPECT().LeadExists(s.ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	s.store.EXPECT().CreateLead(s.ctx, gomock.Any()).DoAndReturn(echoLead)
	s.publisher.EXPECT().PublishLead(s.ctx, gomock.Any()).Return(errors.New("channel closed"))

	lead, err := s.service.Create(s.ctx, domain.Lead{FullName: "Sara", Email: "sara@example.com"})

	s.Require().NoError(err)
	s.Equal("lead-1", lead.ID)
}

func (s *LeadServiceTestSuite) TestCreate_WithoutPublisher() {
	svc := NewLeadService(s.store, s.agents, nil, discardLogger())
	s.store.EXPECT().LeadExists(s.ctx, gomock.Any(), gomock.Any()).Return(false, nil)
	s.store.EXPECT().CreateLead(s.ctx, gomock.Any()).DoAndReturn(echoLead)

	_, err := svc.Create(s.ctx, domain.Lead{FullName: "Sara", Email: "sara@example.com"})

	s.NoError(err)
}

func (s *LeadServiceTestSuite) TestList_Range() {
	since := s.now.Add(-7 * 24 * time.Hour)
	s.store.EXPECT().ListLeads(s.ctx, &since).Return([]domain.Lead{{ID: "1"}}, nil)
	s.store.EXPECT().ListLeads(s.ctx, nil).Return([]domain.Lead{{ID: "1"}, {ID: "2"}}, nil)

	week, err := s.service.List(s.ctx, domain.LeadRangeWeek)
	s.Require().NoError(err)
	s.Len(week, 1)

	all, err := s.service.List(s.ctx, domain.LeadRangeAll)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *LeadServiceTestSuite) TestRegional() {
	s.store.EXPECT().ListLeadsByFormTypes(s.ctx, []string{"jasmin", "jeddah"}).Return(nil, nil)

	_, err := s.service.Regional(s.ctx)

	s.NoError(err)
}

func (s *LeadServiceTestSuite) TestUpdateAndDelete() {
	s.store.EXPECT().GetLead(s.ctx, "1").Return(&domain.Lead{ID: "1", FullName: "Sara", Email: "s@example.com"}, nil)
	s.store.EXPECT().UpdateLead(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.Lead) (*domain.Lead, error) {
		return l, nil
	})

	lead, err := s.service.Update(s.ctx, "1", domain.LeadPatch{Notes: strPtr("called back")})
	s.Require().NoError(err)
	s.Equal("called back", lead.Notes)

	s.store.EXPECT().DeleteLead(s.ctx, "2").Return(nil, port.ErrNotFound)
	_, err = s.service.Delete(s.ctx, "2")
	s.EqualError(err, "Lead not found")
}
