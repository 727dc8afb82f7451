package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/listing"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
	portmocks "github.com/arturoeanton/realty-admin-backend/internal/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ListingServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	source  *portmocks.MockListingSource
	service *ListingService
	ctx     context.Context
}

func (s *ListingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = portmocks.NewMockListingSource(s.ctrl)
	s.service = NewListingService(s.source, listing.NewSnapshot(time.Minute), listing.FetchOptions{PageSize: 10, MaxPages: 5}, discardLogger())
	s.ctx = context.Background()
}

func (s *ListingServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestListingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ListingServiceTestSuite))
}

func (s *ListingServiceTestSuite) expectPartnerPage() {
	total := 4
	s.source.EXPECT().FetchListingsPage(gomock.Any(), 0, 10).Return(&domain.ListingPage{
		Total: &total,
		Hits: []domain.RawHit{
			{ID: "a", Source: map[string]any{"list_category": "For Sale", "list_status": "Active", "current_list_price": "500,000"}},
			{ID: "b", Source: map[string]any{"list_category": "For Rent", "list_status": "Active", "rental_price": 3000}},
			{ID: "c", Source: map[string]any{"list_category": "For Sale", "list_status": "Expired"}},
			{ID: "d", Source: map[string]any{"list_category": "Off Market", "status": "Coming Soon", "list_status": "active"}},
		},
	}, nil).Times(1)
}

func (s *ListingServiceTestSuite) TestSearch_ServesRepeatedQueriesFromSnapshot() {
	s.expectPartnerPage()

	data, page, err := s.service.Search(s.ctx, listing.Criteria{ForSale: true}, 1, 50)
	s.Require().NoError(err)
	s.Len(data, 1)
	s.Equal("a", data[0].ID)
	s.Equal(1, page.TotalItems)

	data, _, err = s.service.Search(s.ctx, listing.Criteria{ForRent: true}, 1, 50)
	s.Require().NoError(err)
	s.Len(data, 1)
	s.Equal("b", data[0].ID)
}

func (s *ListingServiceTestSuite) TestSearch_RejectsBadBoundsWithoutFetching() {
	_, _, err := s.service.Search(s.ctx, listing.Criteria{}, 0, 50)
	s.True(port.IsValidation(err))

	_, _, err = s.service.Search(s.ctx, listing.Criteria{}, 1, listing.MaxPerPage+1)
	s.True(port.IsValidation(err))
}

func (s *ListingServiceTestSuite) TestSearch_PageBeyondLast() {
	s.expectPartnerPage()

	// Two listings survive the block list.
	_, _, err := s.service.Search(s.ctx, listing.Criteria{}, 5, 1)

	var rangeErr *port.PageRangeError
	s.Require().ErrorAs(err, &rangeErr)
	s.Equal(2, rangeErr.TotalPages)
	s.Equal(2, rangeErr.Total)
}

func (s *ListingServiceTestSuite) TestGet() {
	s.expectPartnerPage()

	l, err := s.service.Get(s.ctx, "b")
	s.Require().NoError(err)
	s.Equal("b", l.ID)

	_, err = s.service.Get(s.ctx, "missing")
	s.ErrorIs(err, port.ErrNotFound)
	s.EqualError(err, "Property not found")
}

func (s *ListingServiceTestSuite) TestNewDevelopments() {
	s.expectPartnerPage()

	window, total, err := s.service.NewDevelopments(s.ctx, 0, 1, false)
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(window, 1)

	window, total, err = s.service.NewDevelopments(s.ctx, 0, 0, true)
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(window, 2)
}

func (s *ListingServiceTestSuite) TestUpstreamFailureIsReturned() {
	s.source.EXPECT().FetchListingsPage(gomock.Any(), 0, 10).
		Return(nil, &port.UpstreamError{StatusCode: 502, Body: "bad gateway"})

	_, _, err := s.service.Search(s.ctx, listing.Criteria{}, 1, 50)

	var upstream *port.UpstreamError
	s.Require().True(errors.As(err, &upstream))
	s.Equal(502, upstream.StatusCode)
}
