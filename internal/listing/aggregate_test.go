package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port/mocks"
)

type AggregateTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	source *mocks.MockListingSource
	ctx    context.Context
}

func (s *AggregateTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockListingSource(s.ctrl)
	s.ctx = context.Background()
}

func (s *AggregateTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAggregateTestSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

func hits(prefix string, n int) []domain.RawHit {
	out := make([]domain.RawHit, n)
	for i := range out {
		out[i] = domain.RawHit{ID: fmt.Sprintf("%s-%05d", prefix, i), Source: map[string]any{}}
	}
	return out
}

func (s *AggregateTestSuite) TestFetchAll_StopsAtReportedTotal() {
	total := 1500
	gomock.InOrder(
		s.source.EXPECT().FetchListingsPage(s.ctx, 0, 1000).
			Return(&domain.ListingPage{Hits: hits("a", 1000), Total: &total}, nil),
		s.source.EXPECT().FetchListingsPage(s.ctx, 1000, 1000).
			Return(&domain.ListingPage{Hits: hits("b", 500)}, nil),
	)

	listings, err := Aggregate(s.ctx, s.source, FetchOptions{})

	s.NoError(err)
	s.Len(listings, 1500)
	s.Equal(0, listings[0].StableIndex)
	s.Equal(1499, listings[1499].StableIndex)
}

func (s *AggregateTestSuite) TestFetchAll_TotalOnlyTrustedFromFirstPage() {
	total := 2
	later := 100
	gomock.InOrder(
		s.source.EXPECT().FetchListingsPage(s.ctx, 0, 1).
			Return(&domain.ListingPage{Hits: hits("a", 1), Total: &total}, nil),
		s.source.EXPECT().FetchListingsPage(s.ctx, 1, 1).
			Return(&domain.ListingPage{Hits: hits("b", 1), Total: &later}, nil),
	)

	got, err := FetchAll(s.ctx, s.source, FetchOptions{PageSize: 1})

	s.NoError(err)
	s.Len(got, 2)
}

func (s *AggregateTestSuite) TestFetchAll_NoTotalStopsOnShortPage() {
	gomock.InOrder(
		s.source.EXPECT().FetchListingsPage(s.ctx, 0, 10).
			Return(&domain.ListingPage{Hits: hits("a", 10)}, nil),
		s.source.EXPECT().FetchListingsPage(s.ctx, 10, 10).
			Return(&domain.ListingPage{Hits: hits("b", 3)}, nil),
	)

	got, err := FetchAll(s.ctx, s.source, FetchOptions{PageSize: 10})

	s.NoError(err)
	s.Len(got, 13)
}

func (s *AggregateTestSuite) TestFetchAll_EmptyPageStops() {
	total := 5000
	s.source.EXPECT().FetchListingsPage(s.ctx, 0, 1000).
		Return(&domain.ListingPage{Total: &total}, nil)

	got, err := FetchAll(s.ctx, s.source, FetchOptions{})

	s.NoError(err)
	s.Empty(got)
}

func (s *AggregateTestSuite) TestFetchAll_BoundedByMaxPages() {
	s.source.EXPECT().FetchListingsPage(s.ctx, gomock.Any(), 2).
		Return(&domain.ListingPage{Hits: hits("x", 2)}, nil).
		Times(3)

	got, err := FetchAll(s.ctx, s.source, FetchOptions{PageSize: 2, MaxPages: 3})

	s.NoError(err)
	s.Len(got, 6)
}

func (s *AggregateTestSuite) TestFetchAll_PageErrorAborts() {
	total := 3000
	boom := errors.New("502 bad gateway")
	gomock.InOrder(
		s.source.EXPECT().FetchListingsPage(s.ctx, 0, 1000).
			Return(&domain.ListingPage{Hits: hits("a", 1000), Total: &total}, nil),
		s.source.EXPECT().FetchListingsPage(s.ctx, 1000, 1000).
			Return(nil, boom),
	)

	got, err := Aggregate(s.ctx, s.source, FetchOptions{})

	s.ErrorIs(err, boom)
	s.Nil(got)
}
