package listing

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

func makeListings(n int) []domain.Listing {
	out := make([]domain.Listing, n)
	for i := range out {
		out[i] = domain.Listing{ID: fmt.Sprintf("id-%04d", i), StableIndex: i}
	}
	return out
}

func TestPaginate_LastPageHoldsRemainder(t *testing.T) {
	cases := []struct{ n, per, lastLen int }{
		{n: 105, per: 50, lastLen: 5},
		{n: 100, per: 50, lastLen: 50},
		{n: 1, per: 1000, lastLen: 1},
	}
	for _, tc := range cases {
		items := makeListings(tc.n)
		last := (tc.n + tc.per - 1) / tc.per

		page, meta, err := Paginate(items, last, tc.per)
		require.NoError(t, err)
		assert.Len(t, page, tc.lastLen)
		assert.False(t, meta.HasNextPage)
		assert.Nil(t, meta.NextPage)
		assert.Equal(t, tc.n, meta.EndIndex)

		_, _, err = Paginate(items, last+1, tc.per)
		var rangeErr *port.PageRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.True(t, errors.Is(err, port.ErrPageOutOfRange))
		assert.Equal(t, last, rangeErr.TotalPages)
		assert.Equal(t, tc.n, rangeErr.Total)
	}
}

func TestPaginate_Metadata(t *testing.T) {
	page, meta, err := Paginate(makeListings(120), 2, 50)
	require.NoError(t, err)

	assert.Equal(t, "id-0050", page[0].ID)
	assert.Equal(t, "id-0099", page[len(page)-1].ID)
	assert.Equal(t, Pagination{
		CurrentPage: 2,
		PerPage:     50,
		TotalItems:  120,
		TotalPages:  3,
		HasNextPage: true,
		HasPrevPage: true,
		NextPage:    ptr(3),
		PrevPage:    ptr(1),
		StartIndex:  51,
		EndIndex:    100,
	}, meta)
}

func TestPaginate_EmptySetFirstPage(t *testing.T) {
	page, meta, err := Paginate(nil, 1, 50)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, 1, meta.StartIndex)
	assert.Equal(t, 0, meta.EndIndex)
	assert.Nil(t, meta.PrevPage)
}

func TestPaginate_RejectsBadBounds(t *testing.T) {
	for _, tc := range []struct{ page, per int }{{0, 10}, {-1, 10}, {1, 0}, {1, 1001}} {
		_, _, err := Paginate(makeListings(3), tc.page, tc.per)
		assert.True(t, port.IsValidation(err), "page=%d per=%d", tc.page, tc.per)
	}
}

func TestWindow(t *testing.T) {
	items := makeListings(30)

	got, err := Window(items, 0, 20, false)
	require.NoError(t, err)
	assert.Len(t, got, 20)

	got, err = Window(items, 25, 20, false)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	got, err = Window(items, 40, 20, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Window(items, 10, 0, true)
	require.NoError(t, err)
	assert.Len(t, got, 30)

	_, err = Window(items, -1, 20, false)
	assert.True(t, port.IsValidation(err))
}

func TestPaginate_HugePageOnEmptySet(t *testing.T) {
	for _, tc := range []struct{ page, per int }{
		{page: 1 << 62, per: 4},
		{page: math.MaxInt, per: 1000},
		{page: math.MaxInt, per: 1},
	} {
		page, meta, err := Paginate(nil, tc.page, tc.per)
		require.NoError(t, err, "page=%d per=%d", tc.page, tc.per)
		assert.Empty(t, page)
		assert.Equal(t, 0, meta.TotalPages)
		assert.Equal(t, 0, meta.EndIndex)
		assert.Positive(t, meta.StartIndex)
	}
}

func TestPaginate_HugePageOnNonEmptySetIsOutOfRange(t *testing.T) {
	_, _, err := Paginate(makeListings(3), math.MaxInt, 1000)
	assert.True(t, errors.Is(err, port.ErrPageOutOfRange))
}

func TestWindow_HugeLimitAndOffset(t *testing.T) {
	items := makeListings(3)

	tests := []struct {
		name          string
		offset, limit int
		want          int
	}{
		{name: "max limit", offset: 1, limit: math.MaxInt, want: 2},
		{name: "max limit from start", offset: 0, limit: math.MaxInt, want: 3},
		{name: "max offset", offset: math.MaxInt, limit: 10, want: 0},
		{name: "both max", offset: math.MaxInt, limit: math.MaxInt, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Window(items, tt.offset, tt.limit, false)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}
