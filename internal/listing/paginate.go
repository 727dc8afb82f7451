package listing

import (
	"math"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// Page size bounds for the paginated listing view.
const (
	DefaultPerPage = 50
	MaxPerPage     = 1000
)

// Pagination is the metadata returned alongside a page.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
	NextPage    *int `json:"next_page"`
	PrevPage    *int `json:"prev_page"`
	StartIndex  int  `json:"start_index"`
	EndIndex    int  `json:"end_index"`
}

// Paginate slices items into 1-based page number page. Asking past the last
// page fails with a *port.PageRangeError instead of returning an empty page.
func Paginate(items []domain.Listing, page, perPage int) ([]domain.Listing, Pagination, error) {
	if page < 1 {
		return nil, Pagination{}, port.Invalid("page", "Page number must be greater than 0")
	}
	if perPage < 1 || perPage > MaxPerPage {
		return nil, Pagination{}, port.Invalid("limit", "Per page limit must be between 1 and %d", MaxPerPage)
	}

	n := len(items)
	totalPages := (n + perPage - 1) / perPage
	if page > totalPages && totalPages > 0 {
		return nil, Pagination{}, &port.PageRangeError{Page: page, TotalPages: totalPages, Total: n}
	}

	off := pageOffset(page, perPage)
	start := min(off, n)
	end := start + min(perPage, n-start)

	p := Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  n,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		StartIndex:  off + 1,
		EndIndex:    min(off+perPage, n),
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	return items[start:end], p, nil
}

// pageOffset returns (page-1)*perPage, saturating below math.MaxInt-perPage
// so the index arithmetic after it cannot overflow.
func pageOffset(page, perPage int) int {
	if page-1 > (math.MaxInt-perPage)/perPage {
		return math.MaxInt - perPage
	}
	return (page - 1) * perPage
}

// Window returns items[offset:offset+limit]. When all is set slicing is
// disabled and every item is returned.
func Window(items []domain.Listing, offset, limit int, all bool) ([]domain.Listing, error) {
	if offset < 0 {
		return nil, port.Invalid("offset", "offset must not be negative")
	}
	if !all && limit < 1 {
		return nil, port.Invalid("limit", "limit must be a positive number or \"all\"")
	}
	if all {
		return items, nil
	}
	start := min(offset, len(items))
	end := start + min(limit, len(items)-start)
	return items[start:end], nil
}
