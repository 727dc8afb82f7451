package listing

import (
	"context"
	"fmt"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// Fetch limits.
const (
	DefaultPageSize = 1000
	DefaultMaxPages = 50
)

// FetchOptions bounds an aggregation run.
type FetchOptions struct {
	PageSize int
	MaxPages int
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultMaxPages
	}
	return o
}

// FetchAll pages through source and concatenates every hit. It stops once
// the offset reaches the total reported by the first page, after a short
// or empty page, or after MaxPages pages. Any page error aborts the run.
func FetchAll(ctx context.Context, source port.ListingSource, opts FetchOptions) ([]domain.RawHit, error) {
	opts = opts.withDefaults()

	var (
		hits   []domain.RawHit
		total  *int
		offset int
	)
	for page := 0; page < opts.MaxPages; page++ {
		res, err := source.FetchListingsPage(ctx, offset, opts.PageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch listings at offset %d: %w", offset, err)
		}
		if page == 0 {
			total = res.Total
		}
		hits = append(hits, res.Hits...)
		offset += opts.PageSize

		if len(res.Hits) == 0 {
			break
		}
		if total != nil {
			if offset >= *total {
				break
			}
		} else if len(res.Hits) < opts.PageSize {
			break
		}
	}
	return hits, nil
}

// Aggregate fetches every page and normalizes the result.
func Aggregate(ctx context.Context, source port.ListingSource, opts FetchOptions) ([]domain.Listing, error) {
	hits, err := FetchAll(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	return Normalize(hits), nil
}
