package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/listing"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// ListingService serves filtered views over the cached partner snapshot.
type ListingService struct {
	source   port.ListingSource
	snapshot *listing.Snapshot
	opts     listing.FetchOptions
	logger   *slog.Logger
}

// NewListingService creates a listing service backed by source.
func NewListingService(source port.ListingSource, snapshot *listing.Snapshot, opts listing.FetchOptions, logger *slog.Logger) *ListingService {
	return &ListingService{
		source:   source,
		snapshot: snapshot,
		opts:     opts,
		logger:   logger.With("component", "listings"),
	}
}

// All returns the normalized snapshot, refreshing it from the partner when stale.
func (s *ListingService) All(ctx context.Context) ([]domain.Listing, error) {
	return s.snapshot.Load(ctx, s.load)
}

func (s *ListingService) load(ctx context.Context) ([]domain.Listing, error) {
	start := time.Now()
	listings, err := listing.Aggregate(ctx, s.source, s.opts)
	if err != nil {
		s.logger.Error("listing refresh failed", "error", err, "duration", time.Since(start))
		return nil, err
	}
	s.logger.Info("listing snapshot refreshed", "count", len(listings), "duration", time.Since(start))
	return listings, nil
}

// Search runs the filter chain and returns one page of the result.
func (s *ListingService) Search(ctx context.Context, c listing.Criteria, page, perPage int) ([]domain.Listing, listing.Pagination, error) {
	// Bounds are checked before touching the partner API.
	if page < 1 {
		return nil, listing.Pagination{}, port.Invalid("page", "Page number must be greater than 0")
	}
	if perPage < 1 || perPage > listing.MaxPerPage {
		return nil, listing.Pagination{}, port.Invalid("limit", "Per page limit must be between 1 and %d", listing.MaxPerPage)
	}

	all, err := s.All(ctx)
	if err != nil {
		return nil, listing.Pagination{}, err
	}
	return listing.Paginate(listing.Apply(all, c), page, perPage)
}

// Get returns the listing with the given canonical id.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	l, ok := listing.Find(all, id)
	if !ok {
		return nil, port.Errorf(port.ErrNotFound, "Property not found")
	}
	return &l, nil
}

// NewDevelopments returns a window over active for-sale or off-market
// listings along with the size of that subset.
func (s *ListingService) NewDevelopments(ctx context.Context, offset, limit int, all bool) ([]domain.Listing, int, error) {
	if offset < 0 {
		return nil, 0, port.Invalid("offset", "offset must not be negative")
	}
	listings, err := s.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	subset := listing.NewDevelopments(listings)
	window, err := listing.Window(subset, offset, limit, all)
	if err != nil {
		return nil, 0, err
	}
	return window, len(subset), nil
}
