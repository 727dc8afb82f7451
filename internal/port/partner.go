package port

//go:generate mockgen -source=partner.go -destination=mocks/partner.go -package=mocks

import (
	"context"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// ListingSource pages through the partner region listings.
type ListingSource interface {
	// FetchListingsPage returns one page of raw hits starting at offset.
	// The total hint is only trusted from the first page of a sequence.
	FetchListingsPage(ctx context.Context, offset, limit int) (*domain.ListingPage, error)
}

// PeopleSource pages through the people of a partner organization.
type PeopleSource interface {
	FetchPeoplePage(ctx context.Context, orgID string, offset, limit int) (*domain.PeoplePage, error)
}
