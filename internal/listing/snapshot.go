package listing

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// DefaultTTL is how long a fetched snapshot is served before a refetch.
const DefaultTTL = 60 * time.Second

// Loader rebuilds the full normalized listing set.
type Loader func(ctx context.Context) ([]domain.Listing, error)

// Snapshot holds the most recent normalized listing set. The whole set
// expires together once its TTL elapses.
type Snapshot struct {
	mu        sync.RWMutex
	listings  []domain.Listing
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time

	group singleflight.Group
}

// NewSnapshot creates an empty snapshot. A non-positive ttl uses DefaultTTL.
func NewSnapshot(ttl time.Duration) *Snapshot {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Snapshot{ttl: ttl, now: time.Now}
}

// WithClock replaces the wall clock, for tests.
func (s *Snapshot) WithClock(now func() time.Time) *Snapshot {
	s.now = now
	return s
}

// Get returns the cached listings while they are fresh. The returned slice
// is shared and must not be modified.
func (s *Snapshot) Get() ([]domain.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fetchedAt.IsZero() || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return s.listings, true
}

// Set replaces the snapshot and stamps it with the current time.
func (s *Snapshot) Set(listings []domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = listings
	s.fetchedAt = s.now()
}

// FetchedAt reports when the snapshot was last replaced.
func (s *Snapshot) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Load returns the fresh snapshot or runs load to rebuild it. Concurrent
// callers that find the snapshot stale share a single in-flight load. A
// failed load leaves the previous snapshot untouched.
func (s *Snapshot) Load(ctx context.Context, load Loader) ([]domain.Listing, error) {
	if listings, ok := s.Get(); ok {
		return listings, nil
	}

	ch := s.group.DoChan("snapshot", func() (any, error) {
		if listings, ok := s.Get(); ok {
			return listings, nil
		}
		// One caller's cancellation must not fail the others waiting on it.
		listings, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.Set(listings)
		return listings, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.Listing), nil
	}
}
