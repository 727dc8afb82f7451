package listing

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// BlockedStatuses are dropped from every listing view. Matching is exact
// and case-sensitive on the raw value.
var BlockedStatuses = []string{"Expired", "Pending", "Withdrawn", "Cancelled", "Off Market"}

// Criteria selects the optional filter stages. A nil field or false flag
// leaves its stage out entirely.
type Criteria struct {
	ForSale          bool
	ForRent          bool
	PropertyType     *string
	MinPrice         *float64
	MaxPrice         *float64
	IncludeNewHomes  bool
	MarketCenter     *string
	ListCategory     *string
	PropertyCategory *string
	PropertySubtype  *string
	Location         *string
}

// Stage is one step of the chain. It must not mutate its input.
type Stage func([]domain.Listing) []domain.Listing

// Chain builds the ordered stages for c. The block-list stage is always first.
func Chain(c Criteria) []Stage {
	stages := []Stage{keep(notBlocked)}
	if c.ForSale {
		stages = append(stages, keep(forSale))
	}
	if c.ForRent {
		stages = append(stages, keep(forRent))
	}
	if c.PropertyType != nil && *c.PropertyType != "" {
		stages = append(stages, keep(propertyType(*c.PropertyType)))
	}
	if c.MinPrice != nil || c.MaxPrice != nil {
		lo, hi := 0.0, math.Inf(1)
		if c.MinPrice != nil {
			lo = *c.MinPrice
		}
		if c.MaxPrice != nil {
			hi = *c.MaxPrice
		}
		stages = append(stages, keep(priceBetween(lo, hi)))
	}
	if c.IncludeNewHomes {
		stages = append(stages, newestFirst)
	}
	if c.MarketCenter != nil {
		stages = append(stages, keep(anyEqualFold(domain.FieldMarketCenter, *c.MarketCenter)))
	}
	if c.ListCategory != nil {
		stages = append(stages, keep(firstEqualFold(domain.FieldListCategory, *c.ListCategory)))
	}
	if c.PropertyCategory != nil {
		stages = append(stages, keep(firstEqualFold(domain.FieldPropertyCategory, *c.PropertyCategory)))
	}
	if c.PropertySubtype != nil {
		stages = append(stages, keep(firstEqualFold(domain.FieldSubtype, *c.PropertySubtype)))
	}
	if c.Location != nil {
		stages = append(stages, keep(cityContains(*c.Location)))
	}
	return stages
}

// Apply runs the chain for c over listings.
func Apply(listings []domain.Listing, c Criteria) []domain.Listing {
	out := listings
	for _, stage := range Chain(c) {
		out = stage(out)
	}
	return out
}

func keep(pred func(*domain.Listing) bool) Stage {
	return func(in []domain.Listing) []domain.Listing {
		out := make([]domain.Listing, 0, len(in))
		for i := range in {
			if pred(&in[i]) {
				out = append(out, in[i])
			}
		}
		return out
	}
}

func notBlocked(l *domain.Listing) bool {
	for _, f := range []domain.Field{domain.FieldStatus, domain.FieldCategory} {
		for _, v := range l.Attrs.All(f) {
			if slices.Contains(BlockedStatuses, v) {
				return false
			}
		}
	}
	return true
}

func category(l *domain.Listing) string {
	return strings.ToLower(l.Attrs.First(domain.FieldCategory))
}

func forSale(l *domain.Listing) bool {
	return strings.Contains(category(l), "sale")
}

func forRent(l *domain.Listing) bool {
	c := category(l)
	return strings.Contains(c, "rent") || strings.Contains(c, "lease") || strings.Contains(c, "let")
}

func squash(s string) string {
	return strings.NewReplacer(" ", "", "_", "").Replace(strings.ToLower(s))
}

func propertyType(want string) func(*domain.Listing) bool {
	want = squash(want)
	return func(l *domain.Listing) bool {
		return strings.Contains(squash(l.Attrs.First(domain.FieldPropertyType)), want)
	}
}

func priceBetween(lo, hi float64) func(*domain.Listing) bool {
	return func(l *domain.Listing) bool {
		p := ResolvePrice(l.Attrs)
		return p >= lo && p <= hi
	}
}

func anyEqualFold(f domain.Field, want string) func(*domain.Listing) bool {
	return func(l *domain.Listing) bool {
		for _, v := range l.Attrs.All(f) {
			if strings.EqualFold(v, want) {
				return true
			}
		}
		return false
	}
}

func firstEqualFold(f domain.Field, want string) func(*domain.Listing) bool {
	want = strings.ToLower(want)
	return func(l *domain.Listing) bool {
		return strings.ToLower(l.Attrs.First(f)) == want
	}
}

func cityContains(sub string) func(*domain.Listing) bool {
	sub = strings.ToLower(sub)
	return func(l *domain.Listing) bool {
		return strings.Contains(strings.ToLower(l.Attrs.First(domain.FieldCity)), sub)
	}
}

// newestFirst orders by construction date descending. Listings without a
// parseable date keep their relative order after the dated ones.
func newestFirst(in []domain.Listing) []domain.Listing {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b domain.Listing) int {
		ta, okA := parseBuilt(a.Attrs.First(domain.FieldYearBuilt))
		tb, okB := parseBuilt(b.Attrs.First(domain.FieldYearBuilt))
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	return out
}

var builtLayouts = []string{time.RFC3339, "2006-01-02", "2006-01"}

func parseBuilt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if y, err := strconv.Atoi(s); err == nil {
		return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC), true
	}
	for _, layout := range builtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NewDevelopments keeps active listings whose category mentions sale or
// off market.
func NewDevelopments(listings []domain.Listing) []domain.Listing {
	return keep(func(l *domain.Listing) bool {
		if strings.ToLower(l.Attrs.First(domain.FieldListStatus)) != "active" {
			return false
		}
		c := category(l)
		return strings.Contains(c, "sale") || strings.Contains(c, "off market")
	})(listings)
}

// Find returns the listing whose id or metadata id equals id.
func Find(listings []domain.Listing, id string) (domain.Listing, bool) {
	for _, l := range listings {
		if l.ID == id || l.Meta.ID == id {
			return l, true
		}
	}
	return domain.Listing{}, false
}
