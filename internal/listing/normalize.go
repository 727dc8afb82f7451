package listing

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// Normalize turns raw hits into listings with reconciled ids, sorted by id,
// and numbered with a 0-based stable_index. The same input always yields
// the same ids in the same order.
func Normalize(hits []domain.RawHit) []domain.Listing {
	out := make([]domain.Listing, 0, len(hits))
	for _, hit := range hits {
		fields := hit.Source
		if fields == nil {
			fields = map[string]any{}
		}
		l := domain.Listing{
			Meta:   domain.ListingMeta{ID: hit.ID, Score: hit.Score},
			Fields: fields,
			Attrs:  ResolveAttrs(fields),
		}
		reconcileID(&l)
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for i := range out {
		out[i].StableIndex = i
	}
	return out
}

// reconcileID makes the top-level id and the metadata id agree.
func reconcileID(l *domain.Listing) {
	topID, _ := truthy(l.Fields["id"])
	switch {
	case l.Meta.ID == "" && topID == "":
		id := StableID(l.Fields)
		l.ID, l.Meta.ID = id, id
	case l.Meta.ID != "":
		l.ID = l.Meta.ID
	default:
		l.ID, l.Meta.ID = topID, topID
	}
}

// StableID derives a content id for a record the partner sent without one.
// The key is metaID|address|title-or-type|price|list date, where each
// part is the first truthy alias.
func StableID(fields map[string]any) string {
	key := strings.Join([]string{
		"", // metadata id, absent by construction
		firstTruthy(fields, "list_address.address", "address"),
		firstTruthy(fields, "title", "prop_type"),
		firstTruthy(fields, "current_list_price", "price", "rental_price"),
		firstTruthy(fields, "list_dt"),
	}, "|")
	h := djb2(key)
	return "gen-" + strconv.FormatInt(abs64(int64(h)), 10)
}

func firstTruthy(fields map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := truthy(lookup(fields, k)); ok {
			return s
		}
	}
	return ""
}

// djb2 hashes UTF-16 code units with 32-bit wraparound.
func djb2(s string) int32 {
	var h int32 = 5381
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) + h + int32(c)
	}
	return h
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
