package listing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

func hit(id string, source map[string]any) domain.RawHit {
	return domain.RawHit{ID: id, Source: source}
}

func TestDJB2_KnownValues(t *testing.T) {
	assert.Equal(t, int32(5381), djb2(""))
	// 5381*33 + 'a'
	assert.Equal(t, int32(177670), djb2("a"))
	// Long inputs wrap around like 32-bit integer arithmetic.
	long := "||||||||||||||||||||||||||||||||||||||||"
	var want int32 = 5381
	for range len(long) {
		want = want*33 + '|'
	}
	assert.Equal(t, want, djb2(long))
}

func TestDJB2_UsesUTF16CodeUnits(t *testing.T) {
	// U+1F600 is a surrogate pair in UTF-16.
	var want int32 = 5381
	for _, c := range []int32{0xD83D, 0xDE00} {
		want = want*33 + c
	}
	assert.Equal(t, want, djb2("\U0001F600"))
}

func TestStableID_SameContentSameID(t *testing.T) {
	a := map[string]any{
		"list_address":       map[string]any{"address": "12 King Rd"},
		"title":              "Villa",
		"current_list_price": json.Number("150000"),
		"list_dt":            "2024-01-02",
		"ignored":            "x",
	}
	b := map[string]any{
		"list_address":       map[string]any{"address": "12 King Rd"},
		"title":              "Villa",
		"current_list_price": json.Number("150000"),
		"list_dt":            "2024-01-02",
		"ignored":            "y",
	}
	c := map[string]any{
		"list_address": map[string]any{"address": "13 King Rd"},
		"title":        "Villa",
	}

	idA := StableID(a)
	assert.Regexp(t, `^gen-\d+$`, idA)
	assert.Equal(t, idA, StableID(b))
	assert.NotEqual(t, idA, StableID(c))
}

func TestStableID_FallsBackAcrossAliases(t *testing.T) {
	withTitle := map[string]any{"title": "Apartment", "price": json.Number("10")}
	withType := map[string]any{"prop_type": "Apartment", "current_list_price": json.Number("0"), "rental_price": json.Number("10")}

	// title falls back to prop_type and a zero list price counts as absent.
	assert.Equal(t, StableID(withTitle), StableID(withType))
}

func TestStableID_NumbersRenderLikeTheFeed(t *testing.T) {
	tests := []struct {
		name  string
		price any
		want  string
	}{
		{name: "trailing zero", price: json.Number("150000.50"), want: "gen-1268809090"},
		{name: "shortest form", price: json.Number("150000.5"), want: "gen-1268809090"},
		{name: "float", price: 150000.5, want: "gen-1268809090"},
		{name: "integer", price: json.Number("150000"), want: "gen-1107086395"},
		{name: "integer with fraction zero", price: json.Number("150000.0"), want: "gen-1107086395"},
		{name: "string kept verbatim", price: "150000.50", want: "gen-1078970606"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StableID(map[string]any{"price": tt.price}))
		})
	}
}

func TestJSNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: 150000.5, want: "150000.5"},
		{in: 1e20, want: "100000000000000000000"},
		{in: 1e21, want: "1e+21"},
		{in: 1.5e-7, want: "1.5e-7"},
		{in: 0.000001, want: "0.000001"},
		{in: -2.25, want: "-2.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jsNumber(tt.in), "%v", tt.in)
	}
}

func TestNormalize_ReconcilesIDs(t *testing.T) {
	listings := Normalize([]domain.RawHit{
		hit("meta-1", map[string]any{}),
		hit("", map[string]any{"id": "top-2"}),
		hit("meta-3", map[string]any{"id": "top-3"}),
		hit("", map[string]any{"title": "No ids"}),
	})
	require.Len(t, listings, 4)

	byID := map[string]domain.Listing{}
	for _, l := range listings {
		assert.Equal(t, l.ID, l.Meta.ID)
		byID[l.ID] = l
	}
	assert.Contains(t, byID, "meta-1")
	assert.Contains(t, byID, "top-2")
	assert.Contains(t, byID, "meta-3")
	assert.NotContains(t, byID, "top-3")

	generated := StableID(map[string]any{"title": "No ids"})
	assert.Contains(t, byID, generated)
}

func TestNormalize_SortsAndIndexesDeterministically(t *testing.T) {
	raw := []domain.RawHit{
		hit("c", map[string]any{"list_status": "Active"}),
		hit("a", nil),
		hit("b", map[string]any{"list_category": "For Sale"}),
	}

	first := Normalize(raw)
	second := Normalize([]domain.RawHit{raw[2], raw[0], raw[1]})

	var ids []string
	for i, l := range first {
		assert.Equal(t, i, l.StableIndex)
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].StableIndex, second[i].StableIndex)
	}
}

func TestNormalize_ResolvesAliasesOnce(t *testing.T) {
	listings := Normalize([]domain.RawHit{hit("x", map[string]any{
		"status":          "Active",
		"property_status": "Pending",
		"category":        "For Rent",
		"price":           "1,200",
		"rental_price":    json.Number("900"),
		"list_address":    map[string]any{"city": "Riyadh", "address": "1 Olaya St"},
		"office_mls_id":   json.Number("2414288"),
	})})
	require.Len(t, listings, 1)
	attrs := listings[0].Attrs

	assert.Equal(t, []string{"Active", "Pending"}, attrs.All(domain.FieldStatus))
	assert.Equal(t, "For Rent", attrs.First(domain.FieldCategory))
	assert.Equal(t, []string{"1,200", "900"}, attrs.All(domain.FieldPrice))
	assert.Equal(t, "Riyadh", attrs.First(domain.FieldCity))
	assert.Equal(t, "1 Olaya St", attrs.First(domain.FieldAddress))
	assert.Equal(t, "2414288", attrs.First(domain.FieldMarketCenter))
	assert.Equal(t, 1200.0, ResolvePrice(attrs))
}

func TestListing_MarshalJSON(t *testing.T) {
	score := 1.5
	l := domain.Listing{
		ID:          "abc",
		StableIndex: 7,
		Meta:        domain.ListingMeta{ID: "abc", Score: &score},
		Fields:      map[string]any{"title": "Villa", "id": "stale"},
	}

	body, err := json.Marshal(l)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "abc", got["id"])
	assert.Equal(t, "Villa", got["title"])
	assert.Equal(t, float64(7), got["stable_index"])
	assert.Equal(t, map[string]any{"id": "abc", "score": 1.5}, got["_kw_meta"])
}
