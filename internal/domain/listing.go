package domain

import "encoding/json"

// Field is a canonical listing attribute resolved from one or more source aliases.
type Field string

// Canonical listing fields.
const (
	FieldStatus           Field = "status"
	FieldCategory         Field = "category"
	FieldListCategory     Field = "list_category"
	FieldPropertyType     Field = "property_type"
	FieldPropertyCategory Field = "property_category"
	FieldSubtype          Field = "property_subtype"
	FieldPrice            Field = "price"
	FieldMarketCenter     Field = "market_center"
	FieldCity             Field = "city"
	FieldAddress          Field = "address"
	FieldTitle            Field = "title"
	FieldListDate         Field = "list_date"
	FieldYearBuilt        Field = "year_built"
	FieldListStatus       Field = "list_status"
)

// Attrs holds, per canonical field, the non-empty source values in alias order.
type Attrs map[Field][]string

// First returns the value of the first alias that carried one.
func (a Attrs) First(f Field) string {
	if vs := a[f]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// All returns every resolved value for f.
func (a Attrs) All(f Field) []string {
	return a[f]
}

// ListingMeta carries the upstream hit metadata.
type ListingMeta struct {
	ID    string   `json:"id,omitempty"`
	Score *float64 `json:"score"`
}

// Listing is one normalized partner listing. It is transient and only
// lives inside the listing snapshot.
type Listing struct {
	ID          string
	StableIndex int
	Meta        ListingMeta
	Fields      map[string]any // raw upstream _source
	Attrs       Attrs
}

// MarshalJSON flattens the raw fields and adds id, stable_index and _kw_meta.
func (l Listing) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Fields)+3)
	for k, v := range l.Fields {
		out[k] = v
	}
	out["id"] = l.ID
	out["stable_index"] = l.StableIndex
	out["_kw_meta"] = l.Meta
	return json.Marshal(out)
}

// RawHit is one hit as returned by the partner search endpoint.
type RawHit struct {
	ID     string         `json:"_id"`
	Score  *float64       `json:"_score"`
	Source map[string]any `json:"_source"`
}

// ListingPage is a single page of raw hits. Total is only reported on some pages.
type ListingPage struct {
	Hits  []RawHit
	Total *int
}
