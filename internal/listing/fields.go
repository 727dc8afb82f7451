// Package listing aggregates partner listings into a normalized, cached
// snapshot and serves filtered, paginated views of it.
package listing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

// alias maps one canonical field to its ordered source keys. Dotted keys
// address nested objects.
type alias struct {
	field   domain.Field
	sources []string
}

var aliasTable = []alias{
	{domain.FieldStatus, []string{"list_status", "status", "property_status"}},
	{domain.FieldListStatus, []string{"list_status"}},
	{domain.FieldCategory, []string{"list_category", "category"}},
	{domain.FieldListCategory, []string{"list_category", "status", "property_status"}},
	{domain.FieldPropertyType, []string{"prop_type", "property_type"}},
	{domain.FieldPropertyCategory, []string{"prop_type"}},
	{domain.FieldSubtype, []string{"prop_subtype", "subtype"}},
	{domain.FieldPrice, []string{"current_list_price", "price", "rental_price"}},
	{domain.FieldMarketCenter, []string{"listing_market_center", "office_mls_id", "market_center"}},
	{domain.FieldCity, []string{"list_address.city"}},
	{domain.FieldAddress, []string{"list_address.address", "address"}},
	{domain.FieldTitle, []string{"title", "prop_type"}},
	{domain.FieldListDate, []string{"list_dt"}},
	{domain.FieldYearBuilt, []string{"year_built"}},
}

// ResolveAttrs walks the alias table once over a raw record.
func ResolveAttrs(fields map[string]any) domain.Attrs {
	attrs := make(domain.Attrs, len(aliasTable))
	for _, a := range aliasTable {
		var vals []string
		for _, key := range a.sources {
			if s, ok := stringify(lookup(fields, key)); ok && s != "" {
				vals = append(vals, s)
			}
		}
		if len(vals) > 0 {
			attrs[a.field] = vals
		}
	}
	return attrs
}

func lookup(fields map[string]any, key string) any {
	cur := any(fields)
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

// stringify renders scalars the way they appear on the wire. Objects and
// arrays are not scalar attributes and are skipped.
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String(), true
		}
		return jsNumber(f), true
	case float64:
		return jsNumber(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// jsNumber renders f the way the feed's consumers print numbers: shortest
// round-trip digits, plain notation between 1e-6 and 1e21, exponent
// notation without zero padding outside it. "150000.50" becomes "150000.5".
func jsNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// truthy mirrors the loose truthiness the partner feed relies on: empty
// strings, zero numbers, false and null are all "absent".
func truthy(v any) (string, bool) {
	s, ok := stringify(v)
	if !ok || s == "" || s == "false" {
		return "", false
	}
	switch v.(type) {
	case json.Number, float64, int, int64:
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
			return "", false
		}
	}
	return s, true
}

// ParsePrice strips thousands separators and parses a price.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ResolvePrice returns the first parseable price alias, or 0.
func ResolvePrice(attrs domain.Attrs) float64 {
	for _, raw := range attrs.All(domain.FieldPrice) {
		if p, ok := ParsePrice(raw); ok {
			return p
		}
	}
	return 0
}
