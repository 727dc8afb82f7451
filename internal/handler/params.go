package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/arturoeanton/realty-admin-backend/internal/listing"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// params reads request parameters from a JSON body first and the query
// string second, so one route serves both form posts and links.
type params struct {
	body  map[string]any
	query func(key string) string
}

func newParams(c fiber.Ctx) (*params, error) {
	p := &params{query: func(key string) string { return c.Query(key) }}
	raw := bytes.TrimSpace(c.Body())
	if len(raw) == 0 {
		return p, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&p.body); err != nil {
		return nil, port.Invalid("body", "Request body must be a JSON object")
	}
	return p, nil
}

func (p *params) raw(key string) (string, bool) {
	if v, ok := p.body[key]; ok && v != nil {
		switch t := v.(type) {
		case string:
			return strings.TrimSpace(t), true
		case json.Number:
			return t.String(), true
		case bool:
			return strconv.FormatBool(t), true
		}
	}
	if v := strings.TrimSpace(p.query(key)); v != "" {
		return v, true
	}
	return "", false
}

// str returns nil for a missing or empty parameter.
func (p *params) str(key string) *string {
	v, ok := p.raw(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (p *params) intOr(key string, def int) (int, error) {
	v, ok := p.raw(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, port.Invalid(key, "%s must be an integer", key)
	}
	return n, nil
}

func (p *params) float(key string) (*float64, error) {
	v, ok := p.raw(key)
	if !ok || v == "" {
		return nil, nil
	}
	f, ok := listing.ParsePrice(v)
	if !ok {
		return nil, port.Invalid(key, "%s must be a number", key)
	}
	return &f, nil
}

// flag is set only by a literal true or "true".
func (p *params) flag(key string) bool {
	v, _ := p.raw(key)
	return v == "true"
}

// criteria maps the listing search parameters onto filter stages.
func (p *params) criteria() (listing.Criteria, error) {
	minPrice, err := p.float("min_price")
	if err != nil {
		return listing.Criteria{}, err
	}
	maxPrice, err := p.float("max_price")
	if err != nil {
		return listing.Criteria{}, err
	}
	return listing.Criteria{
		ForSale:          p.flag("forsale"),
		ForRent:          p.flag("forrent"),
		PropertyType:     p.str("property_type"),
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		IncludeNewHomes:  p.flag("include_new_homes"),
		MarketCenter:     p.str("market_center"),
		ListCategory:     p.str("list_category"),
		PropertyCategory: p.str("property_category"),
		PropertySubtype:  p.str("property_subtype"),
		Location:         p.str("location"),
	}, nil
}

// queryInt reads an integer query parameter, falling back to def when absent.
func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, port.Invalid(key, "%s must be an integer", key)
	}
	return n, nil
}

// queryBool returns nil when key is absent.
func queryBool(c fiber.Ctx, key string) (*bool, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, port.Invalid(key, "%s must be true or false", key)
	}
	return &b, nil
}

// bindJSON decodes a JSON body into dst. An empty body leaves dst untouched.
func bindJSON(c fiber.Ctx, dst interface{}) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return nil
	}
	if err := c.Bind().JSON(dst); err != nil {
		return port.Invalid("body", "Invalid request body")
	}
	return nil
}

// pageOf returns the 1-based page of items. Out-of-range pages are empty.
func pageOf[T any](items []T, page, perPage int) []T {
	if page < 1 || perPage < 1 || page-1 > len(items)/perPage {
		return []T{}
	}
	start := (page - 1) * perPage
	end := start + min(perPage, len(items)-start)
	return items[start:end]
}
