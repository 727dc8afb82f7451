package partner

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
)

type listingsResponse struct {
	Hits struct {
		Hits  []domain.RawHit `json:"hits"`
		Total *struct {
			Value *int `json:"value"`
		} `json:"total"`
	} `json:"hits"`
}

func (r *listingsResponse) page() *domain.ListingPage {
	p := &domain.ListingPage{Hits: r.Hits.Hits}
	if r.Hits.Total != nil {
		p.Total = r.Hits.Total.Value
	}
	return p
}

// The people endpoint has shipped its array under three different keys.
type peopleResponse struct {
	People     json.RawMessage `json:"people"`
	Results    json.RawMessage `json:"results"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total *int `json:"total"`
	} `json:"pagination"`
}

func (r *peopleResponse) page() (*domain.PeoplePage, error) {
	p := &domain.PeoplePage{}
	if r.Pagination != nil {
		p.Total = r.Pagination.Total
	}
	for _, raw := range []json.RawMessage{r.People, r.Results, r.Data} {
		if !isArray(raw) {
			continue
		}
		var records []personRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, err
		}
		p.People = make([]domain.Person, 0, len(records))
		for _, rec := range records {
			p.People = append(p.People, rec.person())
		}
		break
	}
	return p, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

type personRecord struct {
	KWUID              flexString `json:"kw_uid"`
	FirstName          flexString `json:"first_name"`
	LastName           flexString `json:"last_name"`
	Photo              flexString `json:"photo"`
	Email              flexString `json:"email"`
	Phone              flexString `json:"phone"`
	MarketCenterNumber flexString `json:"market_center_number"`
	City               flexString `json:"city"`
	Active             *bool      `json:"active"`
	Slug               flexString `json:"slug"`
}

func (r personRecord) person() domain.Person {
	return domain.Person{
		KWUID:              string(r.KWUID),
		FirstName:          string(r.FirstName),
		LastName:           string(r.LastName),
		Photo:              string(r.Photo),
		Email:              string(r.Email),
		Phone:              string(r.Phone),
		MarketCenterNumber: string(r.MarketCenterNumber),
		City:               string(r.City),
		Active:             r.Active,
		Slug:               string(r.Slug),
	}
}

// flexString accepts a JSON string or number; the feed is not consistent
// about ids and phone numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}
