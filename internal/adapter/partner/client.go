// Package partner talks to the partner listings API.
package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/arturoeanton/realty-admin-backend/internal/domain"
	"github.com/arturoeanton/realty-admin-backend/internal/port"
)

// Config holds the partner endpoint and its fixed credential.
type Config struct {
	BaseURL    string
	Credential string
	AuthScheme string // e.g. "Basic"
	Region     string
	Timeout    time.Duration
}

// Client implements port.ListingSource and port.PeopleSource. It never
// retries; every failure is returned to the caller as *port.UpstreamError.
type Client struct {
	http   *resty.Client
	region string
}

var (
	_ port.ListingSource = (*Client)(nil)
	_ port.PeopleSource  = (*Client)(nil)
)

// NewClient creates a partner API client.
func NewClient(cfg Config) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	if cfg.Credential != "" {
		scheme := cfg.AuthScheme
		if scheme == "" {
			scheme = "Basic"
		}
		c.SetHeader("Authorization", scheme+" "+cfg.Credential)
	}

	return &Client{http: c, region: cfg.Region}
}

// FetchListingsPage fetches one page of region listings.
func (c *Client) FetchListingsPage(ctx context.Context, offset, limit int) (*domain.ListingPage, error) {
	body, err := c.get(ctx, "/v2/listings/region/{id}", c.region, offset, limit)
	if err != nil {
		return nil, err
	}

	var res listingsResponse
	if err := decode(body, &res); err != nil {
		return nil, fmt.Errorf("decode listings page: %w", err)
	}
	return res.page(), nil
}

// FetchPeoplePage fetches one page of an organization's people.
func (c *Client) FetchPeoplePage(ctx context.Context, orgID string, offset, limit int) (*domain.PeoplePage, error) {
	body, err := c.get(ctx, "/v2/listings/orgs/{id}/people", orgID, offset, limit)
	if err != nil {
		return nil, err
	}

	var res peopleResponse
	if err := decode(body, &res); err != nil {
		return nil, fmt.Errorf("decode people page: %w", err)
	}
	page, err := res.page()
	if err != nil {
		return nil, fmt.Errorf("decode people page: %w", err)
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, path, id string, offset, limit int) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetQueryParam("page[offset]", strconv.Itoa(offset)).
		SetQueryParam("page[limit]", strconv.Itoa(limit)).
		Get(path)
	if err != nil {
		return nil, &port.UpstreamError{Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &port.UpstreamError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return resp.Body(), nil
}

// decode keeps numbers as json.Number so ids and prices survive unchanged.
func decode(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
