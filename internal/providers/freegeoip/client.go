package freegeoip

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ahhreggi/iss-spotter/internal/providers/fetch"
	"github.com/ahhreggi/iss-spotter/internal/types"
)

// API Docs: https://freegeoip.app/
// Sample request: https://freegeoip.app/json/162.245.144.188
const (
	baseURL = "https://freegeoip.app/json/"
	action  = "fetching coordinates by IP"
)

type ClientOption func(*Client)

// BaseURLOption overrides the endpoint; the IP is appended as the last path segment
func BaseURLOption(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

type Client struct {
	fetcher *fetch.Client
	baseURL string
}

func NewClient(fetcher *fetch.Client, opts ...ClientOption) *Client {
	c := &Client{
		fetcher: fetcher,
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the raw geolocation record for ip
func (c *Client) Lookup(ctx context.Context, ip string) (*LookupAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &fetch.TransportError{Action: action, Err: fmt.Errorf("failed to parse base URL: %w", err)}
	}
	u = u.JoinPath(ip)

	var apiResp LookupAPIResponse
	if err := c.fetcher.GetJSON(ctx, u.String(), action, &apiResp); err != nil {
		return nil, fetch.TrimBody(err)
	}

	return &apiResp, nil
}

// GetCoordinates returns the latitude and longitude for ip.
// No range validation is applied.
func (c *Client) GetCoordinates(ctx context.Context, ip string) (types.Coords, error) {
	apiResp, err := c.Lookup(ctx, ip)
	if err != nil {
		return types.Coords{}, err
	}

	if apiResp.Latitude == nil {
		return types.Coords{}, fetch.MissingField(action, "latitude")
	}
	if apiResp.Longitude == nil {
		return types.Coords{}, fetch.MissingField(action, "longitude")
	}

	return types.NewCoords(*apiResp.Latitude, *apiResp.Longitude), nil
}
