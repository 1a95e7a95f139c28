package ipify

import (
	"context"

	"github.com/ahhreggi/iss-spotter/internal/providers/fetch"
)

// API Docs: https://www.ipify.org/
// Sample request: https://api.ipify.org?format=json
const (
	baseURL = "https://api.ipify.org?format=json"
	action  = "fetching IP"
)

type ClientOption func(*Client)

// BaseURLOption overrides the endpoint, including any query string
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

// GetIP returns the caller's public IP address
func (c *Client) GetIP(ctx context.Context) (string, error) {
	var apiResp IPAPIResponse
	if err := c.fetcher.GetJSON(ctx, c.baseURL, action, &apiResp); err != nil {
		return "", err
	}

	if apiResp.IP == "" {
		return "", fetch.MissingField(action, "ip")
	}

	return apiResp.IP, nil
}
