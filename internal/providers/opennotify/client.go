package opennotify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ahhreggi/iss-spotter/internal/providers/fetch"
	"github.com/ahhreggi/iss-spotter/internal/types"
)

// API Docs: http://open-notify.org/Open-Notify-API/ISS-Pass-Times/
// Sample request: http://api.open-notify.org/iss-pass.json?lat=49.27&lon=-123.13
const (
	baseURL = "http://api.open-notify.org/iss-pass.json"
	action  = "fetching flyover data by coordinates"
)

type ClientOption func(*Client)

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

// GetPassTimes returns upcoming passes over coords in upstream order
func (c *Client) GetPassTimes(ctx context.Context, coords types.Coords) (types.PassList, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &fetch.TransportError{Action: action, Err: fmt.Errorf("failed to parse base URL: %w", err)}
	}

	q := u.Query()
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	u.RawQuery = q.Encode()

	var apiResp PassTimesAPIResponse
	if err := c.fetcher.GetJSON(ctx, u.String(), action, &apiResp); err != nil {
		return nil, fetch.TrimBody(err)
	}

	if apiResp.Message == "failure" {
		return nil, &fetch.ParseError{Action: action, Err: errors.New(apiResp.Reason)}
	}
	if apiResp.Response == nil {
		return nil, fetch.MissingField(action, "response")
	}

	passes := make(types.PassList, 0, len(*apiResp.Response))
	for _, p := range *apiResp.Response {
		passes = append(passes, types.PassRecord{
			Risetime: p.Risetime,
			Duration: p.Duration,
		})
	}

	return passes, nil
}
