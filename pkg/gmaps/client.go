package gmaps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultAPIURL = "https://maps.googleapis.com/maps/api"

// ErrNoRoute is returned when the Directions API finds no route between the
// requested points.
var ErrNoRoute = errors.New("no route found")

// Client is the Google Maps Directions API client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Directions client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the API base URL. Used in tests.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = u
}

// Directions fetches the first driving route between origin and destination,
// with a live traffic estimate.
func (c *Client) Directions(ctx context.Context, req DirectionsRequest) (*Route, error) {
	params := url.Values{}
	params.Set("origin", req.Origin)
	params.Set("destination", req.Destination)
	params.Set("key", c.apiKey)
	params.Set("departure_time", "now")
	params.Set("traffic_model", "best_guess")

	endpoint := fmt.Sprintf("%s/directions/json?%s", c.apiURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call directions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("directions API error %d: %s", resp.StatusCode, string(raw))
	}

	var result directionsResponse
	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	switch result.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, ErrNoRoute
	default:
		return nil, fmt.Errorf("directions API status %s: %s", result.Status, result.ErrorMessage)
	}

	if len(result.Routes) == 0 || len(result.Routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	leg := result.Routes[0].Legs[0]
	route := &Route{
		Summary:         result.Routes[0].Summary,
		DurationSeconds: leg.Duration.Value,
	}
	if leg.DurationInTraffic != nil {
		route.DurationInTrafficSeconds = leg.DurationInTraffic.Value
	} else {
		route.DurationInTrafficSeconds = leg.Duration.Value
	}

	return route, nil
}
