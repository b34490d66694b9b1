package openweather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const defaultAPIURL = "https://api.openweathermap.org/data/2.5"

// Client is the OpenWeatherMap current-weather API client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new OpenWeatherMap client with the given API key.
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

// CurrentWeather fetches the current conditions for the given coordinates,
// in metric units.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentConditions, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	endpoint := fmt.Sprintf("%s/weather?%s", c.apiURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call openweathermap API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openweathermap API error %d: %s", resp.StatusCode, string(raw))
	}

	var result CurrentConditions
	if err := decodeJSON(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	if len(result.Weather) == 0 {
		return nil, fmt.Errorf("weather response carries no conditions")
	}

	return &result, nil
}
