// Package geo is the Open-Meteo geocoding client. It turns partial
// city names into location candidates for autocomplete and resolves a
// submitted city to coordinates for the forecast lookup.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"skycast/internal/domain"
)

const (
	// BaseURL is the Open-Meteo geocoding API endpoint.
	BaseURL = "https://geocoding-api.open-meteo.com/v1/search"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second
)

// Client is the geocoding API client. It is safe for concurrent use;
// each Search is an independent request with no shared state.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a geocoding client with the default timeout
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing)
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetBaseURL allows overriding the API endpoint (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

type searchResponse struct {
	Results []domain.Location `json:"results"`
}

// Search returns up to count location candidates matching name
func (c *Client) Search(ctx context.Context, name string, count int) ([]domain.Location, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("count", fmt.Sprintf("%d", count))
	query.Set("language", "en")
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("geocoding request returned status %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	return data.Results, nil
}
