// Package weather resolves a submitted city name to a current-weather
// report via the Open-Meteo forecast API. Errors returned by Fetch are
// user-facing strings, coarsely categorized by message wording only.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"skycast/internal/domain"
	"skycast/internal/geo"
)

const (
	// BaseURL is the Open-Meteo forecast API endpoint.
	BaseURL = "https://api.open-meteo.com/v1/forecast"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,pressure_msl"
)

// Options selects the measurement units for forecast requests
type Options struct {
	TemperatureUnit   string // "celsius" or "fahrenheit"
	WindSpeedUnit     string // "kmh", "ms", "mph", "kn"
	PrecipitationUnit string // "mm" or "inch"
}

// DefaultOptions returns metric units
func DefaultOptions() Options {
	return Options{
		TemperatureUnit:   "celsius",
		WindSpeedUnit:     "kmh",
		PrecipitationUnit: "mm",
	}
}

// Client fetches weather reports. A submitted query is first resolved
// through the geocoder, then the coordinates are handed to the
// forecast API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	geocoder   *geo.Client
	opts       Options
}

// NewClient creates a forecast client resolving cities through geocoder
func NewClient(geocoder *geo.Client, opts Options) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
		geocoder:   geocoder,
		opts:       opts,
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

type forecastResponse struct {
	Current domain.Conditions `json:"current"`
	Units   domain.Units      `json:"current_units"`
}

// Fetch resolves city and returns its current weather. Every error it
// returns is a complete, human-readable message meant for the Error
// screen; callers display err.Error() verbatim.
func (c *Client) Fetch(ctx context.Context, city string) (*domain.Report, error) {
	locations, err := c.geocoder.Search(ctx, city, 1)
	if err != nil {
		return nil, categorize(err,
			"Connection timeout. Check your internet connection.",
			"Cannot connect to weather service. Check your internet connection.",
			"Failed to parse location data from weather service.")
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("'%s' not found. Try a different city name.", city)
	}
	location := locations[0]

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%g", location.Latitude))
	query.Set("longitude", fmt.Sprintf("%g", location.Longitude))
	query.Set("current", currentFields)
	query.Set("temperature_unit", c.opts.TemperatureUnit)
	query.Set("wind_speed_unit", c.opts.WindSpeedUnit)
	query.Set("precipitation_unit", c.opts.PrecipitationUnit)
	query.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("Network error: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, categorize(err,
			"Connection timeout while fetching weather data.",
			"Cannot connect to weather service.",
			"Failed to parse weather data from service.")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("Weather service returned status %d.", resp.StatusCode)
	}

	var data forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.New("Failed to parse weather data from service.")
	}

	return &domain.Report{
		Location:   location,
		Current:    data.Current,
		Units:      data.Units,
		Descriptor: Description(data.Current.WeatherCode),
	}, nil
}

// categorize maps a transport-level error onto one of the coarse
// user-facing messages: timeout, connection refused, or parse/other.
func categorize(err error, timeoutMsg, connectMsg, parseMsg string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return errors.New(timeoutMsg)
		}
		return errors.New(connectMsg)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New(timeoutMsg)
	}
	return errors.New(parseMsg)
}
