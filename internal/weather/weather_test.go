package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/geo"
)

func geocoderReturning(t *testing.T, body string) (*geo.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	g := geo.NewClient()
	g.SetBaseURL(srv.URL)
	return g, srv.Close
}

func TestFetchSuccess(t *testing.T) {
	g, closeGeo := geocoderReturning(t, `{
		"results": [{"name": "Berlin", "latitude": 52.52, "longitude": 13.41, "country": "Germany"}]
	}`)
	defer closeGeo()

	var gotUnits string
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUnits = r.URL.Query().Get("temperature_unit")
		w.Write([]byte(`{
			"current": {
				"temperature_2m": 18.4,
				"relative_humidity_2m": 62,
				"apparent_temperature": 17.1,
				"precipitation": 0.2,
				"weather_code": 61,
				"wind_speed_10m": 12.5,
				"pressure_msl": 1013.2
			},
			"current_units": {
				"temperature_2m": "°C",
				"wind_speed_10m": "km/h",
				"pressure_msl": "hPa"
			}
		}`))
	}))
	defer forecast.Close()

	c := NewClient(g, DefaultOptions())
	c.SetBaseURL(forecast.URL)

	report, err := c.Fetch(context.Background(), "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "celsius", gotUnits)
	assert.Equal(t, "Berlin", report.Location.Name)
	assert.Equal(t, 18.4, report.Current.Temperature)
	assert.Equal(t, 62, report.Current.RelativeHumidity)
	assert.Equal(t, "Rain", report.Descriptor)
	assert.Equal(t, "°C", report.Units.Temperature)
}

func TestFetchCityNotFound(t *testing.T) {
	g, closeGeo := geocoderReturning(t, `{}`)
	defer closeGeo()

	c := NewClient(g, DefaultOptions())

	_, err := c.Fetch(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
	assert.Contains(t, err.Error(), "not found")
}

func TestFetchGeocoderUnreachable(t *testing.T) {
	g := geo.NewClient()
	g.SetBaseURL("http://127.0.0.1:1") // nothing listens here

	c := NewClient(g, DefaultOptions())

	_, err := c.Fetch(context.Background(), "Berlin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot connect to weather service")
}

func TestFetchForecastParseFailure(t *testing.T) {
	g, closeGeo := geocoderReturning(t, `{
		"results": [{"name": "Berlin", "latitude": 52.52, "longitude": 13.41, "country": "Germany"}]
	}`)
	defer closeGeo()

	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer forecast.Close()

	c := NewClient(g, DefaultOptions())
	c.SetBaseURL(forecast.URL)

	_, err := c.Fetch(context.Background(), "Berlin")
	require.Error(t, err)
	assert.Equal(t, "Failed to parse weather data from service.", err.Error())
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Clear sky", Description(0))
	assert.Equal(t, "Foggy", Description(48))
	assert.Equal(t, "Rain showers", Description(81))
	assert.Equal(t, "Thunderstorm with hail", Description(99))
	assert.Equal(t, "Unknown", Description(42))
}
