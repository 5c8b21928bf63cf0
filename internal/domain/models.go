package domain

import "fmt"

// Location is a geocoding candidate for a city query
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"` // region/state, not always present
}

// Label returns the canonical "Name, Country" form used when a
// suggestion is accepted into the search buffer
func (l Location) Label() string {
	return fmt.Sprintf("%s, %s", l.Name, l.Country)
}

// Display returns the long form shown in the suggestion list,
// including the region when the geocoder provided one
func (l Location) Display() string {
	if l.Admin1 != "" {
		return fmt.Sprintf("%s, %s (%s)", l.Name, l.Admin1, l.Country)
	}
	return fmt.Sprintf("%s (%s)", l.Name, l.Country)
}

// Conditions holds the current weather readings for a location
type Conditions struct {
	Temperature         float64 `json:"temperature_2m"`
	RelativeHumidity    int     `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	Precipitation       float64 `json:"precipitation"`
	WeatherCode         int     `json:"weather_code"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	PressureMSL         float64 `json:"pressure_msl"`
}

// Units holds the unit strings the forecast API echoed back
type Units struct {
	Temperature   string `json:"temperature_2m"`
	WindSpeed     string `json:"wind_speed_10m"`
	Precipitation string `json:"precipitation"`
	PressureMSL   string `json:"pressure_msl"`
}

// Report is a resolved weather lookup: where, and what it's doing there
type Report struct {
	Location   Location
	Current    Conditions
	Units      Units
	Descriptor string // human-readable weather-code description
}

// Summary renders a one-line form of the report, used for yanking
// to the clipboard
func (r Report) Summary() string {
	return fmt.Sprintf("%s: %s, %.1f%s (feels like %.1f%s), humidity %d%%, wind %.1f %s",
		r.Location.Display(), r.Descriptor,
		r.Current.Temperature, r.Units.Temperature,
		r.Current.ApparentTemperature, r.Units.Temperature,
		r.Current.RelativeHumidity,
		r.Current.WindSpeed, r.Units.WindSpeed)
}
