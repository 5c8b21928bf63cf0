package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSuggestionsFetched EventType = "SuggestionsFetched"
	EventWeatherFetched     EventType = "WeatherFetched"
	EventWeatherFailed      EventType = "WeatherFailed"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SuggestionsFetchedEvent is emitted when an autocomplete lookup
// completes. Query is the exact buffer content the lookup was
// dispatched for; consumers must compare it against the live buffer
// before applying the results.
type SuggestionsFetchedEvent struct {
	Query     string
	Locations []Location
}

func (e SuggestionsFetchedEvent) Type() EventType { return EventSuggestionsFetched }

// WeatherFetchedEvent is emitted when a submitted query resolved to a
// weather report
type WeatherFetchedEvent struct {
	Query  string
	Report Report
}

func (e WeatherFetchedEvent) Type() EventType { return EventWeatherFetched }

// WeatherFailedEvent is emitted when a submitted query could not be
// resolved; Message is user-facing
type WeatherFailedEvent struct {
	Query   string
	Message string
}

func (e WeatherFailedEvent) Type() EventType { return EventWeatherFailed }

// ErrorEvent is emitted when a background operation fails in a way
// that is not user-facing
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
