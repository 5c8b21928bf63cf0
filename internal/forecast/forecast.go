// Package forecast runs the submission fetch in the background and
// publishes its outcome onto the event bus. The UI enters its Loading
// phase when it calls Fetch and leaves it only when one of the two
// events arrives, so a single fetch is ever in flight.
package forecast

import (
	"context"

	"skycast/internal/eventbus"
	"skycast/internal/weather"
)

// Service dispatches weather fetches for submitted queries
type Service interface {
	Fetch(city string)
}

// service is the concrete implementation
type service struct {
	bus    eventbus.EventBus
	client *weather.Client
}

// NewService creates a forecast service publishing onto bus
func NewService(bus eventbus.EventBus, client *weather.Client) Service {
	return &service{bus: bus, client: client}
}

// Fetch resolves city in the background and publishes either a
// WeatherFetchedEvent or a WeatherFailedEvent carrying the
// collaborator's user-facing message verbatim.
func (s *service) Fetch(city string) {
	go func() {
		report, err := s.client.Fetch(context.Background(), city)
		if err != nil {
			s.bus.Publish(eventbus.WeatherFailedEvent{Query: city, Message: err.Error()})
			return
		}
		s.bus.Publish(eventbus.WeatherFetchedEvent{Query: city, Report: *report})
	}()
}
