// Package lookup runs autocomplete geocoding queries in the background
// and publishes their results onto the event bus. Any number of
// lookups may be in flight at once; there is no cancellation, because
// the consumer discards results whose query no longer matches the live
// buffer.
package lookup

import (
	"context"
	"log"

	"skycast/internal/eventbus"
	"skycast/internal/geo"
)

// Service dispatches fire-and-forget autocomplete lookups
type Service interface {
	Lookup(query string)
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	geocoder *geo.Client
	limit    int
}

// NewService creates a lookup service publishing onto bus. limit caps
// how many candidates each lookup requests.
func NewService(bus eventbus.EventBus, geocoder *geo.Client, limit int) Service {
	return &service{bus: bus, geocoder: geocoder, limit: limit}
}

// Lookup starts a background geocoding query for the exact text given.
// The query string travels with the result so the consumer can detect
// staleness. Failures are logged and swallowed; autocomplete never
// surfaces an error to the user.
func (s *service) Lookup(query string) {
	go func() {
		locations, err := s.geocoder.Search(context.Background(), query, s.limit)
		if err != nil {
			log.Printf("autocomplete lookup %q failed: %v", query, err)
			return
		}
		s.bus.Publish(eventbus.SuggestionsFetchedEvent{
			Query:     query,
			Locations: locations,
		})
	}()
}
