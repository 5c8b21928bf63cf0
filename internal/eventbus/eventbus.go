package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"skycast/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSuggestionsFetched = domain.EventSuggestionsFetched
	EventWeatherFetched     = domain.EventWeatherFetched
	EventWeatherFailed      = domain.EventWeatherFailed
	EventError              = domain.EventError
)

// Re-export domain event types
type SuggestionsFetchedEvent = domain.SuggestionsFetchedEvent
type WeatherFetchedEvent = domain.WeatherFetchedEvent
type WeatherFailedEvent = domain.WeatherFailedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// subscription pairs a handler with a bus-unique id so unsubscribing
// removes exactly the handler it was issued for
type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    int
	handlers  map[EventType][]subscription
	eventChan chan DomainEvent
}

// New creates a new event bus and starts its dispatcher
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 100),
	}
	go b.dispatch()
	return b
}

// Publish publishes an event to all subscribers. Never blocks the
// publisher: if the channel is full the event is dropped. A dropped
// suggestion event is harmless since each one is re-validated against
// the live query on arrival anyway.
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		log.Printf("event bus channel full, dropping %s", event.Type())
	}
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// dispatch distributes events to subscribers in order of arrival
func (b *bus) dispatch() {
	for event := range b.eventChan {
		b.mu.RLock()
		subs := make([]subscription, len(b.handlers[event.Type()]))
		copy(subs, b.handlers[event.Type()])
		b.mu.RUnlock()

		for _, sub := range subs {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("event handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
					}
				}()
				sub.handler(event)
			}()
		}
	}
}
