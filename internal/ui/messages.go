package ui

import "skycast/internal/eventbus"

// EventMsg wraps a domain event for delivery into the Bubble Tea loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg drives the loading spinner redraw
type tickMsg struct{}
