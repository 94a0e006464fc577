package ui

import (
	"time"

	"draglist/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// saveResultMsg contains the result of writing the list order to disk
type saveResultMsg struct {
	err error
}
