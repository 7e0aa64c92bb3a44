// Package ports declares the collaborators the application services depend
// on. Infrastructure packages provide the implementations.
package ports

import (
	"context"
	"time"

	"github.com/Adams-404/Between/domain/events"
)

// KeyValueStore is the local string store the journal persists into. A
// missing key is reported with found == false, never as an error.
type KeyValueStore interface {
	// Get returns the value stored under key
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set replaces the value stored under key
	Set(ctx context.Context, key, value string) error

	// MultiRemove deletes every listed key; absent keys are ignored
	MultiRemove(ctx context.Context, keys []string) error
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// EventBus defines the interface for publishing and observing domain events
type EventBus interface {
	EventPublisher

	// Subscribe registers a handler for an event type
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventHandler defines the interface for handling domain events
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event events.DomainEvent) error

	// CanHandle checks if this handler can process the event
	CanHandle(eventType string) bool
}

// Notifier schedules the single daily reminder on the user's device.
type Notifier interface {
	RequestPermissions(ctx context.Context) (bool, error)
	ScheduleDaily(ctx context.Context, hour, minute int) error
	CancelAll(ctx context.Context) error
	ScheduledCount(ctx context.Context) (int, error)
}

// Clock supplies the current instant. Calendar dates are taken in the
// location of the returned time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// IDGenerator creates record ids that sort in creation order.
type IDGenerator interface {
	NewID() (string, error)
}

// Features holds runtime feature flags
type Features struct {
	// EventPublishing sends domain events after successful writes
	EventPublishing bool `json:"eventPublishing"`
	// InsightText generates the templated insight sentence; when off the
	// analysis carries only counts and themes
	InsightText bool `json:"insightText"`
}

// Limits holds application limits
type Limits struct {
	MaxAnswerLength       int `json:"maxAnswerLength"`       // characters
	MaxJournalEntryLength int `json:"maxJournalEntryLength"` // characters
	MaxSearchResults      int `json:"maxSearchResults"`
}

// RuntimeConfig is read by services on every call so a reload takes effect
// without restarting.
type RuntimeConfig interface {
	GetFeatures() Features
	GetLimits() Limits
}
