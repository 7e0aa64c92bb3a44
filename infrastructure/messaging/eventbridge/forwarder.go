package eventbridge

import (
	"context"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/events"
)

// Forwarder subscribes to the local bus and republishes every event to
// EventBridge, so local handlers and external consumers see the same stream.
type Forwarder struct {
	publisher ports.EventPublisher
}

// NewForwarder creates a forwarder publishing through publisher
func NewForwarder(publisher ports.EventPublisher) *Forwarder {
	return &Forwarder{publisher: publisher}
}

// Handle forwards the event
func (f *Forwarder) Handle(ctx context.Context, event events.DomainEvent) error {
	return f.publisher.Publish(ctx, event)
}

// CanHandle accepts every event type
func (f *Forwarder) CanHandle(eventType string) bool {
	return true
}

var _ ports.EventHandler = (*Forwarder)(nil)
