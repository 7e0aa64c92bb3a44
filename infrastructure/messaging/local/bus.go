// Package local dispatches domain events to in-process handlers.
package local

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/events"

	"go.uber.org/zap"
)

// AllEvents subscribes a handler to every event type.
const AllEvents = "*"

// Bus is a synchronous EventBus. Handlers run in subscription order on the
// publishing goroutine; a failing handler does not stop the others.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	logger   *zap.Logger
}

// NewBus creates a bus with no subscribers
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger,
	}
}

// Subscribe registers a handler for an event type, or AllEvents
func (b *Bus) Subscribe(eventType string, handler ports.EventHandler) error {
	if handler == nil {
		return fmt.Errorf("handler is required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// Unsubscribe removes a handler
func (b *Bus) Unsubscribe(eventType string, handler ports.EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.handlers[eventType]
	for i, h := range current {
		if h == handler {
			b.handlers[eventType] = append(current[:i:i], current[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("handler not subscribed to %s", eventType)
}

// Publish dispatches one event
func (b *Bus) Publish(ctx context.Context, event events.DomainEvent) error {
	return b.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch dispatches events in order
func (b *Bus) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	startTime := time.Now()
	failureCount := 0

	for _, event := range domainEvents {
		for _, handler := range b.handlersFor(event.GetEventType()) {
			if !handler.CanHandle(event.GetEventType()) {
				continue
			}
			if err := handler.Handle(ctx, event); err != nil {
				failureCount++
				b.logger.Warn("Event handler failed",
					zap.String("eventType", event.GetEventType()),
					zap.String("aggregateID", event.GetAggregateID()),
					zap.Error(err),
				)
			}
		}
	}

	b.logger.Debug("Events dispatched locally",
		zap.Int("total", len(domainEvents)),
		zap.Int("failed", failureCount),
		zap.Duration("duration", time.Since(startTime)),
	)

	if failureCount > 0 {
		return fmt.Errorf("%d event handlers failed", failureCount)
	}
	return nil
}

func (b *Bus) handlersFor(eventType string) []ports.EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	specific := b.handlers[eventType]
	wildcard := b.handlers[AllEvents]
	out := make([]ports.EventHandler, 0, len(specific)+len(wildcard))
	out = append(out, specific...)
	out = append(out, wildcard...)
	return out
}

var _ ports.EventBus = (*Bus)(nil)
