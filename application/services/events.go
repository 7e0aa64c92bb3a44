package services

import (
	"context"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/events"

	"go.uber.org/zap"
)

// eventEmitter publishes after a write has been persisted. A failed publish
// is logged; the write it reports on has already succeeded.
type eventEmitter struct {
	bus      ports.EventPublisher
	features ports.RuntimeConfig
	logger   *zap.Logger
}

func (e eventEmitter) emit(ctx context.Context, event events.DomainEvent) {
	if e.bus == nil || !e.features.GetFeatures().EventPublishing {
		return
	}
	if err := e.bus.Publish(ctx, event); err != nil {
		e.logger.Warn("Failed to publish event",
			zap.String("eventType", event.GetEventType()),
			zap.String("aggregateID", event.GetAggregateID()),
			zap.Error(err),
		)
	}
}
