package observability

import (
	"context"

	"github.com/Adams-404/Between/domain/events"
)

// EventMetricsHandler counts every domain event that passes through the
// local bus. Saved answers also feed the word-count histogram.
type EventMetricsHandler struct {
	collector *Collector
}

// NewEventMetricsHandler creates a handler recording into collector
func NewEventMetricsHandler(collector *Collector) *EventMetricsHandler {
	return &EventMetricsHandler{collector: collector}
}

// Handle records the event
func (h *EventMetricsHandler) Handle(ctx context.Context, event events.DomainEvent) error {
	h.collector.DomainEvents.WithLabelValues(event.GetEventType()).Inc()

	if saved, ok := event.(*events.AnswerSaved); ok {
		h.collector.AnswersWritten.Inc()
		h.collector.AnswerWords.Observe(float64(saved.WordCount))
	}
	return nil
}

// CanHandle accepts every event type
func (h *EventMetricsHandler) CanHandle(eventType string) bool {
	return true
}
