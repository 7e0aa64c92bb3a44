// Package eventbridge forwards domain events to an AWS EventBridge bus.
package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// maxEntries is the PutEvents limit per call.
const maxEntries = 10

// API is the subset of the EventBridge client the publisher calls.
type API interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher implements EventPublisher using AWS EventBridge
type Publisher struct {
	client       API
	eventBusName string
	source       string
	logger       *zap.Logger
	maxRetries   int
	backoff      time.Duration
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(
	client API,
	eventBusName string,
	logger *zap.Logger,
) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		source:       events.SourceBackend,
		logger:       logger,
		maxRetries:   3,
		backoff:      100 * time.Millisecond,
	}
}

// Publish sends a single event to EventBridge
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch sends events in chunks of ten
func (p *Publisher) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	for i := 0; i < len(domainEvents); i += maxEntries {
		end := i + maxEntries
		if end > len(domainEvents) {
			end = len(domainEvents)
		}
		if err := p.publishWithRetry(ctx, domainEvents[i:end]); err != nil {
			return err
		}
	}
	return nil
}

// publishBatch publishes at most ten events. Events that fail are returned
// so only they are retried.
func (p *Publisher) publishBatch(ctx context.Context, domainEvents []events.DomainEvent) ([]events.DomainEvent, error) {
	entries := make([]types.PutEventsRequestEntry, 0, len(domainEvents))
	sent := make([]events.DomainEvent, 0, len(domainEvents))

	for _, event := range domainEvents {
		eventData, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to marshal event",
				zap.Error(err),
				zap.String("eventType", event.GetEventType()),
			)
			continue
		}

		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.eventBusName),
			Source:       aws.String(p.source),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(eventData)),
			Time:         aws.Time(event.GetTimestamp()),
			Resources: []string{
				fmt.Sprintf("arn:aws:between::%s", event.GetAggregateID()),
			},
		})
		sent = append(sent, event)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	result, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: entries,
	})
	if err != nil {
		return sent, fmt.Errorf("failed to publish events to EventBridge: %w", err)
	}

	if result.FailedEntryCount > 0 {
		var failed []events.DomainEvent
		for i, entry := range result.Entries {
			if entry.ErrorCode != nil && i < len(sent) {
				p.logger.Warn("Failed to publish event",
					zap.String("eventType", sent[i].GetEventType()),
					zap.String("errorCode", *entry.ErrorCode),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
				failed = append(failed, sent[i])
			}
		}
		return failed, &partialFailure{count: int(result.FailedEntryCount)}
	}

	p.logger.Debug("Events published to EventBridge",
		zap.Int("count", len(entries)),
		zap.String("eventBus", p.eventBusName),
	)
	return nil, nil
}

// publishWithRetry publishes events with exponential backoff retry
func (p *Publisher) publishWithRetry(ctx context.Context, domainEvents []events.DomainEvent) error {
	backoff := p.backoff
	pending := domainEvents

	for attempt := 0; ; attempt++ {
		failed, err := p.publishBatch(ctx, pending)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) || attempt >= p.maxRetries-1 {
			return err
		}
		pending = failed

		p.logger.Warn("Retrying event publication",
			zap.Int("attempt", attempt+1),
			zap.Int("events", len(pending)),
			zap.Error(err),
			zap.Duration("backoff", backoff),
		)

		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type partialFailure struct {
	count int
}

func (e *partialFailure) Error() string {
	return fmt.Sprintf("%d events failed to publish", e.count)
}

// isRetryableError reports whether err is a transient failure: partially
// failed batches, throttling, or a server-side fault.
func isRetryableError(err error) bool {
	var pf *partialFailure
	if errors.As(err, &pf) {
		return true
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		switch ae.ErrorCode() {
		case "ThrottlingException", "InternalException", "InternalFailure", "ServiceUnavailable":
			return true
		}
		return ae.ErrorFault() == smithy.FaultServer
	}
	return false
}

var _ ports.EventPublisher = (*Publisher)(nil)
