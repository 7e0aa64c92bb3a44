package decorators

import (
	"context"

	"github.com/Adams-404/Between/application/ports"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Adams-404/Between/infrastructure/persistence"

// TracingStore opens a client span around every call to inner. It uses the
// global tracer provider, which is a no-op until tracing is initialised.
type TracingStore struct {
	inner   ports.KeyValueStore
	tracer  trace.Tracer
	backend string
}

// NewTracingStore wraps inner
func NewTracingStore(inner ports.KeyValueStore, backend string) *TracingStore {
	return &TracingStore{
		inner:   inner,
		tracer:  otel.Tracer(tracerName),
		backend: backend,
	}
}

func (s *TracingStore) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("db.system", s.backend),
		attribute.String("db.operation", operation),
	)
	return s.tracer.Start(ctx, "kv."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("error.type", string(appErrors.TypeOf(err))))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Get retrieves the value stored under key
func (s *TracingStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, span := s.start(ctx, "get", attribute.String("kv.key", key))
	value, found, err := s.inner.Get(ctx, key)
	span.SetAttributes(
		attribute.Bool("kv.found", found),
		attribute.Int("kv.value_bytes", len(value)),
	)
	finish(span, err)
	return value, found, err
}

// Set replaces the value stored under key
func (s *TracingStore) Set(ctx context.Context, key, value string) error {
	ctx, span := s.start(ctx, "set",
		attribute.String("kv.key", key),
		attribute.Int("kv.value_bytes", len(value)),
	)
	err := s.inner.Set(ctx, key, value)
	finish(span, err)
	return err
}

// MultiRemove deletes the listed keys
func (s *TracingStore) MultiRemove(ctx context.Context, keys []string) error {
	ctx, span := s.start(ctx, "multiRemove", attribute.StringSlice("kv.keys", keys))
	err := s.inner.MultiRemove(ctx, keys)
	finish(span, err)
	return err
}

var _ ports.KeyValueStore = (*TracingStore)(nil)
