package observability

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Adams-404/Between/domain/events"
	"github.com/Adams-404/Between/infrastructure/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.Logging{Level: "debug", Format: "console"}, config.Development)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger(config.Logging{Level: "warn", Format: "json"}, config.Production)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(0))

	_, err = NewLogger(config.Logging{Level: "chatty", Format: "json"}, config.Production)
	assert.Error(t, err)
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("between")
	b := NewCollector("between")

	a.RecordHTTPRequest("GET", "/api/v1/answers", "200", 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.HTTPRequests.WithLabelValues("GET", "/api/v1/answers", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.HTTPRequests.WithLabelValues("GET", "/api/v1/answers", "200")))
}

func TestRecordStorageOperation(t *testing.T) {
	c := NewCollector("between")

	c.RecordStorageOperation("get", "memory", nil, time.Millisecond)
	c.RecordStorageOperation("get", "memory", errors.New("boom"), time.Millisecond)
	c.RecordStorageOperation("get", "memory", nil, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.StorageOperations.WithLabelValues("get", "memory", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StorageOperations.WithLabelValues("get", "memory", "error")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector("between")
	c.SetBreakerState("storage", 2)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `between_storage_breaker_state{name="storage"} 2`)
}

func TestEventMetricsHandler(t *testing.T) {
	c := NewCollector("between")
	h := NewEventMetricsHandler(c)
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	assert.True(t, h.CanHandle(events.TypeDataCleared))
	require.NoError(t, h.Handle(context.Background(), events.NewAnswerSaved("a1", 33, "2024-01-15", 12, false, at)))
	require.NoError(t, h.Handle(context.Background(), events.NewFavoriteToggled("a1", true, at)))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.DomainEvents.WithLabelValues(events.TypeAnswerSaved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DomainEvents.WithLabelValues(events.TypeFavoriteToggled)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.AnswersWritten))
}

func TestTracerProviderRecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newTracerProvider(
		TracingConfig{ServiceName: "between-test", Environment: "development"},
		resource.Default(),
		sdktrace.WithSyncer(exporter),
	)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "op", spans[0].Name)
	assert.NotNil(t, tp.Tracer())
}

func TestSamplerAndRates(t *testing.T) {
	assert.Equal(t, 0.01, getSampleRate("production"))
	assert.Equal(t, 0.1, getSampleRate("staging"))
	assert.Equal(t, 1.0, getSampleRate("development"))

	assert.Equal(t, sdktrace.AlwaysSample().Description(), createSampler(TracingConfig{Environment: "development"}).Description())
}
