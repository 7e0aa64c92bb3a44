package decorators

import (
	"context"
	"time"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/infrastructure/observability"
)

// MetricsStore records the count and latency of every call to inner.
type MetricsStore struct {
	inner     ports.KeyValueStore
	collector *observability.Collector
	backend   string
}

// NewMetricsStore wraps inner, labelling its metrics with backend
func NewMetricsStore(inner ports.KeyValueStore, collector *observability.Collector, backend string) *MetricsStore {
	return &MetricsStore{
		inner:     inner,
		collector: collector,
		backend:   backend,
	}
}

// Get retrieves the value stored under key
func (s *MetricsStore) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, found, err := s.inner.Get(ctx, key)
	s.collector.RecordStorageOperation("get", s.backend, err, time.Since(start))
	return value, found, err
}

// Set replaces the value stored under key
func (s *MetricsStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.inner.Set(ctx, key, value)
	s.collector.RecordStorageOperation("set", s.backend, err, time.Since(start))
	return err
}

// MultiRemove deletes the listed keys
func (s *MetricsStore) MultiRemove(ctx context.Context, keys []string) error {
	start := time.Now()
	err := s.inner.MultiRemove(ctx, keys)
	s.collector.RecordStorageOperation("multiRemove", s.backend, err, time.Since(start))
	return err
}

var _ ports.KeyValueStore = (*MetricsStore)(nil)
