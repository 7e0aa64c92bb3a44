// Package mocks provides test doubles for the application ports.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockKeyValueStore is an in-memory KeyValueStore with injectable failures.
type MockKeyValueStore struct {
	mu           sync.RWMutex
	data         map[string]string
	calls        map[string]int
	shouldFailOn map[string]error
}

// NewMockKeyValueStore creates an empty store.
func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{
		data:         make(map[string]string),
		calls:        make(map[string]int),
		shouldFailOn: make(map[string]error),
	}
}

// SetError makes every call of method ("Get", "Set", "MultiRemove") fail.
func (m *MockKeyValueStore) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// ClearErrors removes all configured errors.
func (m *MockKeyValueStore) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn = make(map[string]error)
}

// Put seeds a raw value, bypassing configured errors.
func (m *MockKeyValueStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Raw returns the stored value as written.
func (m *MockKeyValueStore) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Calls returns how often method was invoked.
func (m *MockKeyValueStore) Calls(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[method]
}

func (m *MockKeyValueStore) record(method string) error {
	m.calls[method]++
	if err, exists := m.shouldFailOn[method]; exists {
		return err
	}
	return nil
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Get"); err != nil {
		return "", false, err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MockKeyValueStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Set"); err != nil {
		return err
	}
	m.data[key] = value
	return nil
}

func (m *MockKeyValueStore) MultiRemove(ctx context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("MultiRemove"); err != nil {
		return err
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// MockEventBus records published events through testify/mock.
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventBus) PublishBatch(ctx context.Context, evts []events.DomainEvent) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType string, handler ports.EventHandler) error {
	args := m.Called(eventType, handler)
	return args.Error(0)
}

func (m *MockEventBus) Unsubscribe(eventType string, handler ports.EventHandler) error {
	args := m.Called(eventType, handler)
	return args.Error(0)
}

// MockNotifier is a testify mock of ports.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) RequestPermissions(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotifier) ScheduleDaily(ctx context.Context, hour, minute int) error {
	args := m.Called(ctx, hour, minute)
	return args.Error(0)
}

func (m *MockNotifier) CancelAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotifier) ScheduledCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

// NewFixedClock creates a clock stopped at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// SequenceIDs hands out "id-1", "id-2", ...
type SequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (s *SequenceIDs) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n), nil
}

var (
	_ ports.KeyValueStore = (*MockKeyValueStore)(nil)
	_ ports.EventBus      = (*MockEventBus)(nil)
	_ ports.Notifier      = (*MockNotifier)(nil)
	_ ports.Clock         = (*FixedClock)(nil)
	_ ports.IDGenerator   = (*SequenceIDs)(nil)
)

// RuntimeConfig serves flags and limits that a test mutates in place.
type RuntimeConfig struct {
	Features ports.Features
	Limits   ports.Limits
}

// NewRuntimeConfig enables every feature with generous limits.
func NewRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Features: ports.Features{EventPublishing: true, InsightText: true},
		Limits: ports.Limits{
			MaxAnswerLength:       5000,
			MaxJournalEntryLength: 20000,
			MaxSearchResults:      500,
		},
	}
}

func (c *RuntimeConfig) GetFeatures() ports.Features { return c.Features }

func (c *RuntimeConfig) GetLimits() ports.Limits { return c.Limits }
