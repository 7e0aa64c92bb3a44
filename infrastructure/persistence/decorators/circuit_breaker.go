// Package decorators wraps any KeyValueStore with resilience and
// instrumentation. Each decorator is itself a KeyValueStore, so they stack.
package decorators

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/infrastructure/config"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// StateObserver is told about every breaker transition.
type StateObserver func(name string, from, to gobreaker.State)

// CircuitBreakerStore stops calling a failing backend. While the breaker is
// open every call fails fast with an UNAVAILABLE error.
type CircuitBreakerStore struct {
	inner  ports.KeyValueStore
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

// NewCircuitBreakerStore wraps inner with a breaker named name
func NewCircuitBreakerStore(
	inner ports.KeyValueStore,
	name string,
	cfg config.CircuitBreaker,
	logger *zap.Logger,
	observers ...StateObserver,
) *CircuitBreakerStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Storage circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			for _, observe := range observers {
				observe(name, from, to)
			}
		},
		// A value that fails to decode says nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || appErrors.IsCorrupted(err)
		},
	})

	return &CircuitBreakerStore{
		inner:  inner,
		cb:     cb,
		logger: logger,
	}
}

type getResult struct {
	value string
	found bool
}

// Get retrieves the value stored under key
func (s *CircuitBreakerStore) Get(ctx context.Context, key string) (string, bool, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		value, found, err := s.inner.Get(ctx, key)
		return getResult{value: value, found: found}, err
	})
	if err != nil {
		return "", false, s.translate("get", err)
	}
	r := res.(getResult)
	return r.value, r.found, nil
}

// Set replaces the value stored under key
func (s *CircuitBreakerStore) Set(ctx context.Context, key, value string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.inner.Set(ctx, key, value)
	})
	return s.translate("set", err)
}

// MultiRemove deletes the listed keys
func (s *CircuitBreakerStore) MultiRemove(ctx context.Context, keys []string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.inner.MultiRemove(ctx, keys)
	})
	return s.translate("multiRemove", err)
}

// State reports the current breaker state
func (s *CircuitBreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func (s *CircuitBreakerStore) translate(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.logger.Debug("Storage call rejected by circuit breaker",
			zap.String("operation", operation),
			zap.String("state", s.cb.State().String()),
		)
		return appErrors.NewUnavailable(fmt.Sprintf("storage %s rejected: %s", operation, s.cb.Name()), err)
	}
	return err
}

// BreakerStateValue maps a state to the gauge value exported for it.
func BreakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

var _ ports.KeyValueStore = (*CircuitBreakerStore)(nil)
