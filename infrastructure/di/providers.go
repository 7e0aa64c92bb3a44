// Package di assembles the application from its configuration.
package di

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/application/services"
	"github.com/Adams-404/Between/domain/questions"
	domain "github.com/Adams-404/Between/domain/services"
	"github.com/Adams-404/Between/infrastructure/config"
	"github.com/Adams-404/Between/infrastructure/messaging/eventbridge"
	"github.com/Adams-404/Between/infrastructure/messaging/local"
	"github.com/Adams-404/Between/infrastructure/notifications"
	"github.com/Adams-404/Between/infrastructure/observability"
	"github.com/Adams-404/Between/infrastructure/persistence/decorators"
	ddbstore "github.com/Adams-404/Between/infrastructure/persistence/dynamodb"
	"github.com/Adams-404/Between/infrastructure/persistence/file"
	"github.com/Adams-404/Between/infrastructure/persistence/memory"
	supastore "github.com/Adams-404/Between/infrastructure/persistence/supabase"
	"github.com/Adams-404/Between/interfaces/http/rest"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// metricsNamespace prefixes every exported metric.
const metricsNamespace = "between"

// ProvideLogger builds the zap logger and flushes it on cleanup.
func ProvideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.Logging, cfg.Environment)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// ProvideClock reports wall time in the configured zone, so date keys follow
// the user's calendar rather than the host's.
func ProvideClock(cfg *config.Config) (ports.Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return ports.ClockFunc(func() time.Time { return time.Now().In(loc) }), nil
}

// ProvideDynamicConfig watches DynamicConfigPath when set and falls back to
// the built-in limits otherwise.
func ProvideDynamicConfig(cfg *config.Config, logger *zap.Logger) (ports.RuntimeConfig, func(), error) {
	if cfg.DynamicConfigPath == "" {
		return config.NewStaticSource(config.DefaultDynamicConfig()), func() {}, nil
	}

	watcher, err := config.NewConfigWatcher(cfg.DynamicConfigPath, logger)
	if err != nil {
		return nil, nil, err
	}
	watcher.Start()
	return watcher, watcher.Stop, nil
}

// ProvideCollector returns nil when metrics are disabled.
func ProvideCollector(cfg *config.Config) *observability.Collector {
	if !cfg.Observability.EnableMetrics {
		return nil
	}
	return observability.NewCollector(metricsNamespace)
}

// ProvideTracing installs the OTLP exporter. It returns nil when tracing is
// disabled; the global no-op provider then stays in place.
func ProvideTracing(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*observability.TracerProvider, func(), error) {
	if !cfg.Observability.EnableTracing {
		return nil, func() {}, nil
	}

	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName: cfg.Observability.ServiceName,
		Environment: string(cfg.Environment),
		Endpoint:    cfg.Observability.OTLPEndpoint,
		SampleRate:  cfg.Observability.SampleRate,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init tracing: %w", err)
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}
	return tp, cleanup, nil
}

// ProvideBackendStore opens the configured storage backend without any
// decoration.
func ProvideBackendStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return memory.NewKVStore(), nil
	case config.StorageFile:
		return file.NewKVStore(cfg.Storage.FilePath, logger)
	case config.StorageDynamoDB:
		client, err := ddbstore.NewClient(ctx, cfg.Storage.DynamoDB.Region, cfg.Storage.DynamoDB.Endpoint)
		if err != nil {
			return nil, err
		}
		return ddbstore.NewKVStore(client, cfg.Storage.DynamoDB.Table, logger), nil
	case config.StorageSupabase:
		client, err := supastore.NewClient(cfg.Storage.Supabase.URL, cfg.Storage.Supabase.Key)
		if err != nil {
			return nil, err
		}
		return supastore.NewKVStore(client, cfg.Storage.Supabase.Table, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// ProvideKeyValueStore stacks the decorators around the backend: the breaker
// sits outermost so an open circuit skips the metrics and spans of the
// inner layers.
func ProvideKeyValueStore(
	ctx context.Context,
	cfg *config.Config,
	collector *observability.Collector,
	logger *zap.Logger,
) (ports.KeyValueStore, error) {
	backend, err := ProvideBackendStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return decorate(backend, cfg, collector, logger), nil
}

func decorate(
	store ports.KeyValueStore,
	cfg *config.Config,
	collector *observability.Collector,
	logger *zap.Logger,
) ports.KeyValueStore {
	name := cfg.Storage.Backend
	if cfg.Observability.EnableTracing {
		store = decorators.NewTracingStore(store, name)
	}
	if collector != nil {
		store = decorators.NewMetricsStore(store, collector, name)
	}
	if cfg.CircuitBreaker.Enabled {
		var observers []decorators.StateObserver
		if collector != nil {
			observers = append(observers, func(breaker string, _, to gobreaker.State) {
				collector.SetBreakerState(breaker, decorators.BreakerStateValue(to))
			})
			collector.SetBreakerState("kv-"+name, decorators.BreakerStateValue(gobreaker.StateClosed))
		}
		store = decorators.NewCircuitBreakerStore(store, "kv-"+name, cfg.CircuitBreaker, logger, observers...)
	}
	return store
}

// ProvideEventBus returns the in-process bus. Metrics subscribe to every
// event; with the eventbridge provider enabled, a forwarder republishes
// every event to AWS as well.
func ProvideEventBus(
	ctx context.Context,
	cfg *config.Config,
	collector *observability.Collector,
	logger *zap.Logger,
) (*local.Bus, error) {
	bus := local.NewBus(logger)

	if collector != nil {
		if err := bus.Subscribe(local.AllEvents, observability.NewEventMetricsHandler(collector)); err != nil {
			return nil, err
		}
	}

	if cfg.Events.Enabled && cfg.Events.Provider == "eventbridge" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		publisher := eventbridge.NewPublisher(awseventbridge.NewFromConfig(awsCfg), cfg.Events.EventBusName, logger)
		if err := bus.Subscribe(local.AllEvents, eventbridge.NewForwarder(publisher)); err != nil {
			return nil, err
		}
		logger.Info("Forwarding domain events to EventBridge", zap.String("bus", cfg.Events.EventBusName))
	}
	return bus, nil
}

// ProvideQuestionBank returns the built-in question bank.
func ProvideQuestionBank() *questions.Bank {
	return questions.Default()
}

// ProvideAnalyzer creates the analyzer with a time-seeded template picker.
func ProvideAnalyzer(bank *questions.Bank) *domain.Analyzer {
	return domain.NewAnalyzer(bank, nil)
}

// ProvideIDGenerator returns the UUIDv7 generator.
func ProvideIDGenerator() ports.IDGenerator {
	return services.NewUUIDGenerator()
}

// ProvideNotifier returns the notifier for a headless host, which only logs.
func ProvideNotifier(logger *zap.Logger) ports.Notifier {
	return notifications.NewLogNotifier(logger)
}

// ProvideSettingsService loads the stored settings once. A read failure is
// logged and the defaults stay in effect; the stored value is left alone.
func ProvideSettingsService(
	ctx context.Context,
	kv ports.KeyValueStore,
	notifier *services.NotificationService,
	logger *zap.Logger,
) *services.SettingsService {
	settings := services.NewSettingsService(kv, notifier, logger)
	if _, err := settings.Load(ctx); err != nil {
		logger.Warn("Using default settings", zap.Error(err))
	}
	return settings
}

// ProvideHTTPHandler builds the router with every middleware installed.
func ProvideHTTPHandler(
	h *rest.Handlers,
	cfg *config.Config,
	collector *observability.Collector,
	logger *zap.Logger,
) http.Handler {
	return rest.NewRouter(h, cfg, collector, logger).Setup()
}
