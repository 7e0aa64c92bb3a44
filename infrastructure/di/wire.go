//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/application/services"
	domain "github.com/Adams-404/Between/domain/services"
	"github.com/Adams-404/Between/infrastructure/config"
	"github.com/Adams-404/Between/infrastructure/messaging/local"
	"github.com/Adams-404/Between/interfaces/http/rest"
	"github.com/Adams-404/Between/interfaces/http/rest/handlers"

	"github.com/google/wire"
)

// InfrastructureSet provides logging, configuration, storage and events
var InfrastructureSet = wire.NewSet(
	ProvideLogger,
	ProvideClock,
	ProvideDynamicConfig,
	ProvideCollector,
	ProvideTracing,
	ProvideKeyValueStore,
	ProvideEventBus,
	wire.Bind(new(ports.EventBus), new(*local.Bus)),
	wire.Bind(new(ports.EventPublisher), new(*local.Bus)),
	ProvideIDGenerator,
	ProvideNotifier,
)

// ApplicationSet provides the domain and application services
var ApplicationSet = wire.NewSet(
	ProvideQuestionBank,
	ProvideAnalyzer,
	domain.NewQuestionSelector,
	services.NewNotificationService,
	ProvideSettingsService,
	services.NewAnswerStore,
	services.NewJournalService,
	services.NewQuestionService,
	services.NewInsightsService,
)

// HTTPSet provides the handlers and the router
var HTTPSet = wire.NewSet(
	handlers.NewValidator,
	handlers.NewQuestionHandler,
	handlers.NewAnswerHandler,
	handlers.NewInsightsHandler,
	handlers.NewSettingsHandler,
	handlers.NewJournalHandler,
	handlers.NewDataHandler,
	wire.Struct(new(rest.Handlers), "*"),
	ProvideHTTPHandler,
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	InfrastructureSet,
	ApplicationSet,
	HTTPSet,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container. The cleanup function
// releases resources in reverse order of creation.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil
}
