package di

import (
	"net/http"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/application/services"
	"github.com/Adams-404/Between/infrastructure/config"
	"github.com/Adams-404/Between/infrastructure/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     ports.KeyValueStore
	EventBus  ports.EventBus
	Collector *observability.Collector
	Tracer    *observability.TracerProvider
	Answers   *services.AnswerStore
	Settings  *services.SettingsService
	Handler   http.Handler
}
