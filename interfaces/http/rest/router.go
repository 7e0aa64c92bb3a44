// Package rest exposes the journal over HTTP.
package rest

import (
	"net/http"

	"github.com/Adams-404/Between/docs"
	"github.com/Adams-404/Between/infrastructure/config"
	"github.com/Adams-404/Between/infrastructure/observability"
	"github.com/Adams-404/Between/interfaces/http/rest/handlers"
	"github.com/Adams-404/Between/interfaces/http/rest/middleware"
	"github.com/Adams-404/Between/pkg/api"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Handlers groups the endpoint handlers the router mounts.
type Handlers struct {
	Questions *handlers.QuestionHandler
	Answers   *handlers.AnswerHandler
	Insights  *handlers.InsightsHandler
	Settings  *handlers.SettingsHandler
	Journal   *handlers.JournalHandler
	Data      *handlers.DataHandler
}

// Router creates and configures the HTTP router
type Router struct {
	handlers  *Handlers
	cfg       *config.Config
	collector *observability.Collector
	logger    *zap.Logger
}

// NewRouter creates a new router instance. collector may be nil, which
// disables the metrics middleware and endpoint.
func NewRouter(
	h *Handlers,
	cfg *config.Config,
	collector *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		handlers:  h,
		cfg:       cfg,
		collector: collector,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.Observability.EnableTracing {
		router.Use(middleware.Tracing(rt.cfg.Observability.ServiceName))
	}
	if rt.collector != nil {
		router.Use(middleware.Metrics(rt.collector))
	}

	if rt.cfg.Server.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.cfg.Server.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/swagger", api.SwaggerHandler(func() string { return docs.SwaggerInfo.ReadDoc() }))
	if rt.collector != nil {
		router.Handle("/metrics", rt.collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/questions", func(r chi.Router) {
			r.Get("/today", rt.handlers.Questions.Today)
			r.Get("/{date}", rt.handlers.Questions.ForDate)
		})

		r.Route("/answers", func(r chi.Router) {
			r.Get("/", rt.handlers.Answers.List)
			r.Post("/", rt.handlers.Answers.Submit)
			r.Get("/{date}", rt.handlers.Answers.ForDate)
			r.Delete("/{id}", rt.handlers.Answers.Delete)
			r.Post("/{id}/favorite", rt.handlers.Answers.ToggleFavorite)
		})
		r.Get("/favorites", rt.handlers.Answers.Favorites)
		r.Get("/export", rt.handlers.Answers.Export)

		r.Get("/analysis", rt.handlers.Insights.Analysis)
		r.Get("/insights/summary", rt.handlers.Insights.Summary)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", rt.handlers.Settings.Get)
			r.Put("/", rt.handlers.Settings.Update)
		})

		r.Route("/journal", func(r chi.Router) {
			r.Get("/", rt.handlers.Journal.List)
			r.Post("/", rt.handlers.Journal.Add)
			r.Delete("/{id}", rt.handlers.Journal.Delete)
		})

		r.Delete("/data", rt.handlers.Data.ClearAll)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	api.Success(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": string(rt.cfg.Environment),
		"storage":     rt.cfg.Storage.Backend,
	})
}
