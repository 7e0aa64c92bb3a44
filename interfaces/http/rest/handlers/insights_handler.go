package handlers

import (
	"net/http"

	"github.com/Adams-404/Between/application/services"

	"go.uber.org/zap"
)

// InsightsHandler serves the derived statistics.
type InsightsHandler struct {
	insights *services.InsightsService
	logger   *zap.Logger
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insights *services.InsightsService, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{insights: insights, logger: logger}
}

// Analysis handles GET /analysis
func (h *InsightsHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.insights.Analysis(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to analyze answers")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Summary handles GET /insights/summary
func (h *InsightsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.insights.Summary(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to summarize answers")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
