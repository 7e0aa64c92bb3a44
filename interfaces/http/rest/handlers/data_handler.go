package handlers

import (
	"net/http"

	"github.com/Adams-404/Between/application/services"

	"go.uber.org/zap"
)

// DataHandler wipes the stored data.
type DataHandler struct {
	answers  *services.AnswerStore
	settings *services.SettingsService
	logger   *zap.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(answers *services.AnswerStore, settings *services.SettingsService, logger *zap.Logger) *DataHandler {
	return &DataHandler{answers: answers, settings: settings, logger: logger}
}

// ClearAll handles DELETE /data
func (h *DataHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.answers.ClearAll(r.Context()); err != nil {
		respondServiceError(w, h.logger, err, "Failed to clear data")
		return
	}
	h.settings.Reset()
	w.WriteHeader(http.StatusNoContent)
}
