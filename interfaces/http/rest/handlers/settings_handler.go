package handlers

import (
	"net/http"
	"strconv"

	"github.com/Adams-404/Between/application/services"

	"go.uber.org/zap"
)

// SettingsHandler reads and updates the preference record.
type SettingsHandler struct {
	settings  *services.SettingsService
	validator *Validator
	logger    *zap.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *services.SettingsService, validator *Validator, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings:  settings,
		validator: validator,
		logger:    logger,
	}
}

// Get handles GET /settings?systemDark=
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	systemDark := false
	if raw := r.URL.Query().Get("systemDark"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "systemDark must be true or false")
			return
		}
		systemDark = v
	}

	respondJSON(w, http.StatusOK, SettingsResponse{
		Settings:      h.settings.Current(),
		ResolvedTheme: h.settings.ResolvedTheme(systemDark),
	})
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Validate(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	updated, err := h.settings.Update(r.Context(), req.Apply(h.settings.Current()))
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to save settings")
		return
	}

	h.logger.Info("Settings updated",
		zap.String("theme", string(updated.Theme)),
		zap.Bool("notificationEnabled", updated.NotificationEnabled),
	)
	respondJSON(w, http.StatusOK, SettingsResponse{
		Settings:      updated,
		ResolvedTheme: h.settings.ResolvedTheme(false),
	})
}
