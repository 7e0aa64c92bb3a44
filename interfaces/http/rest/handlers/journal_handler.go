package handlers

import (
	"net/http"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/application/services"
	"github.com/Adams-404/Between/domain/core/valueobjects"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// JournalHandler handles free-form journal entries
type JournalHandler struct {
	journal   *services.JournalService
	clock     ports.Clock
	validator *Validator
	logger    *zap.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journal *services.JournalService, clock ports.Clock, validator *Validator, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		journal:   journal,
		clock:     clock,
		validator: validator,
		logger:    logger,
	}
}

// List handles GET /journal?date=
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	date := valueobjects.DateKey(r.URL.Query().Get("date"))
	if date == "" {
		date = valueobjects.Today(h.clock.Now())
	}

	entries, err := h.journal.EntriesForDate(r.Context(), date)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to load journal entries")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// Add handles POST /journal
func (h *JournalHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddJournalEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Validate(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.journal.Add(r.Context(), req.Text, req.Mood)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to save journal entry")
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// Delete handles DELETE /journal/{id}
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.journal.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete journal entry")
		return
	}
	if !removed {
		respondError(w, http.StatusNotFound, "Journal entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
