package handlers

import (
	"fmt"
	"net/http"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/application/services"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/questions"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AnswerHandler handles answer-related HTTP requests
type AnswerHandler struct {
	answers   *services.AnswerStore
	bank      *questions.Bank
	clock     ports.Clock
	validator *Validator
	logger    *zap.Logger
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(
	answers *services.AnswerStore,
	bank *questions.Bank,
	clock ports.Clock,
	validator *Validator,
	logger *zap.Logger,
) *AnswerHandler {
	return &AnswerHandler{
		answers:   answers,
		bank:      bank,
		clock:     clock,
		validator: validator,
		logger:    logger,
	}
}

// Submit handles POST /answers
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Validate(req); err != nil {
		respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	answer, err := h.answers.SubmitToday(r.Context(), req.AnswerText)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to save answer")
		return
	}

	h.logger.Info("Answer submitted",
		zap.String("answerID", answer.ID),
		zap.String("date", answer.Date.String()),
	)
	respondJSON(w, http.StatusCreated, newAnswerView(*answer, h.bank, h.clock.Now()))
}

// List handles GET /answers?filter=&q=
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := services.ParseHistoryFilter(r.URL.Query().Get("filter"))
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list answers")
		return
	}

	answers, err := h.answers.History(r.Context(), filter, r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list answers")
		return
	}
	respondJSON(w, http.StatusOK, newAnswerList(answers, h.bank, h.clock.Now()))
}

// ForDate handles GET /answers/{date}
func (h *AnswerHandler) ForDate(w http.ResponseWriter, r *http.Request) {
	date := valueobjects.DateKey(chi.URLParam(r, "date"))
	answer, err := h.answers.AnswerForDate(r.Context(), date)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to load answer")
		return
	}
	if answer == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("No answer for %s", date))
		return
	}
	respondJSON(w, http.StatusOK, newAnswerView(*answer, h.bank, h.clock.Now()))
}

// Delete handles DELETE /answers/{id}
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := h.answers.Delete(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete answer")
		return
	}
	if !removed {
		respondError(w, http.StatusNotFound, "Answer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite handles POST /answers/{id}/favorite
func (h *AnswerHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	answer, err := h.answers.ToggleFavorite(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to update answer")
		return
	}
	if answer == nil {
		respondError(w, http.StatusNotFound, "Answer not found")
		return
	}
	respondJSON(w, http.StatusOK, newAnswerView(*answer, h.bank, h.clock.Now()))
}

// Favorites handles GET /favorites
func (h *AnswerHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	answers, err := h.answers.Favorites(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list favorites")
		return
	}
	respondJSON(w, http.StatusOK, newAnswerList(answers, h.bank, h.clock.Now()))
}

// Export handles GET /export
func (h *AnswerHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.answers.Export(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to export answers")
		return
	}

	filename := fmt.Sprintf("between-export-%s.json", valueobjects.Today(h.clock.Now()))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write export", zap.Error(err))
	}
}
