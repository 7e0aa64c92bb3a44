package handlers

import (
	"net/http"

	"github.com/Adams-404/Between/application/services"
	"github.com/Adams-404/Between/domain/core/valueobjects"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QuestionHandler serves the question of the day.
type QuestionHandler struct {
	questions *services.QuestionService
	logger    *zap.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions *services.QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		logger:    logger,
	}
}

// Today handles GET /questions/today
func (h *QuestionHandler) Today(w http.ResponseWriter, r *http.Request) {
	date, q := h.questions.Today()
	respondJSON(w, http.StatusOK, newQuestionResponse(date, q, h.questions.Now()))
}

// ForDate handles GET /questions/{date}
func (h *QuestionHandler) ForDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	q, err := h.questions.ForDate(date)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to select question")
		return
	}
	respondJSON(w, http.StatusOK, newQuestionResponse(valueobjects.DateKey(date), q, h.questions.Now()))
}
