package services

import (
	"fmt"
	"time"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	domain "github.com/Adams-404/Between/domain/services"
	appErrors "github.com/Adams-404/Between/pkg/errors"
)

// QuestionService answers "which question" for today or a given date.
type QuestionService struct {
	selector *domain.QuestionSelector
	clock    ports.Clock
}

// NewQuestionService creates a new question service
func NewQuestionService(selector *domain.QuestionSelector, clock ports.Clock) *QuestionService {
	return &QuestionService{selector: selector, clock: clock}
}

// Today returns today's date key and question.
func (q *QuestionService) Today() (valueobjects.DateKey, entities.Question) {
	now := q.clock.Now()
	return valueobjects.Today(now), q.selector.TodayQuestion(now)
}

// ForDate returns the question for a "YYYY-MM-DD" string.
func (q *QuestionService) ForDate(date string) (entities.Question, error) {
	key, err := valueobjects.ParseDateKey(date)
	if err != nil {
		return entities.Question{}, appErrors.NewValidation(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}
	return q.selector.QuestionForDate(key), nil
}

// Now is the service clock, exposed for date labels.
func (q *QuestionService) Now() time.Time {
	return q.clock.Now()
}
