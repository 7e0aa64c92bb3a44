package entities

import (
	"strings"

	"github.com/Adams-404/Between/domain/core/valueobjects"
)

// Answer is the user's reply to the question of one calendar day. At most
// one Answer exists per Date; the store enforces it on save.
type Answer struct {
	ID         string               `json:"id"`
	QuestionID int                  `json:"questionId"`
	Date       valueobjects.DateKey `json:"date"`
	AnswerText string               `json:"answerText"`
	CreatedAt  int64                `json:"createdAt"` // epoch milliseconds
	IsFavorite bool                 `json:"isFavorite"`
}

// WordCount counts the non-empty whitespace-separated tokens of the answer.
func (a Answer) WordCount() int {
	return CountWords(a.AnswerText)
}

// CountWords splits on runs of whitespace; blank text has zero words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
