// Package questions holds the static, ordered question bank.
package questions

import (
	"fmt"

	"github.com/Adams-404/Between/domain/core/entities"
)

// Bank is an immutable, ordered set of questions. Order matters: the daily
// selector indexes into it, so reordering changes every date's question.
type Bank struct {
	questions []entities.Question
	byID      map[int]entities.Question
}

// NewBank builds a bank, rejecting empty input and duplicate ids.
func NewBank(qs []entities.Question) (*Bank, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	b := &Bank{
		questions: make([]entities.Question, len(qs)),
		byID:      make(map[int]entities.Question, len(qs)),
	}
	copy(b.questions, qs)
	for _, q := range qs {
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		b.byID[q.ID] = q
	}
	return b, nil
}

// MustNewBank is NewBank for package-level fixtures.
func MustNewBank(qs []entities.Question) *Bank {
	b, err := NewBank(qs)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// At returns the question at index i.
func (b *Bank) At(i int) entities.Question { return b.questions[i] }

// ByID resolves a question id.
func (b *Bank) ByID(id int) (entities.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// All returns a copy of the ordered questions.
func (b *Bank) All() []entities.Question {
	out := make([]entities.Question, len(b.questions))
	copy(out, b.questions)
	return out
}

var defaultBank = MustNewBank(defaultQuestions)

// Default returns the bank shipped with the app.
func Default() *Bank { return defaultBank }

var defaultQuestions = []entities.Question{
	{ID: 1, Text: "What is one thing you learned about yourself this week?", Category: "growth"},
	{ID: 2, Text: "What small moment today are you grateful for?", Category: "gratitude"},
	{ID: 3, Text: "What would you do if you knew you could not fail?", Category: "courage"},
	{ID: 4, Text: "What memory from this past year do you keep returning to?", Category: "reflection"},
	{ID: 5, Text: "What are you looking forward to right now?", Category: "hope"},
	{ID: 6, Text: "What is weighing on your mind today?", Category: "anxiety"},
	{ID: 7, Text: "Who made your life a little easier recently?", Category: "gratitude"},
	{ID: 8, Text: "Which habit would you most like to change, and why?", Category: "growth"},
	{ID: 9, Text: "When did you last feel truly at peace?", Category: "reflection"},
	{ID: 10, Text: "What is a conversation you have been avoiding?", Category: "courage"},
	{ID: 11, Text: "Who do you wish you spent more time with?", Category: "relationships"},
	{ID: 12, Text: "What does a meaningful day look like to you?", Category: "purpose"},
	{ID: 13, Text: "What made you laugh recently?", Category: "joy"},
	{ID: 14, Text: "If you could master one skill overnight, what would it be?", Category: "dreams"},
	{ID: 15, Text: "What fear has been quietly shaping your choices?", Category: "anxiety"},
	{ID: 16, Text: "What is something you are proud of but rarely mention?", Category: "growth"},
	{ID: 17, Text: "What comfort do you take for granted?", Category: "gratitude"},
	{ID: 18, Text: "What would you tell yourself from five years ago?", Category: "reflection"},
	{ID: 19, Text: "What gives you hope when things feel heavy?", Category: "hope"},
	{ID: 20, Text: "What risk are you glad you took?", Category: "courage"},
	{ID: 21, Text: "How do you show care to the people closest to you?", Category: "relationships"},
	{ID: 22, Text: "What work would you do even if no one paid you?", Category: "purpose"},
	{ID: 23, Text: "What simple pleasure did you enjoy today?", Category: "joy"},
	{ID: 24, Text: "Where do you imagine yourself living in ten years?", Category: "dreams"},
	{ID: 25, Text: "What helps you calm down when you feel overwhelmed?", Category: "anxiety"},
	{ID: 26, Text: "What mistake taught you the most?", Category: "growth"},
	{ID: 27, Text: "Which place makes you feel most at home?", Category: "gratitude"},
	{ID: 28, Text: "What belief have you changed your mind about?", Category: "reflection"},
	{ID: 29, Text: "What is one thing you want to be true a year from now?", Category: "hope"},
	{ID: 30, Text: "When did you last stand up for yourself?", Category: "courage"},
	{ID: 31, Text: "Who understands you without needing an explanation?", Category: "relationships"},
	{ID: 32, Text: "What do you want to be remembered for?", Category: "purpose"},
	{ID: 33, Text: "What song instantly lifts your mood?", Category: "joy"},
	{ID: 34, Text: "What adventure is still on your list?", Category: "dreams"},
	{ID: 35, Text: "What are you worrying about that is outside your control?", Category: "anxiety"},
	{ID: 36, Text: "What boundary do you need to set?", Category: "growth"},
	{ID: 37, Text: "What lesson are you thankful to have learned the hard way?", Category: "gratitude"},
	{ID: 38, Text: "What did today teach you?", Category: "reflection"},
	{ID: 39, Text: "What small sign of progress have you noticed lately?", Category: "hope"},
	{ID: 40, Text: "What would you attempt if no one was watching?", Category: "courage"},
	{ID: 41, Text: "Which relationship has changed you the most?", Category: "relationships"},
	{ID: 42, Text: "What values guide your hardest decisions?", Category: "purpose"},
	{ID: 43, Text: "What are you curious about right now?", Category: "joy"},
	{ID: 44, Text: "What dream have you quietly let go of?", Category: "dreams"},
	{ID: 45, Text: "What does your body need from you today?", Category: "anxiety"},
	{ID: 46, Text: "What are you ready to let go of?", Category: "growth"},
	{ID: 47, Text: "Who taught you something you still use every day?", Category: "gratitude"},
	{ID: 48, Text: "What moment would you like to relive?", Category: "reflection"},
	{ID: 49, Text: "What are you hopeful about for someone you love?", Category: "hope"},
	{ID: 50, Text: "What is the bravest thing you have done this year?", Category: "courage"},
	{ID: 51, Text: "How can you be a better friend this week?", Category: "relationships"},
	{ID: 52, Text: "When do you feel most like yourself?", Category: "purpose"},
	{ID: 53, Text: "What made today different from yesterday?", Category: "reflection"},
	{ID: 54, Text: "What would make tomorrow a good day?", Category: "hope"},
	{ID: 55, Text: "Which of your strengths do you underestimate?", Category: "growth"},
	{ID: 56, Text: "What beauty did you notice today?", Category: "gratitude"},
	{ID: 57, Text: "What is a question you wish someone would ask you?", Category: "reflection"},
	{ID: 58, Text: "What would your ideal weekend look like?", Category: "dreams"},
	{ID: 59, Text: "What are you avoiding because it feels too big?", Category: "courage"},
	{ID: 60, Text: "What kindness did you receive recently?", Category: "gratitude"},
}
