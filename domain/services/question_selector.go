// Package services holds the pure domain logic of the journal: picking the
// question of the day and deriving statistics from the answer set.
package services

import (
	"time"
	"unicode/utf16"

	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/questions"
)

// QuestionSelector maps a calendar date to one question of the bank. The
// mapping depends only on the key string and the bank, so every install
// shows the same question on the same date without coordination.
type QuestionSelector struct {
	bank *questions.Bank
}

// NewQuestionSelector creates a selector over bank.
func NewQuestionSelector(bank *questions.Bank) *QuestionSelector {
	return &QuestionSelector{bank: bank}
}

// Bank returns the bank the selector indexes into.
func (s *QuestionSelector) Bank() *questions.Bank {
	return s.bank
}

// QuestionForDate returns the question for key.
func (s *QuestionSelector) QuestionForDate(key valueobjects.DateKey) entities.Question {
	return s.bank.At(BankIndex(DateHash(string(key)), s.bank.Len()))
}

// TodayQuestion returns the question for the calendar date of now.
func (s *QuestionSelector) TodayQuestion(now time.Time) entities.Question {
	return s.QuestionForDate(valueobjects.Today(now))
}

// DateHash is the rolling hash h = h*31 + c over the UTF-16 code units of s.
// The accumulator is an int32, so every step wraps with two's-complement
// overflow.
func DateHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// BankIndex reduces a hash to [0, n). The absolute value is taken in 64 bits,
// so math.MinInt32 maps to 2147483648 % n instead of wrapping back to a
// negative number.
func BankIndex(h int32, n int) int {
	if n <= 0 {
		return 0
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(n))
}
