package services

import (
	"math"
	"testing"
	"time"

	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/questions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateHashMatchesReferenceValues(t *testing.T) {
	cases := map[string]int32{
		"":           0,
		"2024-01-01": -613341632,
		"2024-01-02": -613341631,
		"2024-02-29": -613311771,
		"2023-12-31": -1499891908,
	}
	for key, want := range cases {
		assert.Equal(t, want, DateHash(key), key)
	}
}

func TestBankIndexMinInt32(t *testing.T) {
	// |MinInt32| is taken in 64 bits: 2147483648.
	assert.Equal(t, int(int64(2147483648)%60), BankIndex(math.MinInt32, 60))
	assert.Equal(t, 8, BankIndex(math.MinInt32, 10))
	assert.Equal(t, 0, BankIndex(math.MinInt32, 2))
	assert.GreaterOrEqual(t, BankIndex(math.MinInt32, 7), 0)
}

func TestBankIndexBounds(t *testing.T) {
	for _, h := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32, -613341632} {
		idx := BankIndex(h, 60)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 60)
	}
	assert.Equal(t, 0, BankIndex(123, 0))
}

func TestQuestionForDateIsDeterministic(t *testing.T) {
	selector := NewQuestionSelector(questions.Default())

	first := selector.QuestionForDate("2024-01-01")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, selector.QuestionForDate("2024-01-01"))
	}

	// A second selector over the same bank agrees.
	other := NewQuestionSelector(questions.Default())
	assert.Equal(t, first, other.QuestionForDate("2024-01-01"))
	assert.Equal(t, questions.Default().At(32), first)
}

func TestTodayQuestionUsesCalendarDate(t *testing.T) {
	selector := NewQuestionSelector(questions.Default())
	morning := time.Date(2024, time.February, 29, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, selector.QuestionForDate("2024-02-29"), selector.TodayQuestion(morning))
	assert.Equal(t, selector.TodayQuestion(morning), selector.TodayQuestion(evening))
}

func TestEveryQuestionIsReachable(t *testing.T) {
	bank := questions.Default()
	selector := NewQuestionSelector(bank)

	seen := make(map[int]bool, bank.Len())
	start := valueobjects.DateKey("2024-01-01")
	for i := 0; i < 10000; i++ {
		seen[selector.QuestionForDate(start.AddDays(i)).ID] = true
	}
	assert.Len(t, seen, bank.Len())
}

func TestSelectorOverSmallBank(t *testing.T) {
	bank, err := questions.NewBank([]entities.Question{
		{ID: 10, Text: "a", Category: "growth"},
		{ID: 20, Text: "b", Category: "hope"},
		{ID: 30, Text: "c", Category: "joy"},
	})
	require.NoError(t, err)

	selector := NewQuestionSelector(bank)
	// |-613341632| % 3 == 2
	assert.Equal(t, 30, selector.QuestionForDate("2024-01-01").ID)
}
