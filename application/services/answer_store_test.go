package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Adams-404/Between/application/ports/mocks"
	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/events"
	"github.com/Adams-404/Between/domain/questions"
	domain "github.com/Adams-404/Between/domain/services"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	kv      *mocks.MockKeyValueStore
	bus     *mocks.MockEventBus
	clock   *mocks.FixedClock
	dynamic *mocks.RuntimeConfig
	store   *AnswerStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		kv:      mocks.NewMockKeyValueStore(),
		bus:     new(mocks.MockEventBus),
		clock:   mocks.NewFixedClock(time.Date(2024, time.January, 10, 15, 0, 0, 0, time.UTC)),
		dynamic: mocks.NewRuntimeConfig(),
	}
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.store = NewAnswerStore(
		f.kv,
		domain.NewQuestionSelector(questions.Default()),
		f.bus,
		f.dynamic,
		&mocks.SequenceIDs{},
		f.clock,
		zap.NewNop(),
	)
	return f
}

func answerOn(id string, date valueobjects.DateKey, text string) entities.Answer {
	return entities.Answer{ID: id, QuestionID: 1, Date: date, AnswerText: text, CreatedAt: 1}
}

func TestSaveKeepsOneAnswerPerDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := answerOn("a1", "2024-01-05", "first")
	second := answerOn("a2", "2024-01-05", "second")
	other := answerOn("a3", "2024-01-04", "other")

	require.NoError(t, f.store.Save(ctx, first))
	require.NoError(t, f.store.Save(ctx, other))
	require.NoError(t, f.store.Save(ctx, second))

	all, err := f.store.AllAnswers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second, all[0])
	assert.Equal(t, other, all[1])
}

func TestSavePublishesReplacedFlag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Save(ctx, answerOn("a1", "2024-01-05", "first")))
	require.NoError(t, f.store.Save(ctx, answerOn("a2", "2024-01-05", "second")))

	var saved []*events.AnswerSaved
	for _, call := range f.bus.Calls {
		if evt, ok := call.Arguments.Get(1).(*events.AnswerSaved); ok {
			saved = append(saved, evt)
		}
	}
	require.Len(t, saved, 2)
	assert.False(t, saved[0].Replaced)
	assert.True(t, saved[1].Replaced)
	assert.Equal(t, "a2", saved[1].AnswerID)
}

func TestEventsSkippedWhenFeatureOff(t *testing.T) {
	f := newFixture(t)
	f.dynamic.Features.EventPublishing = false

	require.NoError(t, f.store.Save(context.Background(), answerOn("a1", "2024-01-05", "x")))
	f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPublishFailureDoesNotFailSave(t *testing.T) {
	f := newFixture(t)
	f.bus = new(mocks.MockEventBus)
	f.bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))
	f.store.events.bus = f.bus

	require.NoError(t, f.store.Save(context.Background(), answerOn("a1", "2024-01-05", "x")))
	f.bus.AssertNumberOfCalls(t, "Publish", 1)
}

func TestSaveValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.dynamic.Limits.MaxAnswerLength = 5

	cases := map[string]entities.Answer{
		"missing id": {Date: "2024-01-05", AnswerText: "x"},
		"bad date":   {ID: "a", Date: "05/01/2024", AnswerText: "x"},
		"blank text": {ID: "a", Date: "2024-01-05", AnswerText: "  \n "},
		"too long":   {ID: "a", Date: "2024-01-05", AnswerText: "abcdef"},
	}
	for name, answer := range cases {
		err := f.store.Save(ctx, answer)
		assert.True(t, appErrors.IsValidation(err), name)
	}
	assert.Zero(t, f.kv.Calls("Set"))
}

func TestToggleFavorite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, answerOn("a1", "2024-01-05", "x")))

	updated, err := f.store.ToggleFavorite(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsFavorite)

	favorites, err := f.store.Favorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	updated, err = f.store.ToggleFavorite(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, updated.IsFavorite)

	t.Run("unknown id is not an error", func(t *testing.T) {
		sets := f.kv.Calls("Set")
		missing, err := f.store.ToggleFavorite(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, missing)
		assert.Equal(t, sets, f.kv.Calls("Set"), "nothing written")
	})
}

func TestAllAnswersSortedByDateDescending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i, d := range []valueobjects.DateKey{"2023-12-31", "2024-01-02", "2024-01-01"} {
		require.NoError(t, f.store.Save(ctx, answerOn(fmt.Sprint(i), d, "x")))
	}

	all, err := f.store.AllAnswers(ctx)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.DateKey("2024-01-02"), all[0].Date)
	assert.Equal(t, valueobjects.DateKey("2024-01-01"), all[1].Date)
	assert.Equal(t, valueobjects.DateKey("2023-12-31"), all[2].Date)
}

func TestEmptyStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.store.AllAnswers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	answer, err := f.store.AnswerForDate(ctx, "2024-01-05")
	assert.NoError(t, err)
	assert.Nil(t, answer)

	_, err = f.store.AnswerForDate(ctx, "tomorrow")
	assert.True(t, appErrors.IsValidation(err))
}

func TestPersistenceFaultsPropagate(t *testing.T) {
	ctx := context.Background()

	t.Run("read failure", func(t *testing.T) {
		f := newFixture(t)
		f.kv.SetError("Get", errors.New("disk gone"))

		_, err := f.store.AllAnswers(ctx)
		assert.True(t, appErrors.IsPersistence(err))
		assert.Equal(t, 1, f.kv.Calls("Get"), "no retry")
	})

	t.Run("write failure", func(t *testing.T) {
		f := newFixture(t)
		f.kv.SetError("Set", errors.New("quota exceeded"))

		err := f.store.Save(ctx, answerOn("a1", "2024-01-05", "x"))
		assert.True(t, appErrors.IsPersistence(err))
		assert.Equal(t, 1, f.kv.Calls("Set"))
		f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("unavailable keeps its type", func(t *testing.T) {
		f := newFixture(t)
		f.kv.SetError("Get", appErrors.NewUnavailable("storage circuit open", nil))

		_, err := f.store.AllAnswers(ctx)
		assert.True(t, appErrors.IsUnavailable(err))
	})
}

func TestCorruptedAnswersAreNotDiscarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.kv.Put(AnswersKey, `[{"id":"a1","date":"2024-01-05"`)

	_, err := f.store.AllAnswers(ctx)
	assert.True(t, appErrors.IsCorrupted(err))

	err = f.store.Save(ctx, answerOn("a2", "2024-01-06", "x"))
	assert.True(t, appErrors.IsCorrupted(err))

	raw, _ := f.kv.Raw(AnswersKey)
	assert.Equal(t, `[{"id":"a1","date":"2024-01-05"`, raw, "stored value untouched")
}

func TestSubmitToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	answer, err := f.store.SubmitToday(ctx, "  grateful for coffee  ")
	require.NoError(t, err)

	today := valueobjects.DateKey("2024-01-10")
	want := domain.NewQuestionSelector(questions.Default()).QuestionForDate(today)
	assert.Equal(t, "id-1", answer.ID)
	assert.Equal(t, today, answer.Date)
	assert.Equal(t, want.ID, answer.QuestionID)
	assert.Equal(t, "grateful for coffee", answer.AnswerText)
	assert.Equal(t, f.clock.Now().UnixMilli(), answer.CreatedAt)
	assert.False(t, answer.IsFavorite)

	stored, err := f.store.AnswerForDate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, answer, stored)

	_, err = f.store.SubmitToday(ctx, "   ")
	assert.True(t, appErrors.IsValidation(err))
}

func TestDeleteAndClearAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, answerOn("a1", "2024-01-05", "x")))
	require.NoError(t, f.store.Save(ctx, answerOn("a2", "2024-01-06", "y")))
	f.kv.Put(SettingsKey, `{"theme":"dark"}`)
	f.kv.Put(JournalKey, `[]`)

	removed, err := f.store.Delete(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.store.Delete(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, f.store.ClearAll(ctx))
	_, ok := f.kv.Raw(AnswersKey)
	assert.False(t, ok)
	_, ok = f.kv.Raw(SettingsKey)
	assert.False(t, ok)
	_, ok = f.kv.Raw(JournalKey)
	assert.True(t, ok, "journal entries are not part of the clear")

	f.kv.SetError("MultiRemove", errors.New("locked"))
	assert.True(t, appErrors.IsPersistence(f.store.ClearAll(ctx)))
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	// now is 2024-01-10 15:00 UTC
	seed := []entities.Answer{
		answerOn("a1", "2024-01-10", "Morning Coffee with a friend"),
		answerOn("a2", "2024-01-04", "long walk"),
		answerOn("a3", "2023-12-20", "coffee again"),
		answerOn("a4", "2023-03-01", "spring"),
		answerOn("a5", "2022-01-01", "old coffee"),
	}
	for _, a := range seed {
		require.NoError(t, f.store.Save(ctx, a))
	}

	ids := func(answers []entities.Answer) []string {
		out := make([]string, 0, len(answers))
		for _, a := range answers {
			out = append(out, a.ID)
		}
		return out
	}

	cases := []struct {
		filter HistoryFilter
		query  string
		want   []string
	}{
		{FilterAll, "", []string{"a1", "a2", "a3", "a4", "a5"}},
		{FilterWeek, "", []string{"a1", "a2"}},
		{FilterMonth, "", []string{"a1", "a2", "a3"}},
		{FilterYear, "", []string{"a1", "a2", "a3", "a4"}},
		{FilterAll, "COFFEE", []string{"a1", "a3", "a5"}},
		{FilterMonth, "coffee", []string{"a1", "a3"}},
		{FilterAll, "   ", []string{"a1", "a2", "a3", "a4", "a5"}},
		{FilterAll, "tea", []string{}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%q", tc.filter, tc.query), func(t *testing.T) {
			got, err := f.store.History(ctx, tc.filter, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}

	f.dynamic.Limits.MaxSearchResults = 2
	got, err := f.store.History(ctx, FilterAll, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, ids(got))
}

func TestParseHistoryFilter(t *testing.T) {
	f, err := ParseHistoryFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseHistoryFilter("Week")
	require.NoError(t, err)
	assert.Equal(t, FilterWeek, f)

	_, err = ParseHistoryFilter("decade")
	assert.True(t, appErrors.IsValidation(err))
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	data, err := f.store.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	require.NoError(t, f.store.Save(ctx, answerOn("a1", "2024-01-05", "x")))
	data, err = f.store.Export(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n    \"id\": \"a1\",")

	var decoded []entities.Answer
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 1)
}

func TestConcurrentSavesAreSerialized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := valueobjects.DateKey("2024-01-01")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, f.store.Save(ctx, answerOn(fmt.Sprint(i), start.AddDays(i), "x")))
		}(i)
	}
	wg.Wait()

	all, err := f.store.AllAnswers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestStoredShape(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, entities.Answer{
		ID: "a1", QuestionID: 7, Date: "2024-01-05", AnswerText: "x", CreatedAt: 1704412800000,
	}))

	raw, ok := f.kv.Raw(AnswersKey)
	require.True(t, ok)
	assert.JSONEq(t,
		`[{"id":"a1","questionId":7,"date":"2024-01-05","answerText":"x","createdAt":1704412800000,"isFavorite":false}]`,
		raw)
}

func TestEndToEndSaveThenAnalyze(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := entities.Answer{ID: "a", QuestionID: 1, Date: "2024-01-01", AnswerText: "learned patience"}
	b := entities.Answer{ID: "b", QuestionID: 2, Date: "2024-01-02", AnswerText: "sunlight"}
	require.NoError(t, f.store.Save(ctx, a))
	require.NoError(t, f.store.Save(ctx, b))

	insights := NewInsightsService(f.store, domain.NewAnalyzer(questions.Default(), nil), f.dynamic, f.clock)
	result, err := insights.Analysis(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalAnswers)
	assert.Equal(t, []domain.ThemeCount{
		{Category: "gratitude", Count: 1},
		{Category: "growth", Count: 1},
	}, result.TopThemes, "ties keep first-seen order of the date-descending snapshot")
	assert.Equal(t, domain.GettingStartedInsight, result.Insight)
}
