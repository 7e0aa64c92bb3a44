// Package services implements the operations the UI and HTTP layer call:
// answer persistence, settings, journal entries and insights.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/events"
	domain "github.com/Adams-404/Between/domain/services"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"go.uber.org/zap"
)

// HistoryFilter restricts History to a trailing window.
type HistoryFilter string

const (
	FilterAll   HistoryFilter = "all"
	FilterWeek  HistoryFilter = "week"
	FilterMonth HistoryFilter = "month"
	FilterYear  HistoryFilter = "year"
)

// ParseHistoryFilter accepts all, week, month, year; empty means all.
func ParseHistoryFilter(s string) (HistoryFilter, error) {
	switch f := HistoryFilter(strings.ToLower(s)); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterWeek, FilterMonth, FilterYear:
		return f, nil
	default:
		return "", appErrors.NewValidation(fmt.Sprintf("unknown filter %q, want all, week, month or year", s))
	}
}

// days is the window length; zero means unbounded.
func (f HistoryFilter) days() int {
	switch f {
	case FilterWeek:
		return 7
	case FilterMonth:
		return 30
	case FilterYear:
		return 365
	default:
		return 0
	}
}

// AnswerStore owns the answer collection. Every mutation reads the whole
// collection, changes it and writes it back under one key. The mutex
// serializes those read-modify-write cycles within the process.
type AnswerStore struct {
	kv       ports.KeyValueStore
	selector *domain.QuestionSelector
	limits   ports.RuntimeConfig
	ids      ports.IDGenerator
	clock    ports.Clock
	events   eventEmitter
	logger   *zap.Logger
	mu       sync.Mutex
}

// NewAnswerStore creates a new answer store. bus may be nil.
func NewAnswerStore(
	kv ports.KeyValueStore,
	selector *domain.QuestionSelector,
	bus ports.EventPublisher,
	limits ports.RuntimeConfig,
	ids ports.IDGenerator,
	clock ports.Clock,
	logger *zap.Logger,
) *AnswerStore {
	return &AnswerStore{
		kv:       kv,
		selector: selector,
		limits:   limits,
		ids:      ids,
		clock:    clock,
		events:   eventEmitter{bus: bus, features: limits, logger: logger},
		logger:   logger,
	}
}

// LoadAll returns the stored collection in stored order, or an empty slice
// when nothing was saved yet.
func (s *AnswerStore) LoadAll(ctx context.Context) ([]entities.Answer, error) {
	var answers []entities.Answer
	if _, err := readJSON(ctx, s.kv, AnswersKey, &answers); err != nil {
		s.logger.Error("Failed to load answers", zap.Error(err))
		return nil, err
	}
	if answers == nil {
		answers = []entities.Answer{}
	}
	return answers, nil
}

// SaveAll replaces the stored collection.
func (s *AnswerStore) SaveAll(ctx context.Context, answers []entities.Answer) error {
	if answers == nil {
		answers = []entities.Answer{}
	}
	if err := writeJSON(ctx, s.kv, AnswersKey, answers); err != nil {
		s.logger.Error("Failed to save answers", zap.Int("count", len(answers)), zap.Error(err))
		return err
	}
	return nil
}

// Save stores answer, dropping any earlier answer for the same date.
func (s *AnswerStore) Save(ctx context.Context, answer entities.Answer) error {
	if err := s.validate(answer); err != nil {
		return err
	}

	s.mu.Lock()
	answers, err := s.LoadAll(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	kept := make([]entities.Answer, 0, len(answers)+1)
	for _, a := range answers {
		if a.Date != answer.Date {
			kept = append(kept, a)
		}
	}
	replaced := len(kept) != len(answers)
	kept = append(kept, answer)

	err = s.SaveAll(ctx, kept)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.logger.Debug("Answer saved",
		zap.String("answerID", answer.ID),
		zap.String("date", answer.Date.String()),
		zap.Bool("replaced", replaced),
	)
	s.events.emit(ctx, events.NewAnswerSaved(answer.ID, answer.QuestionID, answer.Date, answer.WordCount(), replaced, s.clock.Now()))
	return nil
}

func (s *AnswerStore) validate(answer entities.Answer) error {
	if answer.ID == "" {
		return appErrors.NewValidation("answer id is required")
	}
	if !answer.Date.Valid() {
		return appErrors.NewValidation(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", answer.Date))
	}
	if strings.TrimSpace(answer.AnswerText) == "" {
		return appErrors.NewValidation("answer text must not be empty")
	}
	if limit := s.limits.GetLimits().MaxAnswerLength; limit > 0 && utf8.RuneCountInString(answer.AnswerText) > limit {
		return appErrors.NewValidation(fmt.Sprintf("answer text exceeds %d characters", limit))
	}
	return nil
}

// SubmitToday answers today's question with text.
func (s *AnswerStore) SubmitToday(ctx context.Context, text string) (*entities.Answer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, appErrors.NewValidation("answer text must not be empty")
	}

	id, err := s.ids.NewID()
	if err != nil {
		return nil, appErrors.NewInternal("generate answer id", err)
	}

	now := s.clock.Now()
	today := valueobjects.Today(now)
	answer := entities.Answer{
		ID:         id,
		QuestionID: s.selector.QuestionForDate(today).ID,
		Date:       today,
		AnswerText: text,
		CreatedAt:  now.UnixMilli(),
	}
	if err := s.Save(ctx, answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// ToggleFavorite flips the favorite flag of the answer with answerID and
// returns the updated record. An unknown id yields nil without error.
func (s *AnswerStore) ToggleFavorite(ctx context.Context, answerID string) (*entities.Answer, error) {
	s.mu.Lock()
	answers, err := s.LoadAll(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	idx := -1
	for i := range answers {
		if answers[i].ID == answerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, nil
	}

	answers[idx].IsFavorite = !answers[idx].IsFavorite
	updated := answers[idx]
	err = s.SaveAll(ctx, answers)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.events.emit(ctx, events.NewFavoriteToggled(updated.ID, updated.IsFavorite, s.clock.Now()))
	return &updated, nil
}

// AllAnswers returns every answer, newest date first.
func (s *AnswerStore) AllAnswers(ctx context.Context) ([]entities.Answer, error) {
	answers, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(answers)
	return answers, nil
}

// AnswerForDate returns the answer stored for date, or nil.
func (s *AnswerStore) AnswerForDate(ctx context.Context, date valueobjects.DateKey) (*entities.Answer, error) {
	if !date.Valid() {
		return nil, appErrors.NewValidation(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}
	answers, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		if a.Date == date {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

// Delete removes the answer with answerID. It reports whether one existed.
func (s *AnswerStore) Delete(ctx context.Context, answerID string) (bool, error) {
	s.mu.Lock()
	answers, err := s.LoadAll(ctx)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}

	kept := make([]entities.Answer, 0, len(answers))
	var removed *entities.Answer
	for i := range answers {
		if answers[i].ID == answerID {
			removed = &answers[i]
			continue
		}
		kept = append(kept, answers[i])
	}
	if removed == nil {
		s.mu.Unlock()
		return false, nil
	}

	err = s.SaveAll(ctx, kept)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	s.events.emit(ctx, events.NewAnswerDeleted(removed.ID, removed.Date, s.clock.Now()))
	return true, nil
}

// ClearAll removes the answers and the settings in one call.
func (s *AnswerStore) ClearAll(ctx context.Context) error {
	keys := []string{AnswersKey, SettingsKey}

	s.mu.Lock()
	err := s.kv.MultiRemove(ctx, keys)
	s.mu.Unlock()
	if err != nil {
		err = storageError("clear all data", err)
		s.logger.Error("Failed to clear data", zap.Error(err))
		return err
	}

	s.logger.Info("All data cleared")
	s.events.emit(ctx, events.NewDataCleared(keys, s.clock.Now()))
	return nil
}

// Favorites returns the favorite answers, newest date first.
func (s *AnswerStore) Favorites(ctx context.Context) ([]entities.Answer, error) {
	answers, err := s.AllAnswers(ctx)
	if err != nil {
		return nil, err
	}
	favorites := make([]entities.Answer, 0)
	for _, a := range answers {
		if a.IsFavorite {
			favorites = append(favorites, a)
		}
	}
	return favorites, nil
}

// History returns answers inside the filter window whose text contains query
// (case-insensitive), newest first, capped at the configured result limit.
func (s *AnswerStore) History(ctx context.Context, filter HistoryFilter, query string) ([]entities.Answer, error) {
	answers, err := s.AllAnswers(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var cutoff time.Time
	if days := filter.days(); days > 0 {
		cutoff = now.Add(-time.Duration(days) * 24 * time.Hour)
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	limit := s.limits.GetLimits().MaxSearchResults

	out := make([]entities.Answer, 0)
	for _, a := range answers {
		if !cutoff.IsZero() {
			t, err := a.Date.Time(now.Location())
			if err != nil || t.Before(cutoff) {
				continue
			}
		}
		if needle != "" && !strings.Contains(strings.ToLower(a.AnswerText), needle) {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// Export renders every answer as indented JSON, newest date first.
func (s *AnswerStore) Export(ctx context.Context) ([]byte, error) {
	answers, err := s.AllAnswers(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return nil, appErrors.NewInternal("encode export", err)
	}
	return data, nil
}

func sortByDateDesc(answers []entities.Answer) {
	sort.SliceStable(answers, func(i, j int) bool {
		return answers[i].Date > answers[j].Date
	})
}
