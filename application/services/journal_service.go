package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/core/entities"
	"github.com/Adams-404/Between/domain/core/valueobjects"
	"github.com/Adams-404/Between/domain/events"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"go.uber.org/zap"
)

// JournalService stores free-form entries, any number per day.
type JournalService struct {
	kv     ports.KeyValueStore
	limits ports.RuntimeConfig
	ids    ports.IDGenerator
	clock  ports.Clock
	events eventEmitter
	logger *zap.Logger
	mu     sync.Mutex
}

// NewJournalService creates a new journal service. bus may be nil.
func NewJournalService(
	kv ports.KeyValueStore,
	bus ports.EventPublisher,
	limits ports.RuntimeConfig,
	ids ports.IDGenerator,
	clock ports.Clock,
	logger *zap.Logger,
) *JournalService {
	return &JournalService{
		kv:     kv,
		limits: limits,
		ids:    ids,
		clock:  clock,
		events: eventEmitter{bus: bus, features: limits, logger: logger},
		logger: logger,
	}
}

// All returns every entry in stored order.
func (j *JournalService) All(ctx context.Context) ([]entities.JournalEntry, error) {
	var entries []entities.JournalEntry
	if _, err := readJSON(ctx, j.kv, JournalKey, &entries); err != nil {
		j.logger.Error("Failed to load journal entries", zap.Error(err))
		return nil, err
	}
	if entries == nil {
		entries = []entities.JournalEntry{}
	}
	return entries, nil
}

// Add stores text under today's date. The text is trimmed; mood is optional.
func (j *JournalService) Add(ctx context.Context, text, mood string) (*entities.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, appErrors.NewValidation("journal entry must not be empty")
	}
	if limit := j.limits.GetLimits().MaxJournalEntryLength; limit > 0 && utf8.RuneCountInString(text) > limit {
		return nil, appErrors.NewValidation(fmt.Sprintf("journal entry exceeds %d characters", limit))
	}
	if !entities.IsMood(mood) {
		return nil, appErrors.NewValidation(fmt.Sprintf("unknown mood %q, want one of %s", mood, strings.Join(entities.Moods, ", ")))
	}

	id, err := j.ids.NewID()
	if err != nil {
		return nil, appErrors.NewInternal("generate entry id", err)
	}
	now := j.clock.Now()
	entry := entities.JournalEntry{
		ID:        id,
		Text:      text,
		Date:      valueobjects.Today(now),
		Timestamp: now.UnixMilli(),
		WordCount: entities.CountWords(text),
		Mood:      mood,
	}

	j.mu.Lock()
	entries, err := j.All(ctx)
	if err == nil {
		err = writeJSON(ctx, j.kv, JournalKey, append(entries, entry))
	}
	j.mu.Unlock()
	if err != nil {
		j.logger.Error("Failed to save journal entry", zap.Error(err))
		return nil, err
	}

	j.events.emit(ctx, events.NewJournalEntryAdded(entry.ID, entry.Date, entry.Mood, entry.WordCount, now))
	return &entry, nil
}

// EntriesForDate returns the entries written on date, newest first.
func (j *JournalService) EntriesForDate(ctx context.Context, date valueobjects.DateKey) ([]entities.JournalEntry, error) {
	if !date.Valid() {
		return nil, appErrors.NewValidation(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}
	entries, err := j.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.JournalEntry, 0)
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Timestamp > out[b].Timestamp
	})
	return out, nil
}

// Delete removes the entry with id. It reports whether one existed.
func (j *JournalService) Delete(ctx context.Context, id string) (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := j.All(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]entities.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}
	if err := writeJSON(ctx, j.kv, JournalKey, kept); err != nil {
		j.logger.Error("Failed to delete journal entry", zap.String("entryID", id), zap.Error(err))
		return false, err
	}
	return true, nil
}
