// Package events defines what the journal announces after a successful write.
package events

import (
	"time"

	"github.com/Adams-404/Between/domain/core/valueobjects"
)

// DomainEvent is the shape every publisher understands.
type DomainEvent interface {
	GetEventType() string
	GetAggregateID() string
	GetTimestamp() time.Time
}

// BaseEvent carries the envelope fields shared by all events.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

// GetEventType returns the event type
func (e BaseEvent) GetEventType() string { return e.EventType }

// GetAggregateID returns the id of the record the event is about
func (e BaseEvent) GetAggregateID() string { return e.AggregateID }

// GetTimestamp returns when the event occurred
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

func newBase(aggregateID, eventType string, at time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		Timestamp:   at,
		Version:     1,
	}
}

// AnswerSaved is emitted after an answer is persisted. Replaced is set when
// an earlier answer for the same date was dropped by the save.
type AnswerSaved struct {
	BaseEvent
	AnswerID   string               `json:"answer_id"`
	QuestionID int                  `json:"question_id"`
	Date       valueobjects.DateKey `json:"date"`
	WordCount  int                  `json:"word_count"`
	Replaced   bool                 `json:"replaced"`
}

// NewAnswerSaved creates a new answer saved event
func NewAnswerSaved(answerID string, questionID int, date valueobjects.DateKey, wordCount int, replaced bool, at time.Time) *AnswerSaved {
	return &AnswerSaved{
		BaseEvent:  newBase(answerID, TypeAnswerSaved, at),
		AnswerID:   answerID,
		QuestionID: questionID,
		Date:       date,
		WordCount:  wordCount,
		Replaced:   replaced,
	}
}

// FavoriteToggled is emitted after the favorite flag of an answer flips.
type FavoriteToggled struct {
	BaseEvent
	AnswerID   string `json:"answer_id"`
	IsFavorite bool   `json:"is_favorite"`
}

// NewFavoriteToggled creates a new favorite toggled event
func NewFavoriteToggled(answerID string, isFavorite bool, at time.Time) *FavoriteToggled {
	return &FavoriteToggled{
		BaseEvent:  newBase(answerID, TypeFavoriteToggled, at),
		AnswerID:   answerID,
		IsFavorite: isFavorite,
	}
}

// AnswerDeleted is emitted after a single answer is removed.
type AnswerDeleted struct {
	BaseEvent
	AnswerID string               `json:"answer_id"`
	Date     valueobjects.DateKey `json:"date"`
}

// NewAnswerDeleted creates a new answer deleted event
func NewAnswerDeleted(answerID string, date valueobjects.DateKey, at time.Time) *AnswerDeleted {
	return &AnswerDeleted{
		BaseEvent: newBase(answerID, TypeAnswerDeleted, at),
		AnswerID:  answerID,
		Date:      date,
	}
}

// JournalEntryAdded is emitted after a free-form entry is stored.
type JournalEntryAdded struct {
	BaseEvent
	EntryID   string               `json:"entry_id"`
	Date      valueobjects.DateKey `json:"date"`
	Mood      string               `json:"mood,omitempty"`
	WordCount int                  `json:"word_count"`
}

// NewJournalEntryAdded creates a new journal entry added event
func NewJournalEntryAdded(entryID string, date valueobjects.DateKey, mood string, wordCount int, at time.Time) *JournalEntryAdded {
	return &JournalEntryAdded{
		BaseEvent: newBase(entryID, TypeJournalEntryAdded, at),
		EntryID:   entryID,
		Date:      date,
		Mood:      mood,
		WordCount: wordCount,
	}
}

// DataCleared is emitted after a bulk clear. Keys lists the removed store keys.
type DataCleared struct {
	BaseEvent
	Keys []string `json:"keys"`
}

// NewDataCleared creates a new data cleared event
func NewDataCleared(keys []string, at time.Time) *DataCleared {
	return &DataCleared{
		BaseEvent: newBase("store", TypeDataCleared, at),
		Keys:      keys,
	}
}
