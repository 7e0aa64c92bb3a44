package entities

import "github.com/Adams-404/Between/domain/core/valueobjects"

// Moods a free-form journal entry may be tagged with.
var Moods = []string{"Happy", "Calm", "Sad", "Frustrated", "Grateful"}

// JournalEntry is a free-form note. Unlike Answer, a day may hold many.
type JournalEntry struct {
	ID        string               `json:"id"`
	Text      string               `json:"text"`
	Date      valueobjects.DateKey `json:"date"`
	Timestamp int64                `json:"timestamp"` // epoch milliseconds
	WordCount int                  `json:"wordCount"`
	Mood      string               `json:"mood,omitempty"`
}

// IsMood reports whether m is empty or one of Moods.
func IsMood(m string) bool {
	if m == "" {
		return true
	}
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}
