package events

// Event sources
const (
	// SourceBackend is the API service source
	SourceBackend = "between.backend"
)

// Event types
const (
	// Answer events
	TypeAnswerSaved     = "answer.saved"
	TypeFavoriteToggled = "answer.favorite.toggled"
	TypeAnswerDeleted   = "answer.deleted"

	// Journal events
	TypeJournalEntryAdded = "journal.entry.added"

	// Store events
	TypeDataCleared = "data.cleared"
)
