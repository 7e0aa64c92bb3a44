package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Adams-404/Between/application/ports"
	appErrors "github.com/Adams-404/Between/pkg/errors"
)

// Store keys. They match the keys the mobile client has always written, so an
// exported key-value dump can be loaded unchanged.
const (
	AnswersKey  = "@daily_questions:answers"
	SettingsKey = "@daily_questions:settings"
	JournalKey  = "@journal_entries"
)

// readJSON decodes the value under key into out. found is false when the key
// is absent. A value that does not decode is reported as corrupted; it is
// never replaced by an empty collection.
func readJSON(ctx context.Context, kv ports.KeyValueStore, key string, out interface{}) (found bool, err error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return false, storageError(fmt.Sprintf("read %s", key), err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, appErrors.NewCorrupted(fmt.Sprintf("stored value under %s does not decode", key), err)
	}
	return true, nil
}

// writeJSON replaces the value under key with the encoding of v.
func writeJSON(ctx context.Context, kv ports.KeyValueStore, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return appErrors.NewInternal(fmt.Sprintf("encode %s", key), err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return storageError(fmt.Sprintf("write %s", key), err)
	}
	return nil
}

// storageError keeps the classification of errors that already carry one
// (an open breaker reports UNAVAILABLE) and marks the rest as persistence
// faults.
func storageError(op string, err error) error {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		return appErrors.Wrap(err, op)
	}
	return appErrors.NewPersistence(op, err)
}
