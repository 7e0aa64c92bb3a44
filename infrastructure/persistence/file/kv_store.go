// Package file persists the key-value store as a single JSON document on
// disk. Every write rewrites the document through a temporary file and a
// rename, so a crash leaves either the old or the new content.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Adams-404/Between/application/ports"

	"go.uber.org/zap"
)

// KVStore is a KeyValueStore backed by one JSON object on disk.
type KVStore struct {
	path   string
	logger *zap.Logger

	mu     sync.RWMutex
	values map[string]string
}

// NewKVStore opens the document at path, creating its directory when needed.
// A missing file is an empty store. A file that is not a JSON object of
// strings is refused rather than overwritten.
func NewKVStore(path string, logger *zap.Logger) (*KVStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file store path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	store := &KVStore{
		path:   path,
		logger: logger,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Info("Starting with empty file store", zap.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("read store file: %w", err)
	case len(data) > 0:
		if err := json.Unmarshal(data, &store.values); err != nil {
			return nil, fmt.Errorf("store file %s is not a JSON object of strings: %w", path, err)
		}
	}

	return store, nil
}

// Get retrieves the value stored under key
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.values[key]
	return value, exists, nil
}

// Set replaces the value stored under key and flushes the document
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// MultiRemove deletes the listed keys and flushes the document
func (s *KVStore) MultiRemove(ctx context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := make(map[string]string)
	for _, key := range keys {
		if value, exists := s.values[key]; exists {
			removed[key] = value
			delete(s.values, key)
		}
	}
	if len(removed) == 0 {
		return nil
	}

	if err := s.flush(); err != nil {
		for key, value := range removed {
			s.values[key] = value
		}
		return err
	}
	return nil
}

// Path returns the location of the backing document
func (s *KVStore) Path() string {
	return s.path
}

// flush writes the document atomically. Callers hold the write lock.
func (s *KVStore) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}

	s.logger.Debug("File store flushed",
		zap.String("path", s.path),
		zap.Int("keys", len(s.values)),
	)
	return nil
}

var _ ports.KeyValueStore = (*KVStore)(nil)
