// Package supabase stores the journal's key-value pairs in a Postgres table
// exposed through Supabase's PostgREST endpoint.
//
// Expected table:
//
//	create table kv_store (
//	  key        text primary key,
//	  value      text not null,
//	  updated_at timestamptz not null default now()
//	);
package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/Adams-404/Between/application/ports"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// DefaultTable is used when no table name is configured.
const DefaultTable = "kv_store"

// Querier is the part of the Supabase client the store uses.
type Querier interface {
	From(table string) *postgrest.QueryBuilder
}

type kvRow struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// KVStore is a KeyValueStore over a Supabase table.
type KVStore struct {
	client Querier
	table  string
	logger *zap.Logger
	now    func() time.Time
}

// NewClient connects to the Supabase project at url with the given API key.
func NewClient(url, key string) (*supa.Client, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}

// NewKVStore creates a store over table
func NewKVStore(client Querier, table string, logger *zap.Logger) *KVStore {
	if table == "" {
		table = DefaultTable
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVStore{
		client: client,
		table:  table,
		logger: logger,
		now:    time.Now,
	}
}

// Get retrieves the value stored under key. The PostgREST client has no
// context support, so ctx is only checked before the request is sent.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, appErrors.NewUnavailable("supabase get cancelled", err)
	}

	var rows []kvRow
	_, err := s.client.From(s.table).
		Select("key,value", "", false).
		Eq("key", key).
		ExecuteTo(&rows)
	if err != nil {
		return "", false, appErrors.NewPersistence(fmt.Sprintf("supabase select %s", key), err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

// Set upserts the row for key
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return appErrors.NewUnavailable("supabase set cancelled", err)
	}

	row := kvRow{
		Key:       key,
		Value:     value,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
	}
	_, _, err := s.client.From(s.table).
		Upsert(row, "key", "minimal", "").
		Execute()
	if err != nil {
		return appErrors.NewPersistence(fmt.Sprintf("supabase upsert %s", key), err)
	}

	s.logger.Debug("Value stored",
		zap.String("key", key),
		zap.String("table", s.table),
	)
	return nil
}

// MultiRemove deletes every listed key in one request
func (s *KVStore) MultiRemove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return appErrors.NewUnavailable("supabase delete cancelled", err)
	}

	_, _, err := s.client.From(s.table).
		Delete("minimal", "").
		In("key", keys).
		Execute()
	if err != nil {
		return appErrors.NewPersistence(fmt.Sprintf("supabase delete %d keys", len(keys)), err)
	}
	return nil
}

var _ ports.KeyValueStore = (*KVStore)(nil)
