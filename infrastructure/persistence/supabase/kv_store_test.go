package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	appErrors "github.com/Adams-404/Between/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePostgREST answers the three request shapes the store sends against
// /rest/v1/kv_store.
type fakePostgREST struct {
	mu     sync.Mutex
	rows   map[string]string
	fail   bool
	prefer []string
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path != "/rest/v1/kv_store" {
		http.NotFound(w, r)
		return
	}
	if f.fail {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"XX000","message":"database is down"}`))
		return
	}
	f.prefer = append(f.prefer, r.Header.Get("Prefer"))

	filter := r.URL.Query().Get("key")
	switch r.Method {
	case http.MethodGet:
		key := strings.TrimPrefix(filter, "eq.")
		rows := []kvRow{}
		if value, ok := f.rows[key]; ok {
			rows = append(rows, kvRow{Key: key, Value: value})
		}
		_ = json.NewEncoder(w).Encode(rows)
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		var row kvRow
		if err := json.Unmarshal(body, &row); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"PGRST102","message":"bad body"}`))
			return
		}
		f.rows[row.Key] = row.Value
		w.WriteHeader(http.StatusCreated)
	case http.MethodDelete:
		list := strings.TrimSuffix(strings.TrimPrefix(filter, "in.("), ")")
		for _, key := range strings.Split(list, ",") {
			delete(f.rows, key)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func newTestStore(t *testing.T) (*KVStore, *fakePostgREST) {
	t.Helper()
	fake := &fakePostgREST{rows: make(map[string]string)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "test-key")
	require.NoError(t, err)
	return NewKVStore(client, "", zap.NewNop()), fake
}

func TestSupabaseRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t)

	_, found, err := store.Get(ctx, "@daily_questions:answers")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "@daily_questions:answers", `[{"id":"1"}]`))
	value, found, err := store.Get(ctx, "@daily_questions:answers")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, value)

	assert.Contains(t, fake.prefer[1], "resolution=merge-duplicates")
}

func TestSupabaseMultiRemove(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t)
	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))
	require.NoError(t, store.Set(ctx, "c", "3"))

	require.NoError(t, store.MultiRemove(ctx, []string{"a", "c"}))
	require.NoError(t, store.MultiRemove(ctx, nil))

	assert.Equal(t, map[string]string{"b": "2"}, fake.rows)
}

func TestSupabaseErrorsArePersistenceFaults(t *testing.T) {
	ctx := context.Background()
	store, fake := newTestStore(t)
	fake.fail = true

	_, _, err := store.Get(ctx, "k")
	assert.True(t, appErrors.IsPersistence(err))
	assert.Contains(t, err.Error(), "database is down")

	assert.True(t, appErrors.IsPersistence(store.Set(ctx, "k", "v")))
	assert.True(t, appErrors.IsPersistence(store.MultiRemove(ctx, []string{"k"})))
}

func TestSupabaseCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store, fake := newTestStore(t)

	_, _, err := store.Get(ctx, "k")
	assert.True(t, appErrors.IsUnavailable(err))
	assert.Empty(t, fake.prefer)
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient("", "")
	assert.Error(t, err)
}
