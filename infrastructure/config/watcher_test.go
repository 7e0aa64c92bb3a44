package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Adams-404/Between/application/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynamic.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"limits":{"maxAnswerLength":100}}`), 0644))

	w, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	assert.Equal(t, 100, w.GetLimits().MaxAnswerLength)
	assert.Equal(t, 500, w.GetLimits().MaxSearchResults, "missing keys keep defaults")

	changed := make(chan *DynamicConfig, 1)
	w.OnChange(func(c *DynamicConfig) { changed <- c })
	w.Start()

	require.NoError(t, os.WriteFile(path, []byte(`{"limits":{"maxAnswerLength":250},"features":{"insightText":false}}`), 0644))

	select {
	case c := <-changed:
		assert.Equal(t, 250, c.Limits.MaxAnswerLength)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
	assert.Equal(t, 250, w.GetLimits().MaxAnswerLength)
	assert.False(t, w.GetFeatures().InsightText)
}

func TestConfigWatcherKeepsCurrentOnInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynamic.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"limits":{"maxAnswerLength":100}}`), 0644))

	w, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`{"limits":{"maxAnswerLength":-1}}`), 0644))
	w.handleConfigChange()
	assert.Equal(t, 100, w.GetLimits().MaxAnswerLength)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0644))
	w.handleConfigChange()
	assert.Equal(t, 100, w.GetLimits().MaxAnswerLength)
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynamic.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	w, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	cfg := DefaultDynamicConfig()
	cfg.Limits.MaxSearchResults = 42
	require.NoError(t, w.SaveConfig(cfg))
	assert.Equal(t, 42, w.GetLimits().MaxSearchResults)

	reloaded, err := loadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42, reloaded.Limits.MaxSearchResults)

	bad := DefaultDynamicConfig()
	bad.Limits.MaxAnswerLength = 0
	assert.Error(t, w.SaveConfig(bad))
}

func TestNewConfigWatcherMissingFile(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	assert.Error(t, err)
}

func TestConfigWatcherServesRuntimeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynamic.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"features":{"eventPublishing":false,"insightText":true},"limits":{"maxAnswerLength":10,"maxJournalEntryLength":20,"maxSearchResults":30}}`), 0644))

	w, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	var rc ports.RuntimeConfig = w
	assert.Equal(t, ports.Features{InsightText: true}, rc.GetFeatures())
	assert.Equal(t, ports.Limits{MaxAnswerLength: 10, MaxJournalEntryLength: 20, MaxSearchResults: 30}, rc.GetLimits())
}
