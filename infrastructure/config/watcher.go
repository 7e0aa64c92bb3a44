package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ConfigWatcher watches the dynamic configuration file for changes
type ConfigWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  *DynamicConfig
	mu       sync.RWMutex
	onChange []func(*DynamicConfig)
	logger   *zap.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	debounce time.Duration
}

// NewConfigWatcher loads path and prepares to watch it. Call Start to begin.
func NewConfigWatcher(configPath string, logger *zap.Logger) (*ConfigWatcher, error) {
	cfg, err := loadConfigFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid initial config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory too so editors that save by rename are seen.
	if err := watcher.Add(configPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config file: %w", err)
	}
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		logger.Warn("Failed to watch config directory", zap.Error(err))
	}

	return &ConfigWatcher{
		path:     configPath,
		watcher:  watcher,
		current:  cfg,
		onChange: make([]func(*DynamicConfig), 0),
		logger:   logger,
		stopCh:   make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}, nil
}

// Start begins watching for configuration changes
func (w *ConfigWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("Configuration watcher started", zap.String("path", w.path))
}

// Stop stops watching. It is safe to call more than once.
func (w *ConfigWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
		w.logger.Info("Configuration watcher stopped")
	})
}

func (w *ConfigWatcher) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, w.handleConfigChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

// handleConfigChange reloads the file. An unreadable or invalid file keeps
// the current configuration.
func (w *ConfigWatcher) handleConfigChange() {
	w.logger.Info("Configuration file changed, reloading", zap.String("path", w.path))

	newConfig, err := loadConfigFromFile(w.path)
	if err != nil {
		w.logger.Error("Failed to reload configuration", zap.Error(err))
		return
	}
	if err := newConfig.Validate(); err != nil {
		w.logger.Error("Invalid configuration, keeping current", zap.Error(err))
		return
	}

	w.mu.Lock()
	oldConfig := w.current
	w.current = newConfig
	handlers := append([]func(*DynamicConfig){}, w.onChange...)
	w.mu.Unlock()

	w.logConfigChanges(oldConfig, newConfig)

	for _, handler := range handlers {
		go handler(newConfig)
	}

	w.logger.Info("Configuration reloaded successfully",
		zap.String("version", newConfig.Metadata.Version),
	)
}

func (w *ConfigWatcher) logConfigChanges(oldConfig, newConfig *DynamicConfig) {
	changes := []string{}

	if oldConfig.Features.EventPublishing != newConfig.Features.EventPublishing {
		changes = append(changes, fmt.Sprintf("EventPublishing: %v -> %v",
			oldConfig.Features.EventPublishing, newConfig.Features.EventPublishing))
	}
	if oldConfig.Features.InsightText != newConfig.Features.InsightText {
		changes = append(changes, fmt.Sprintf("InsightText: %v -> %v",
			oldConfig.Features.InsightText, newConfig.Features.InsightText))
	}
	if oldConfig.Limits.MaxAnswerLength != newConfig.Limits.MaxAnswerLength {
		changes = append(changes, fmt.Sprintf("MaxAnswerLength: %d -> %d",
			oldConfig.Limits.MaxAnswerLength, newConfig.Limits.MaxAnswerLength))
	}
	if oldConfig.Limits.MaxSearchResults != newConfig.Limits.MaxSearchResults {
		changes = append(changes, fmt.Sprintf("MaxSearchResults: %d -> %d",
			oldConfig.Limits.MaxSearchResults, newConfig.Limits.MaxSearchResults))
	}

	if len(changes) > 0 {
		w.logger.Info("Configuration changes detected", zap.Strings("changes", changes))
	}
}

// OnChange registers a callback for configuration changes
func (w *ConfigWatcher) OnChange(handler func(*DynamicConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, handler)
}

// GetCurrent returns the current configuration
func (w *ConfigWatcher) GetCurrent() *DynamicConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// GetFeatures returns current feature flags
func (w *ConfigWatcher) GetFeatures() Features {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current.Features
}

// GetLimits returns current limits
func (w *ConfigWatcher) GetLimits() Limits {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current.Limits
}

// SaveConfig writes cfg through a temp file and rename, then swaps it in.
func (w *ConfigWatcher) SaveConfig(cfg *DynamicConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Metadata.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := w.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()
	return nil
}

// loadConfigFromFile loads configuration from a JSON file. Sections missing
// from the file keep their defaults.
func loadConfigFromFile(path string) (*DynamicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultDynamicConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if cfg.Metadata.Version == "" {
		cfg.Metadata.Version = "1.0.0"
	}
	cfg.Metadata.UpdatedAt = time.Now()
	return cfg, nil
}
