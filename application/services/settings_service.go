package services

import (
	"context"
	"sync"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/core/entities"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"go.uber.org/zap"
)

// SettingsService holds the settings singleton. It is loaded once at start
// and every change goes through Update so the stored copy and the in-memory
// copy never diverge.
type SettingsService struct {
	kv            ports.KeyValueStore
	notifications *NotificationService
	logger        *zap.Logger

	mu      sync.RWMutex
	current entities.Settings
}

// NewSettingsService creates a settings service holding the defaults until
// Load is called. notifications may be nil.
func NewSettingsService(kv ports.KeyValueStore, notifications *NotificationService, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		kv:            kv,
		notifications: notifications,
		logger:        logger,
		current:       entities.DefaultSettings(),
	}
}

// Load reads the stored settings. Absent settings yield the defaults without
// writing them. A stored value that does not decode or fails validation is
// reported as corrupted and the in-memory copy is left alone.
func (s *SettingsService) Load(ctx context.Context) (entities.Settings, error) {
	var stored entities.Settings
	found, err := readJSON(ctx, s.kv, SettingsKey, &stored)
	if err != nil {
		s.logger.Error("Failed to load settings", zap.Error(err))
		return entities.Settings{}, err
	}

	settings := entities.DefaultSettings()
	if found {
		settings = stored.WithDefaults()
		if err := settings.Validate(); err != nil {
			err = appErrors.NewCorrupted("stored settings are invalid", err)
			s.logger.Error("Failed to load settings", zap.Error(err))
			return entities.Settings{}, err
		}
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	return settings, nil
}

// Current returns the in-memory settings.
func (s *SettingsService) Current() entities.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update validates, persists and then swaps in settings wholesale.
func (s *SettingsService) Update(ctx context.Context, settings entities.Settings) (entities.Settings, error) {
	if err := settings.Validate(); err != nil {
		return entities.Settings{}, appErrors.NewValidation(err.Error())
	}

	s.mu.Lock()
	if err := writeJSON(ctx, s.kv, SettingsKey, settings); err != nil {
		s.mu.Unlock()
		s.logger.Error("Failed to save settings", zap.Error(err))
		return entities.Settings{}, err
	}
	old := s.current
	s.current = settings
	s.mu.Unlock()

	if s.notifications != nil {
		s.notifications.Apply(ctx, old, settings)
	}
	return settings, nil
}

// SetTheme changes only the theme.
func (s *SettingsService) SetTheme(ctx context.Context, mode entities.ThemeMode) (entities.Settings, error) {
	settings := s.Current()
	settings.Theme = mode
	return s.Update(ctx, settings)
}

// ResolvedTheme is the concrete scheme for the current settings.
func (s *SettingsService) ResolvedTheme(systemDark bool) entities.ThemeMode {
	return entities.ResolveTheme(s.Current().Theme, systemDark)
}

// Reset drops the in-memory copy back to the defaults. Call it after the
// stored settings were removed.
func (s *SettingsService) Reset() {
	s.mu.Lock()
	s.current = entities.DefaultSettings()
	s.mu.Unlock()
}
