package config

import (
	"fmt"
	"time"

	"github.com/Adams-404/Between/application/ports"
)

// DynamicConfig represents runtime-changeable configuration
type DynamicConfig struct {
	Features Features       `json:"features"`
	Limits   Limits         `json:"limits"`
	Metadata ConfigMetadata `json:"metadata"`
}

// Features and Limits are declared with the port so services never import
// this package.
type (
	Features = ports.Features
	Limits   = ports.Limits
)

// ConfigMetadata holds metadata about the configuration
type ConfigMetadata struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// DefaultDynamicConfig is used when no dynamic config file is configured.
func DefaultDynamicConfig() *DynamicConfig {
	return &DynamicConfig{
		Features: Features{
			EventPublishing: true,
			InsightText:     true,
		},
		Limits: Limits{
			MaxAnswerLength:       5000,
			MaxJournalEntryLength: 20000,
			MaxSearchResults:      500,
		},
		Metadata: ConfigMetadata{Version: "1.0.0"},
	}
}

// Validate checks limits before a reload is swapped in.
func (c *DynamicConfig) Validate() error {
	if c.Limits.MaxAnswerLength <= 0 {
		return fmt.Errorf("maxAnswerLength must be positive")
	}
	if c.Limits.MaxJournalEntryLength <= 0 {
		return fmt.Errorf("maxJournalEntryLength must be positive")
	}
	if c.Limits.MaxSearchResults <= 0 {
		return fmt.Errorf("maxSearchResults must be positive")
	}
	return nil
}

var (
	_ ports.RuntimeConfig = (*StaticSource)(nil)
	_ ports.RuntimeConfig = (*ConfigWatcher)(nil)
)

// StaticSource serves a fixed DynamicConfig.
type StaticSource struct {
	cfg *DynamicConfig
}

// NewStaticSource wraps cfg; nil means DefaultDynamicConfig.
func NewStaticSource(cfg *DynamicConfig) *StaticSource {
	if cfg == nil {
		cfg = DefaultDynamicConfig()
	}
	return &StaticSource{cfg: cfg}
}

func (s *StaticSource) GetFeatures() Features { return s.cfg.Features }

func (s *StaticSource) GetLimits() Limits { return s.cfg.Limits }
