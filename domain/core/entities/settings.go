package entities

import (
	"fmt"
	"time"
)

// ThemeMode selects the color scheme.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
	ThemeAuto  ThemeMode = "auto"
)

// FontPreference selects the font family used by the UI.
type FontPreference string

const (
	FontApple  FontPreference = "apple"
	FontSystem FontPreference = "system"
)

// Settings is the singleton preference record. It is replaced wholesale on save.
type Settings struct {
	Theme               ThemeMode      `json:"theme"`
	NotificationEnabled bool           `json:"notificationEnabled"`
	NotificationTime    string         `json:"notificationTime"` // HH:MM
	FontPreference      FontPreference `json:"fontPreference"`
}

// DefaultSettings is what a fresh install reads.
func DefaultSettings() Settings {
	return Settings{
		Theme:               ThemeAuto,
		NotificationEnabled: false,
		NotificationTime:    "09:00",
		FontPreference:      FontApple,
	}
}

// Validate checks enum membership and the HH:MM reminder time.
func (s Settings) Validate() error {
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		return fmt.Errorf("theme must be one of light, dark, auto; got %q", s.Theme)
	}
	switch s.FontPreference {
	case FontApple, FontSystem:
	default:
		return fmt.Errorf("fontPreference must be apple or system; got %q", s.FontPreference)
	}
	if _, err := time.Parse("15:04", s.NotificationTime); err != nil || len(s.NotificationTime) != 5 {
		return fmt.Errorf("notificationTime must be HH:MM; got %q", s.NotificationTime)
	}
	return nil
}

// WithDefaults fills fields that older stored records may lack.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.NotificationTime == "" {
		s.NotificationTime = d.NotificationTime
	}
	if s.FontPreference == "" {
		s.FontPreference = d.FontPreference
	}
	return s
}

// ResolveTheme turns a mode into the concrete scheme to render.
func ResolveTheme(mode ThemeMode, systemDark bool) ThemeMode {
	if mode == ThemeAuto {
		if systemDark {
			return ThemeDark
		}
		return ThemeLight
	}
	return mode
}
