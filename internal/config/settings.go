package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/pomo/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownTheme  = errors.New("unknown theme")
	ErrUnknownLocale = errors.New("unknown locale")
)

// KnownThemes lists the theme names the UI can render.
var KnownThemes = []string{"default", "dracula"}

// KnownLocales lists the label sets the UI can render.
var KnownLocales = []string{"en", "pt"}

// Settings are the user preferences read at startup.
type Settings struct {
	Theme     string `yaml:"theme"`
	Locale    string `yaml:"locale"`
	ReportDir string `yaml:"report_dir"`
	LogFile   string `yaml:"log_file"`

	// StartMode is the mode selected when the screen opens.
	StartMode string `yaml:"start_mode"`
}

// DefaultSettings returns the built-in preferences.
func DefaultSettings() Settings {
	return Settings{
		Theme:  DefaultTheme,
		Locale: DefaultLocale,
	}
}

// SettingsPath returns the settings file location for app.
func SettingsPath(app string) (string, error) {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app, SettingsFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, app, SettingsFileName), nil
}

// LoadSettings reads preferences from path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var file Settings
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	settings = settings.Merge(file)
	if err := settings.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// Merge returns s with every non-empty field of override applied.
func (s Settings) Merge(override Settings) Settings {
	if v := strings.TrimSpace(override.Theme); v != "" {
		s.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(override.Locale); v != "" {
		s.Locale = strings.ToLower(v)
	}
	if v := strings.TrimSpace(override.ReportDir); v != "" {
		s.ReportDir = v
	}
	if v := strings.TrimSpace(override.LogFile); v != "" {
		s.LogFile = v
	}
	if v := strings.TrimSpace(override.StartMode); v != "" {
		s.StartMode = strings.ToLower(v)
	}
	return s
}

func (s Settings) Validate() error {
	if !contains(KnownThemes, s.Theme) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTheme, s.Theme, strings.Join(KnownThemes, ", "))
	}
	if !contains(KnownLocales, s.Locale) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownLocale, s.Locale, strings.Join(KnownLocales, ", "))
	}
	if s.StartMode != "" {
		if _, err := models.ParseMode(s.StartMode); err != nil {
			return err
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
