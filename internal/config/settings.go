package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the settings file.
const (
	EnvAddr      = "LIFEPLAN_ADDR"
	EnvFormat    = "LIFEPLAN_FORMAT"
	EnvOutputDir = "LIFEPLAN_OUTPUT_DIR"
	EnvDebug     = "LIFEPLAN_DEBUG"
)

// Settings holds the user's persistent preferences for the lifeplan binary.
type Settings struct {
	Report ReportSettings `toml:"report"`
	Server ServerSettings `toml:"server"`
	Debug  bool           `toml:"debug"`
}

// ReportSettings controls report generation defaults.
type ReportSettings struct {
	Format    string `toml:"format"`
	OutputDir string `toml:"output_dir"`
}

// ServerSettings controls the HTTP API.
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Report: ReportSettings{
			Format:    "console",
			OutputDir: "reports",
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}

// SettingsDir returns the XDG-compliant settings directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifeplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lifeplan")
}

// SettingsPath returns the full path to the default settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "settings.toml")
}

// LoadSettings reads the settings file at path (SettingsPath when empty),
// returning defaults if it doesn't exist, then applies environment overrides.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = SettingsPath()
	}
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return s, fmt.Errorf("reading settings: %w", err)
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parsing settings: %w", err)
		}
	}

	s.applyEnv()
	return s, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are ignored; existing variables are never overwritten.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var present []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

func (s *Settings) applyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		s.Server.Addr = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		s.Report.Format = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		s.Report.OutputDir = v
	}
	switch os.Getenv(EnvDebug) {
	case "1", "true", "yes":
		s.Debug = true
	}
}

// SaveSettings writes the settings to path (SettingsPath when empty).
func SaveSettings(path string, s Settings) error {
	if path == "" {
		path = SettingsPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(s)
}
