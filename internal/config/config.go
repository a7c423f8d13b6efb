// Package config loads and saves pathsnap settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"pathsnap/internal/path"
)

// configDir can be overridden for testing
var configDir string

// SetConfigDir sets a custom config directory (for testing)
func SetConfigDir(dir string) {
	configDir = dir
}

// Dir returns the config directory
func Dir() string {
	if configDir != "" {
		return configDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pathsnap"
	}
	return filepath.Join(home, ".pathsnap")
}

// DefaultPath returns the settings file path
func DefaultPath() string {
	return filepath.Join(Dir(), "settings.yaml")
}

// Settings holds all user settings
type Settings struct {
	CaseSensitiveCompare bool          `yaml:"case_sensitive"`
	KeepLogFile          bool          `yaml:"keep_log_file"`
	LogFile              string        `yaml:"log_file"`
	SnapshotFile         string        `yaml:"snapshot_file"`
	PathSource           string        `yaml:"path_source"`
	AlertCommand         string        `yaml:"alert_command"`
	Logging              LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds application log settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns settings with defaults rooted in the config directory
func Default() *Settings {
	dir := Dir()
	return &Settings{
		LogFile:      filepath.Join(dir, "PathTools.log"),
		SnapshotFile: filepath.Join(dir, "SavedPath.json"),
		PathSource:   path.SourceAuto,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(dir, "pathsnap.log"),
		},
	}
}

// CaseSensitive implements path.SettingsProvider
func (s *Settings) CaseSensitive() bool { return s.CaseSensitiveCompare }

// KeepLog implements path.SettingsProvider
func (s *Settings) KeepLog() bool { return s.KeepLogFile }

// LogFilePath implements path.SettingsProvider
func (s *Settings) LogFilePath() string { return s.LogFile }

// Load reads settings from a YAML file (if it exists) and overrides them
// with environment variables. Environment variables take precedence.
func Load(file string) (*Settings, error) {
	s := Default()

	if file != "" {
		if err := s.loadFromFile(file); err != nil {
			return nil, fmt.Errorf("loading settings file: %w", err)
		}
	}

	s.loadFromEnv()

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}
	return s, nil
}

func (s *Settings) loadFromFile(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, s)
}

func (s *Settings) loadFromEnv() {
	if v, ok := envBool("PATHSNAP_CASE_SENSITIVE"); ok {
		s.CaseSensitiveCompare = v
	}
	if v, ok := envBool("PATHSNAP_KEEP_LOG"); ok {
		s.KeepLogFile = v
	}
	if v := os.Getenv("PATHSNAP_LOG_FILE"); v != "" {
		s.LogFile = v
	}
	if v := os.Getenv("PATHSNAP_SNAPSHOT"); v != "" {
		s.SnapshotFile = v
	}
	if v := os.Getenv("PATHSNAP_SOURCE"); v != "" {
		s.PathSource = v
	}
	if v := os.Getenv("PATHSNAP_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
}

func envBool(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (s *Settings) validate() error {
	switch s.PathSource {
	case path.SourceAuto, path.SourcePowerShell, path.SourceEnv:
	default:
		return fmt.Errorf("path_source must be one of auto, powershell, env (got %q)", s.PathSource)
	}
	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", s.Logging.Level)
	}
	switch s.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json (got %q)", s.Logging.Format)
	}
	if s.SnapshotFile == "" {
		return errors.New("snapshot_file must not be empty")
	}
	if s.KeepLogFile && s.LogFile == "" {
		return errors.New("log_file must be set when keep_log_file is on")
	}
	return nil
}

// Save writes settings to file as YAML
func Save(file string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}
