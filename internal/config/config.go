package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config file names, in lookup order
var fileNames = []string{".starport.json", ".starport.yaml", ".starport.yml"}

// Config represents the full Starport configuration
type Config struct {
	Floating FloatingConfig `json:"floating" yaml:"floating"`
	Demo     DemoConfig     `json:"demo" yaml:"demo"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// FloatingConfig controls the floating card transition
type FloatingConfig struct {
	Durations       int  `json:"durations" yaml:"durations"`
	ClearOnUnmount  bool `json:"clearOnUnmount" yaml:"clearOnUnmount"`
	FrameIntervalMs int  `json:"frameIntervalMs" yaml:"frameIntervalMs"`
}

// FrameInterval returns the animation frame interval as a duration
func (f FloatingConfig) FrameInterval() time.Duration {
	return time.Duration(f.FrameIntervalMs) * time.Millisecond
}

// DemoConfig describes the grid of landing spots
type DemoConfig struct {
	Spots   int    `json:"spots" yaml:"spots"`
	Columns int    `json:"columns" yaml:"columns"`
	Title   string `json:"title" yaml:"title"`
}

// LogConfig contains log file settings
type LogConfig struct {
	Path       string `json:"path" yaml:"path"`
	Level      string `json:"level" yaml:"level"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
}

// SlogLevel maps Level to a slog level, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Floating: FloatingConfig{
			Durations:       1500,
			ClearOnUnmount:  false,
			FrameIntervalMs: 16, // ~60 fps
		},
		Demo: DemoConfig{
			Spots:   6,
			Columns: 3,
			Title:   "starport",
		},
		Log: LogConfig{
			Path:       filepath.Join(homeDir, ".starport", "logs", "starport.log"),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. .starport.json in project root (with version migration support)
// 2. .starport.yaml / .starport.yml
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	for _, name := range fileNames {
		path := filepath.Join(projectPath, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, &ConfigError{Path: path, Err: err}
		}

		if filepath.Ext(name) != ".json" {
			data, err = yamlToJSON(data)
			if err != nil {
				return nil, &ConfigError{Path: path, Err: err}
			}
		}

		cfg, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		cfg = MergeWithDefaults(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		return cfg, nil
	}

	// Return defaults if no config files found
	return DefaultConfig(), nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share the
// versioned parsing path
func yamlToJSON(data []byte) ([]byte, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return json.Marshal(raw)
}

// SaveConfig saves configuration to path with version information. The
// format follows the file extension.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(path) {
	case ".json":
		data, err = MarshalVersionedConfig(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(struct {
			Version int `yaml:"version"`
			Config  `yaml:",inline"`
		}{CurrentVersion, *cfg})
	default:
		return &ConfigError{Path: path, Err: ErrUnsupportedFormat}
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Floating config
	if cfg.Floating.Durations == 0 {
		cfg.Floating.Durations = defaults.Floating.Durations
	}
	if cfg.Floating.FrameIntervalMs == 0 {
		cfg.Floating.FrameIntervalMs = defaults.Floating.FrameIntervalMs
	}

	// Merge Demo config
	if cfg.Demo.Spots == 0 {
		cfg.Demo.Spots = defaults.Demo.Spots
	}
	if cfg.Demo.Columns == 0 {
		cfg.Demo.Columns = defaults.Demo.Columns
	}
	if cfg.Demo.Title == "" {
		cfg.Demo.Title = defaults.Demo.Title
	}

	// Merge Log config
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaults.Log.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = defaults.Log.MaxBackups
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = defaults.Log.MaxAgeDays
	}

	return cfg
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	switch {
	case c.Floating.Durations < 0:
		return fmt.Errorf("floating.durations must be positive, got %d: %w", c.Floating.Durations, ErrInvalid)
	case c.Floating.FrameIntervalMs < 0:
		return fmt.Errorf("floating.frameIntervalMs must be positive, got %d: %w", c.Floating.FrameIntervalMs, ErrInvalid)
	case c.Demo.Spots < 1 || c.Demo.Spots > 9:
		return fmt.Errorf("demo.spots must be between 1 and 9, got %d: %w", c.Demo.Spots, ErrInvalid)
	case c.Demo.Columns < 1:
		return fmt.Errorf("demo.columns must be positive, got %d: %w", c.Demo.Columns, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
