package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ascend/internal/storage"
)

// Config holds all Ascend configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Habits  HabitsConfig  `yaml:"habits"`
}

// StorageConfig selects where the document lives.
type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite, file, memory
	Path    string `yaml:"path"`    // db file (sqlite) or directory (file); empty = default
	Key     string `yaml:"key"`     // empty = store default
}

type LoggingConfig struct {
	Mode  string `yaml:"mode"`  // dev, prod
	Level string `yaml:"level"` // debug, info, warn, error
}

type HabitsConfig struct {
	ToggleOffPolicy string `yaml:"toggle_off_policy"` // keep, revoke
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendSQLite},
		Logging: LoggingConfig{Mode: "dev", Level: "warn"},
		Habits:  HabitsConfig{ToggleOffPolicy: "keep"},
	}
}

// DefaultConfigPath is ~/.config/ascend/config.yaml (or the OS equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "ascend", "config.yaml"), nil
}

// Load reads configuration from a YAML file. A missing file yields defaults.
// Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ASCEND_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("ASCEND_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ASCEND_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ASCEND_TOGGLE_OFF_POLICY"); v != "" {
		c.Habits.ToggleOffPolicy = v
	}
}

// Validate checks the backend name. Policy names are checked by the engine.
func (c *Config) Validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
		return nil
	case "":
		c.Storage.Backend = BackendSQLite
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
}

// StoragePath resolves Storage.Path, filling the per-backend default.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	return storage.DefaultPath(c.Storage.Backend)
}
