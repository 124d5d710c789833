// Package config loads SuperAdventure settings from YAML with environment
// overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds all runtime settings.
type Config struct {
	WorldDir   string  `yaml:"world_dir"`
	Seed       int64   `yaml:"seed"`
	LogLevel   string  `yaml:"log_level"`
	LogFile    string  `yaml:"log_file"`
	SaveFormat string  `yaml:"save_format"`
	Storage    Storage `yaml:"storage"`
}

// Storage selects the save backend.
type Storage struct {
	Backend  string `yaml:"backend"`
	Dir      string `yaml:"dir"`
	DBPath   string `yaml:"db_path"`
	RedisURL string `yaml:"redis_url"`
}

// Environment variables that override file settings.
const (
	EnvLogLevel = "SUPERADVENTURE_LOG_LEVEL"
	EnvWorld    = "SUPERADVENTURE_WORLD"
	EnvStorage  = "SUPERADVENTURE_STORAGE"
	EnvRedisURL = "SUPERADVENTURE_REDIS_URL"
	EnvSaveDir  = "SUPERADVENTURE_SAVE_DIR"
	EnvDB       = "SUPERADVENTURE_DB"
	EnvSeed     = "SUPERADVENTURE_SEED"
)

// LocalFile is the config file looked up in the working directory.
const LocalFile = "superadventure.yaml"

// Default returns the embedded defaults.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Load reads configuration and applies environment overrides.
// Search order: customPath -> ~/.superadventure/config.yaml -> ./superadventure.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only some keys.
func Load(customPath string) (Config, error) {
	cfg := Default()

	switch {
	case customPath != "":
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	default:
		for _, path := range []string{userConfigPath(), LocalFile} {
			if path == "" {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			break
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.WorldDir = getEnv(EnvWorld, cfg.WorldDir)
	cfg.Storage.Backend = getEnv(EnvStorage, cfg.Storage.Backend)
	cfg.Storage.RedisURL = getEnv(EnvRedisURL, cfg.Storage.RedisURL)
	cfg.Storage.Dir = getEnv(EnvSaveDir, cfg.Storage.Dir)
	cfg.Storage.DBPath = getEnv(EnvDB, cfg.Storage.DBPath)

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// userConfigPath returns ~/.superadventure/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".superadventure", "config.yaml")
}
