/*
Package config manages TOML config for anaphrase.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/anaphrase/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Search SearchConfig `toml:"search"`
	Dict   DictConfig   `toml:"dict"`
	Server ServerConfig `toml:"server"`
}

// SearchConfig holds the default search window. Flags override these
// per run.
type SearchConfig struct {
	MinCardinality int `toml:"min_cardinality"`
	MaxCardinality int `toml:"max_cardinality"`
	MinWordLength  int `toml:"min_word_length"`
	MaxWordLength  int `toml:"max_word_length"`
	Workers        int `toml:"workers"` // 0 means one per CPU
}

// DictConfig holds word list options.
type DictConfig struct {
	Path string `toml:"path"` // default word list, -dict overrides
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxSolutions int `toml:"max_solutions"` // per-request solution cap
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MinCardinality: 1,
			MaxCardinality: 3,
			MinWordLength:  1,
			MaxWordLength:  30,
			Workers:        0,
		},
		Dict: DictConfig{
			Path: "",
		},
		Server: ServerConfig{
			MaxSolutions: 100,
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml,
// falling back to the working directory when the user config dir is
// unavailable.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return "config.toml", nil
	}
	return filepath.Join(homeDir, ".config", "anaphrase", "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: ~/.config/anaphrase/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			cfg, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return cfg, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using builtin defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using builtin defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Missing keys keep their default
// values.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
