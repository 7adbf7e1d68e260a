package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/leadbook/internal/config/colors"
	"github.com/thenoetrevino/leadbook/internal/database"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Logging     LoggingConfig      `yaml:"logging"`
	Export      ExportConfig       `yaml:"export"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`

	// ThemeFile is merged over the theme section when set
	ThemeFile string `yaml:"-" env:"LEADBOOK_THEME_FILE"`
}

// StorageConfig locates the SQLite files. Empty paths default to files in DataDir.
type StorageConfig struct {
	DataDir       string `yaml:"data_dir" env:"LEADBOOK_DATA_DIR"`
	LeadsDB       string `yaml:"leads_db" env:"LEADBOOK_LEADS_DB"`
	CalendarDB    string `yaml:"calendar_db" env:"LEADBOOK_CALENDAR_DB"`
	CredentialsDB string `yaml:"credentials_db" env:"LEADBOOK_CREDENTIALS_DB"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level" env:"LEADBOOK_LOG_LEVEL"`
}

// ExportConfig holds export defaults
type ExportConfig struct {
	// Dir is where exports land when no output path is given
	Dir string `yaml:"dir" env:"LEADBOOK_EXPORT_DIR"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from the ThemeFile path
func loadThemeFile(config *Config) {
	if config.ThemeFile == "" {
		return
	}

	themeData, err := os.ReadFile(config.ThemeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory, then applies
// LEADBOOK_* environment overrides.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// StorePaths resolves the three store files
func (c *Config) StorePaths() database.StorePaths {
	return database.StorePaths{
		Leads:       c.Storage.LeadsDB,
		Calendar:    c.Storage.CalendarDB,
		Credentials: c.Storage.CredentialsDB,
	}
}

// LogDir is where the log file is written
func (c *Config) LogDir() string {
	return filepath.Join(c.Storage.DataDir, "logs")
}

// ExpandHome replaces a leading "~/" with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "leadbook", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "leadbook", "config.yaml"), nil
}

// defaultDataDir is ~/.leadbook, or ./.leadbook when there is no home directory
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".leadbook"
	}
	return filepath.Join(homeDir, ".leadbook")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaultDataDir()
	}
	if c.Storage.LeadsDB == "" {
		c.Storage.LeadsDB = filepath.Join(c.Storage.DataDir, "leads.db")
	}
	if c.Storage.CalendarDB == "" {
		c.Storage.CalendarDB = filepath.Join(c.Storage.DataDir, "calendar.db")
	}
	if c.Storage.CredentialsDB == "" {
		c.Storage.CredentialsDB = filepath.Join(c.Storage.DataDir, "credentials.db")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
