// Package config loads the CLI settings from a config file and NOTEBOOK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigFileName is the config file looked up when none is given.
// The name is matched exactly so the default store file is never read as config.
const ConfigFileName = "notebook.yaml"

// DefaultStoreFile is the collection file name used when no path is configured.
const DefaultStoreFile = "notebook.json"

// Config is the configuration for the notebook CLI.
type Config struct {
	Path    string `mapstructure:"path"`    // Backing file of the store.
	Backend string `mapstructure:"backend"` // json or sqlite
	Format  string `mapstructure:"format"`  // terminal, json or yaml
	Table   string `mapstructure:"table"`   // Table of a JSON collection file
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Path:    DefaultStoreFile,
		Backend: "json",
		Format:  "terminal",
		Table:   "_default",
	}
}

// Load reads configFile when given, otherwise looks for notebook.yaml in the
// working directory and in the user config directory. A missing config file
// is not an error. Environment variables (NOTEBOOK_PATH, NOTEBOOK_FORMAT, ...)
// override file values.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("path", def.Path)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("format", def.Format)
	v.SetDefault("table", def.Table)

	v.SetEnvPrefix("NOTEBOOK")
	v.AutomaticEnv()

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse the config file: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first ConfigFileName found in the working
// directory or the user config directory, or "" when there is none.
func findConfigFile() string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "notebook"))
	}
	for _, dir := range dirs {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
