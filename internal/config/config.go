package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardcollector/internal/view"
)

const appName = "cardcollector"

// Config represents the application configuration
type Config struct {
	DefaultTab string `toml:"default_tab"`
	ArtDir     string `toml:"art_dir,omitempty"`
	NoColor    bool   `toml:"no_color"`
}

// Tab returns the configured default tab, or view.DefaultTab when the
// configured name is not a known tab
func (c *Config) Tab() view.Tab {
	tab, _ := view.ParseTab(c.DefaultTab)
	return tab
}

// ArtPath returns the directory card art is looked up in
func (c *Config) ArtPath() string {
	if c.ArtDir != "" {
		return c.ArtDir
	}
	return GetArtLibraryPath()
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCacheDir returns XDG_CACHE_HOME/cardcollector or the default cache path
func GetCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache", appName)
}

// GetArtLibraryPath returns the default path to the card art library
func GetArtLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "art")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := &Config{
		DefaultTab: view.DefaultTab.String(),
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// writeConfig encodes config to the config file, creating its directory
func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetDefaultTab sets the default tab in the config
func SetDefaultTab(name string) error {
	tab, ok := view.ParseTab(name)
	if !ok {
		return fmt.Errorf("unknown tab: %s", name)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultTab = tab.String()

	return writeConfig(config)
}
