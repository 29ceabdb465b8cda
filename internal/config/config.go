// Package config persists user preferences for Jot as JSON under ~/.jot.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MaxRecentFiles caps the recent-files list.
const MaxRecentFiles = 10

// Config holds the application configuration
type Config struct {
	Theme                string   `json:"theme,omitempty"`                 // UI theme name (e.g., "mocha", "latte")
	NotificationsEnabled bool     `json:"notifications_enabled,omitempty"` // Desktop notifications on save results
	ShowWeather          bool     `json:"show_weather"`                    // Weather readout in the header
	ShowStats            bool     `json:"show_stats"`                      // System stats readout in the footer
	RecentFiles          []string `json:"recent_files,omitempty"`          // Most recently opened/saved files, newest first

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jot"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by Load and by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		ShowWeather: true,
		ShowStats:   true,
		RecentFiles: []string{},
		filePath:    path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure slices are initialized (not nil) after unmarshaling.
	// This must happen before Validate() since Validate() only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized ensures all slices are initialized (not nil).
//
// Thread-safety: NOT thread-safe; only call during single-threaded
// initialization, before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.RecentFiles == nil {
		c.RecentFiles = []string{}
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	for _, f := range c.RecentFiles {
		if f == "" {
			return fmt.Errorf("empty recent file entry found")
		}
		if seen[f] {
			return fmt.Errorf("duplicate recent file: %s", f)
		}
		seen[f] = true
	}
	if len(c.RecentFiles) > MaxRecentFiles {
		return fmt.Errorf("recent files list exceeds %d entries", MaxRecentFiles)
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetTheme returns the saved theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme saves the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetShowWeather returns whether the weather readout is enabled
func (c *Config) GetShowWeather() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ShowWeather
}

// SetShowWeather sets whether the weather readout is enabled
func (c *Config) SetShowWeather(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowWeather = enabled
}

// GetShowStats returns whether the system stats readout is enabled
func (c *Config) GetShowStats() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ShowStats
}

// SetShowStats sets whether the system stats readout is enabled
func (c *Config) SetShowStats(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowStats = enabled
}

// GetRecentFiles returns a copy of the recent-files list, newest first
func (c *Config) GetRecentFiles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.RecentFiles))
	copy(out, c.RecentFiles)
	return out
}

// AddRecentFile moves path to the front of the recent-files list,
// deduplicating and trimming to MaxRecentFiles.
func (c *Config) AddRecentFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	files := []string{path}
	for _, f := range c.RecentFiles {
		if f != path {
			files = append(files, f)
		}
	}
	if len(files) > MaxRecentFiles {
		files = files[:MaxRecentFiles]
	}
	c.RecentFiles = files
}

// ClearRecentFiles empties the recent-files list
func (c *Config) ClearRecentFiles() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.RecentFiles)
	c.RecentFiles = []string{}
	return n
}
