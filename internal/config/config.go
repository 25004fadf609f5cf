// Package config resolves the configuration directory, the tasks file and
// the settings layered on top of them.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "tasker"

	// TasksFile is the default tasks filename inside the config directory.
	TasksFile = "tasks.json"

	// ConfigFile is the optional TOML settings file.
	ConfigFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultGoogleList is the Google Tasks list used by push.
	DefaultGoogleList = "Tasker"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// TasksPath is the JSON file the task store is backed by.
	TasksPath string

	// LogLevel is a zap level name; empty means the default.
	LogLevel string

	// GoogleList is the Google Tasks list title push writes to.
	GoogleList string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with defaults for the given config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasker or $HOME/.config/tasker.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:        dir,
		TasksPath:  filepath.Join(dir, TasksFile),
		GoogleList: DefaultGoogleList,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFilePath returns the path to the TOML settings file.
func (c *Config) ConfigFilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory (mode 0700) if needed.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0o700)
}

// HasOAuthClient reports whether oauth_client.json exists.
func (c *Config) HasOAuthClient() bool { return exists(c.OAuthClientPath()) }

// HasToken reports whether token.json exists.
func (c *Config) HasToken() bool { return exists(c.TokenPath()) }

// RemoveToken deletes token.json. oauth_client.json is left alone.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
