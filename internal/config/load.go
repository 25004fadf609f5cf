package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override config.toml.
const (
	EnvTasksFile  = "TASKER_FILE"
	EnvLogLevel   = "TASKER_LOG_LEVEL"
	EnvGoogleList = "TASKER_GOOGLE_LIST"
)

// fileConfig mirrors config.toml.
type fileConfig struct {
	TasksFile string `toml:"tasks_file"`
	LogLevel  string `toml:"log_level"`
	Google    struct {
		List string `toml:"list"`
	} `toml:"google"`
}

// Load builds a Config from, in increasing precedence:
//  1. Defaults
//  2. config.toml in the config directory
//  3. Environment variables (a .env file in the working directory is loaded first)
//  4. tasksFile, normally the --file flag
func Load(configDir, tasksFile string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	// Existing environment variables win over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg.loadEnv()

	if tasksFile != "" {
		cfg.TasksPath = tasksFile
	}
	return cfg, nil
}

func (c *Config) loadFile() error {
	path := c.ConfigFilePath()
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading config file %s: %w", path, err)
	}

	if fc.TasksFile != "" {
		c.TasksPath = c.resolve(fc.TasksFile)
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.Google.List != "" {
		c.GoogleList = fc.Google.List
	}
	return nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvTasksFile); v != "" {
		c.TasksPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvGoogleList); v != "" {
		c.GoogleList = v
	}
}

// resolve makes a relative path from config.toml relative to the config directory.
func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}
