// Package config loads bot configuration from an optional YAML file, a .env
// file and the process environment, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHTTPAddr  = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultWorkers   = 8
)

type Config struct {
	Token             string  `yaml:"token"`
	AdminIDs          []int64 `yaml:"admin_chat_ids"`
	StatsDSN          string  `yaml:"stats_sqlite_dsn"` // empty keeps stats in memory
	HTTPAddr          string  `yaml:"http_addr"`
	LogLevel          string  `yaml:"log_level"`
	LogFormat         string  `yaml:"log_format"`
	Workers           int     `yaml:"workers"`
	AllowPrivateChats bool    `yaml:"allow_private_chats"`
}

func Default() *Config {
	return &Config{
		HTTPAddr:  DefaultHTTPAddr,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Workers:   DefaultWorkers,
	}
}

// Load reads .env if present, then the YAML file named by BOT_CONFIG (a
// missing file is not an error), then applies environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("BOT_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("ADMIN_CHAT_IDS")); v != "" {
		c.AdminIDs = ParseAdminIDs(v)
	}
	if v := os.Getenv("STATS_SQLITE_DSN"); v != "" {
		c.StatsDSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("ALLOW_PRIVATE_CHATS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ALLOW_PRIVATE_CHATS: %w", err)
		}
		c.AllowPrivateChats = b
	}
	return nil
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// AdminSet returns admin chat ids as a lookup set.
func (c *Config) AdminSet() map[int64]struct{} {
	ids := make(map[int64]struct{}, len(c.AdminIDs))
	for _, id := range c.AdminIDs {
		ids[id] = struct{}{}
	}
	return ids
}

// ParseAdminIDs parses a comma separated list of chat ids, skipping blanks
// and malformed entries.
func ParseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
