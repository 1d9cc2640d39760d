package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	ConvertKit ConvertKitConfig `yaml:"convertkit"`
	Events     EventsConfig     `yaml:"events"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type ConvertKitConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	TagID   string `yaml:"tag_id"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

// PacingConfig carries the UI pacing delays. They exist for perceived
// progress, not correctness.
type PacingConfig struct {
	FadeMs        int `yaml:"fade_ms"`
	AnswerDelayMs int `yaml:"answer_delay_ms"`
	LoadingMinMs  int `yaml:"loading_min_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Fade() time.Duration {
	return time.Duration(c.Pacing.FadeMs) * time.Millisecond
}

func (c *Config) AnswerDelay() time.Duration {
	return time.Duration(c.Pacing.AnswerDelayMs) * time.Millisecond
}

func (c *Config) LoadingMin() time.Duration {
	return time.Duration(c.Pacing.LoadingMinMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 9090,
		},
		ConvertKit: ConvertKitConfig{
			BaseURL: "https://api.convertkit.com",
		},
		Pacing: PacingConfig{
			FadeMs:        300,
			AnswerDelayMs: 400,
			LoadingMinMs:  1200,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DIAG_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("DIAG_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("DIAG_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("DIAG_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DIAG_CONVERTKIT_BASE_URL"); v != "" {
		cfg.ConvertKit.BaseURL = v
	}
	if v := os.Getenv("CONVERTKIT_API_KEY"); v != "" {
		cfg.ConvertKit.APIKey = v
	}
	if v := os.Getenv("CONVERTKIT_TAG_ID"); v != "" {
		cfg.ConvertKit.TagID = v
	}
	if v := os.Getenv("DIAG_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("DIAG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
