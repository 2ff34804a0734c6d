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
	Storage    StorageConfig    `yaml:"storage"`
	Model      ModelConfig      `yaml:"model"`
	Events     EventsConfig     `yaml:"events"`
	Prediction PredictionConfig `yaml:"prediction"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

// StorageConfig selects the history medium. Backend is one of
// "file", "postgres", "redis".
type StorageConfig struct {
	Backend     string `yaml:"backend"`
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"database_url"`
	RedisAddr   string `yaml:"redis_addr"`
}

type ModelConfig struct {
	Path string `yaml:"path"`
}

// EventsConfig holds the NATS URL. Empty disables event publishing.
type EventsConfig struct {
	URL string `yaml:"url"`
}

type PredictionConfig struct {
	// RevealDelayMs paces the score reveal for clients that want the
	// original countup effect. Zero means no delay.
	RevealDelayMs int `yaml:"reveal_delay_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.Prediction.RevealDelayMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 9090,
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    "student_predictions_data.json",
		},
		Model: ModelConfig{
			Path: "best_model.json",
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
	if v := os.Getenv("PREDICT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PREDICT_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PREDICT_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("PREDICT_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("PREDICT_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("PREDICT_DATABASE_URL"); v != "" {
		cfg.Storage.DatabaseURL = v
	}
	if v := os.Getenv("PREDICT_REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("PREDICT_MODEL_PATH"); v != "" {
		cfg.Model.Path = v
	}
	if v := os.Getenv("PREDICT_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("PREDICT_REVEAL_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Prediction.RevealDelayMs = n
		}
	}
	if v := os.Getenv("PREDICT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
