// Package config loads the server configuration from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

// Environments
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// MemoryStore as REDIS_ADDR keeps saves in process memory instead of Redis.
const MemoryStore = "memory"

// Config holds the runtime settings of the server
type Config struct {
	Port        int
	Environment string
	LogLevel    slog.Level
	RedisAddr   string
	CatalogPath string
	// SaveTTL expires saves that are not written for this long; zero keeps
	// them forever.
	SaveTTL time.Duration
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() (*Config, error) {
	vb := errors.NewValidationBuilder()

	port, err := strconv.Atoi(getEnv("PORT", "50051"))
	if err != nil {
		vb.InvalidField("PORT", "must be a number")
	}

	var ttl time.Duration
	if raw := getEnv("SAVE_TTL", ""); raw != "" {
		ttl, err = time.ParseDuration(raw)
		if err != nil {
			vb.InvalidField("SAVE_TTL", "must be a duration such as 720h")
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        port,
		Environment: getEnv("ENVIRONMENT", EnvironmentDevelopment),
		LogLevel:    ParseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		CatalogPath: getEnv("CATALOG_PATH", "configs/skilltrees.yaml"),
		SaveTTL:     ttl,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings after flags have been applied
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("port", c.Port, 1, vb)
	if c.Port > 65535 {
		vb.InvalidField("port", "must be at most 65535")
	}
	errors.ValidateEnum("environment", c.Environment,
		[]string{EnvironmentDevelopment, EnvironmentProduction}, vb)
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	errors.ValidateRequired("catalog_path", c.CatalogPath, vb)
	if c.SaveTTL < 0 {
		vb.InvalidField("save_ttl", "must not be negative")
	}
	return vb.Build()
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// ParseLogLevel maps a level name to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
