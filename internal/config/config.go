// Package config provides application configuration loading from environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port      int
	DBPath    string
	LogLevel  string
	LogFormat string // "text" (tint) or "json"
}

// Load reads configuration from environment variables, with a .env file as
// fallback. Missing values get sensible defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      8080,
		DBPath:    "./data/budgetguru.db",
		LogLevel:  "info",
		LogFormat: "text",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}
	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DBPath = path
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}
	return cfg
}
