// Package config reads the runtime configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port   string
	APIURL string

	// Database
	DBPath string

	// Logging, "human" or "json". Empty selects by gin mode.
	LogFormat string
	GinMode   string

	SessionLifetime time.Duration
}

func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", ""),

		DBPath: getEnv("DB_PATH", "data/gorm.db"),

		LogFormat: getEnv("LOG_FORMAT", ""),
		GinMode:   getEnv("GIN_MODE", "release"),

		SessionLifetime: getEnvDuration("SESSION_LIFETIME", 14*24*time.Hour),
	}
}

// Validate returns all configuration problems combined into one error.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIURL == "" {
		errors = append(errors, "environment variable API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': must be an absolute URL", c.APIURL))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of [debug release test]", c.GinMode))
	}

	if c.SessionLifetime < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session lifetime %v: must be at least 1 minute", c.SessionLifetime))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// URL returns the parsed API_URL. Call Validate first.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
