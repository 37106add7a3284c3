package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const devSessionSecret = "streetbite-dev-secret"

type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	SessionSecret  string
	SessionTTL     time.Duration
	AllowedOrigins []string
	SeedFixtures   bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "8080"),
		Environment:    getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AllowedOrigins: splitOrigins(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	ttl, err := time.ParseDuration(getEnvWithDefault("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL is invalid: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	cfg.SessionTTL = ttl

	seed, err := strconv.ParseBool(getEnvWithDefault("SEED_FIXTURES", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED_FIXTURES is invalid: %w", err)
	}
	cfg.SeedFixtures = seed

	// Validate required fields
	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET is required")
		}
		cfg.SessionSecret = devSessionSecret
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("ALLOWED_ORIGINS lists no origins")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
