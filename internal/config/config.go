package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// AuthConfig carries the static shared secret checked by the key guard.
// There is no session or expiry notion; a single process-wide value.
type AuthConfig struct {
	APIKeyHeader string
	APIKey       string
}

type RateLimitConfig struct {
	Enabled bool
	Window  time.Duration
	Limit   int
}

// Load reads config from environment variables, falling back to development
// defaults.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Userbook API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			Database:       getEnv("DB_NAME", "userbook"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       getEnvInt("DB_MAX_CONNS", 25),
			MinConns:       getEnvInt("DB_MIN_CONNS", 5),
			MaxRetries:     getEnvInt("DB_MAX_RETRIES", 5),
			RetryDelay:     time.Duration(getEnvInt("DB_RETRY_DELAY_MS", 1000)) * time.Millisecond,
			ConnectTimeout: time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_MS", 5000)) * time.Millisecond,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			APIKeyHeader: getEnv("API_KEY_HEADER", "api-key"),
			APIKey:       getEnv("API_KEY", "dev-api-key"),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnv("RATE_LIMIT_ENABLED", "true") == "true",
			Window:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SEC", 900)) * time.Second,
			Limit:   getEnvInt("RATE_LIMIT_MAX", 100),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configs that must not reach production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.APIKey == "dev-api-key" || c.Auth.APIKey == "" {
			return fmt.Errorf("API_KEY must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}
	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
