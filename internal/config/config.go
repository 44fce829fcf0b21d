// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full configuration surface of the service.
type Config struct {
	Addr     string `env:"ADDR" envDefault:":8080"`
	RedisURL string `env:"REDIS_URL"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"password"`
	// When set, login verifies against this bcrypt hash instead of
	// AdminPassword.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	SessionDurationSeconds int   `env:"SESSION_DURATION" envDefault:"7200"`
	MaxRequestBytes        int64 `env:"MAX_REQUEST_BYTES" envDefault:"1048576"`

	// Declared for parity with the original deployment; not enforced.
	RateLimitMaxRequests int `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitWindowMs    int `env:"RATE_LIMIT_WINDOW_MS" envDefault:"60000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SessionDuration returns the configured session lifetime.
func (c Config) SessionDuration() time.Duration {
	return time.Duration(c.SessionDurationSeconds) * time.Second
}
