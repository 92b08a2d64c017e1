package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	errInvalidPort             = errors.New("config: invalid PORT number")
	errShutdownTimeoutOutRange = errors.New("config: SHUTDOWN_TIMEOUT_SECONDS must be 1-120")
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port              string
	LogLevel          string
	CORSAllowedOrigin string
	ShutdownTimeout   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Variables from a .env file in the working directory are applied first; real
// environment variables take precedence over it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading .env: %w", err)
	}

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "ERROR"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		ShutdownTimeout:   time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.ShutdownTimeout < time.Second || c.ShutdownTimeout > 120*time.Second {
		return fmt.Errorf("%w: got %s", errShutdownTimeoutOutRange, c.ShutdownTimeout)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
