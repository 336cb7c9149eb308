// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPlaceholderImageURL is shown when a product image fails to load.
const DefaultPlaceholderImageURL = "https://via.placeholder.com/150"

// Config holds configuration knobs for the HTTP server and the card renderer.
type Config struct {
	Port                string
	DatabaseURL         string
	PlaceholderImageURL string
	AllowFreePrice      bool
	RejectInvalidPrice  bool
	LogLevel            string
	ShutdownTimeout     time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := strings.TrimSpace(getenv(key, ""))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load seeds the environment from a .env file when one exists and collects
// configuration with defaults.
func Load() Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv collects configuration from the current environment only.
func FromEnv() Config {
	return Config{
		Port:                getenv("APP_PORT", "8080"),
		DatabaseURL:         getenv("DATABASE_URL", ""),
		PlaceholderImageURL: getenv("PLACEHOLDER_IMAGE_URL", DefaultPlaceholderImageURL),
		AllowFreePrice:      boolenv("CARD_ALLOW_FREE_PRICE", false),
		RejectInvalidPrice:  boolenv("CARD_REJECT_INVALID_PRICE", true),
		LogLevel:            strings.ToLower(getenv("LOG_LEVEL", "info")),
		ShutdownTimeout:     durenvs("SHUTDOWN_TIMEOUT", 10),
	}
}
