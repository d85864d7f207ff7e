package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend API base, including the /api prefix
	APIBaseURL string

	// Client behaviour
	RequestTimeout time.Duration
	DefaultCountry string

	// Stub server
	StubAddr  string
	JWTSecret string

	// Development mode enables debug logging
	Development bool
}

func Load() *Config {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 30*time.Second),
		DefaultCountry: getEnv("DEFAULT_COUNTRY", ""),
		StubAddr:       getEnv("STUB_ADDR", ":8080"),
		JWTSecret:      getEnv("JWT_SECRET", "atelier-secret-key-2024"),
		Development:    getBoolEnv("DEVELOPMENT", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
