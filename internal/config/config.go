package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port    string
	GinMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// TokenSecret signs bearer tokens; TokenPrefix is the scheme name
	// expected in the Authorization header.
	TokenSecret   string
	TokenPrefix   string
	TokenDuration time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		GinMode:       getenv("GIN_MODE", ""),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", ""),
		DBName:        getenv("DB_NAME", "payments"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		TokenSecret:   getenv("TOKEN_SECRET", "insecure-dev-secret"),
		TokenPrefix:   getenv("TOKEN_PREFIX", "Token"),
		TokenDuration: time.Duration(atoi("TOKEN_DURATION_HOURS", 24)) * time.Hour,
	}
}
