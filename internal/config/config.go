package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	NatsURL     string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	SendgridAPIKey string
	EmailSender    string

	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
}

func Load() *Config {
	return &Config{
		Port:        GetEnvAsString("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		NatsURL:     os.Getenv("NATS_URL"),

		JWTSecret:  GetEnvAsString("JWT_SECRET", "dev-secret-change-me"),
		AccessTTL:  GetEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTTL: GetEnvAsDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    GetEnvAsString("EMAIL_SENDER", "no-reply@oceans.app"),

		RateLimitWindow:      GetEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMaxRequests: GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
	}
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
