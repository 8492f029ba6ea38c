package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret  string
	APIKeyHash string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SSEKeepAlive      time.Duration
	StaleSessionAfter time.Duration
	StaleSessionCron  string
	ImportRateLimit   string
	LogLevel          slog.Level
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in the
// environment take precedence over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	config := Config{
		HTTPPort:         envOr("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           envOr("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOr("DB_SSLMODE", "disable"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		APIKeyHash:       os.Getenv("API_KEY_HASH"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		StaleSessionCron: os.Getenv("STALE_SESSION_CRON"),
		ImportRateLimit:  envOr("IMPORT_RATE_LIMIT", "60-M"),
	}

	var redisDBErr, keepAliveErr, staleErr, levelErr error
	config.RedisDB, redisDBErr = intEnv("REDIS_DB", 0)
	config.SSEKeepAlive, keepAliveErr = durationEnv("SSE_KEEPALIVE", time.Second)
	config.StaleSessionAfter, staleErr = durationEnv("STALE_SESSION_AFTER", 2*time.Hour)
	levelErr = config.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "INFO")))
	if levelErr != nil {
		levelErr = fmt.Errorf("LOG_LEVEL: %w", levelErr)
	}

	var missing []string
	for key, value := range map[string]string{
		"DB_HOST":    config.DBHost,
		"DB_USER":    config.DBUser,
		"DB_NAME":    config.DBName,
		"JWT_SECRET": config.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	var missingErr error
	if len(missing) > 0 {
		slices.Sort(missing)
		missingErr = fmt.Errorf("missing required variables: %s", strings.Join(missing, ", "))
	}

	if err := errors.Join(missingErr, redisDBErr, keepAliveErr, staleErr, levelErr); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, raw)
	}
	return value, nil
}
