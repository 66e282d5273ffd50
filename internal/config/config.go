package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port             string
	AllowedOrigins   []string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration
	RequestBodyLimit int64
}

// Load reads the optional .env file and then the process environment.
// Variables already set in the environment win over the file.
// The returned bool reports whether a .env file was loaded.
func Load(files ...string) (*Config, bool, error) {
	loaded := godotenv.Load(files...) == nil

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return nil, loaded, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return nil, loaded, fmt.Errorf("LOG_FORMAT must be json or console, got %q", cfg.LogFormat)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, loaded, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	limit, err := strconv.ParseInt(getEnv("REQUEST_BODY_LIMIT", "1048576"), 10, 64)
	if err != nil {
		return nil, loaded, fmt.Errorf("REQUEST_BODY_LIMIT: %w", err)
	}
	if limit <= 0 {
		return nil, loaded, fmt.Errorf("REQUEST_BODY_LIMIT must be positive, got %d", limit)
	}
	cfg.RequestBodyLimit = limit

	return cfg, loaded, nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
