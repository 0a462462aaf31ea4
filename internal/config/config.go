package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultReviewsPrefix = "/reviews"

type Config struct {
	DatabaseURL        string
	MigrationsPath     string
	Port               string
	ReviewsPrefix      string
	LogLevel           string
	LogFormat          string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// Load reads configuration from the environment. Values from a .env file
// fill in anything the process environment does not already set.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		MigrationsPath:     getenv("MIGRATIONS_PATH", "internal/db/migrations"),
		Port:               getenv("PORT", "8080"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          strings.ToLower(getenv("LOG_FORMAT", "json")),
		RateLimitPerMinute: 100,
		RequestTimeout:     15 * time.Second,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	prefix, err := NormalizePrefix(getenv("REVIEWS_PREFIX", DefaultReviewsPrefix))
	if err != nil {
		return Config{}, err
	}
	cfg.ReviewsPrefix = prefix

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q (use json or console)", cfg.LogFormat)
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %q", v)
		}
		cfg.RateLimitPerMinute = n
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT %q", v)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// NormalizePrefix checks a mount prefix and strips any trailing slash.
func NormalizePrefix(p string) (string, error) {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("invalid REVIEWS_PREFIX %q: must start with /", p)
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "", fmt.Errorf("invalid REVIEWS_PREFIX: must not be the root path")
	}
	return p, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
