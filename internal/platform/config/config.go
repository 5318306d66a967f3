package config

import (
	"os"
	"time"

	platformstrings "deedflow/pkg/platform/strings"
)

// Config captures process-level configuration. Everything is optional except
// the address; unset backends fall back to in-memory implementations so local
// development stays zero-config.
type Config struct {
	Addr           string
	LogLevel       string
	JWTSigningKey  string
	AdminTokenHash string

	DatabaseURL  string
	Redis        RedisConfig
	KafkaBrokers []string
	// FinanceURL is the billing service base URL. Empty disables the
	// payment overlay.
	FinanceURL string

	// NoteDebounce is the coalescing window for free-text note edits.
	NoteDebounce time.Duration
	// ProgressCacheTTL bounds staleness of cached progress snapshots.
	ProgressCacheTTL time.Duration
}

// RedisConfig holds connection settings for the progress snapshot cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("DEEDFLOW_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = platformstrings.SplitList(raw)
	}

	return Config{
		Addr:           addr,
		LogLevel:       os.Getenv("DEEDFLOW_LOG_LEVEL"),
		JWTSigningKey:  jwtSigningKey,
		AdminTokenHash: os.Getenv("DEEDFLOW_ADMIN_TOKEN_HASH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaBrokers:     brokers,
		FinanceURL:       os.Getenv("DEEDFLOW_FINANCE_URL"),
		NoteDebounce:     envDuration("DEEDFLOW_NOTE_DEBOUNCE", time.Second),
		ProgressCacheTTL: envDuration("DEEDFLOW_PROGRESS_CACHE_TTL", 30*time.Second),
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
