package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config stores brand server runtime configuration.
type Config struct {
	ServerPort      string
	LogLevel        string
	ShutdownTimeout time.Duration

	Site SiteConfig

	Admin AdminConfig

	Compression CompressionConfig

	RateLimit RateLimitConfig
}

// SiteConfig locates the served directory and its manifest.
type SiteConfig struct {
	Root         string
	ManifestFile string
}

// AdminConfig controls the health/metrics listener. Empty Addr disables it.
type AdminConfig struct {
	Addr string
}

type CompressionConfig struct {
	Enabled bool
}

// RateLimitConfig controls global and per-IP limits. TrustProxy keys clients
// by X-Forwarded-For / X-Real-IP; leave it off unless a proxy sets them.
type RateLimitConfig struct {
	Enabled    bool
	RPS        float64
	Burst      int
	TrustProxy bool
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8081"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Site: SiteConfig{
			Root:         getEnv("SITE_ROOT", "."),
			ManifestFile: getEnv("MANIFEST_FILE", "package.json"),
		},
		Admin: AdminConfig{
			Addr: getEnv("ADMIN_ADDR", ""),
		},
		Compression: CompressionConfig{
			Enabled: getEnvBool("COMPRESSION_ENABLED", false),
		},
		RateLimit: RateLimitConfig{
			Enabled:    getEnvBool("RATE_LIMIT_ENABLED", false),
			RPS:        getEnvFloat("RATE_LIMIT_RPS", 50),
			Burst:      getEnvInt("RATE_LIMIT_BURST", 100),
			TrustProxy: getEnvBool("RATE_LIMIT_TRUST_PROXY", false),
		},
	}

	port, err := strconv.Atoi(cfg.ServerPort)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be a TCP port, got %q", cfg.ServerPort)
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RPS <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive")
		}
		if cfg.RateLimit.Burst <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be positive")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
