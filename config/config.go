package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pricing-agent/domain"
	"pricing-agent/service"
)

// Config holds the application settings. The effective tax rate and the
// cache/rate-limit bounds are the only tunables; everything else the
// calculator needs arrives per request.
type Config struct {
	Addr               string
	RedisAddr          string // empty: bounded in-memory break-even cache
	LogLevel           string
	TaxRate            float64
	RateLimit          int // requests per window per client IP
	RateLimitWindow    time.Duration
	BreakEvenCacheSize int
}

// Load reads configuration from a .env file and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, using environment only")
	}

	return &Config{
		Addr:               getEnv("ADDR", ":8080"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		TaxRate:            getEnvFloat("TAX_RATE", domain.EffectiveTaxRate),
		RateLimit:          getEnvInt("RATE_LIMIT", 30),
		RateLimitWindow:    getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		BreakEvenCacheSize: getEnvInt("BREAKEVEN_CACHE_SIZE", service.BreakEvenCacheSize),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using default", key, raw)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using default", key, raw)
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using default", key, raw)
		return defaultValue
	}
	return value
}
