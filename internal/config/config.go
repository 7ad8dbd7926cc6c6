package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort      = "4000"
	defaultDSN       = "rental.db"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultTokenTTL  = "168h" // 7 days
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	ttlRaw := getEnv("TOKEN_TTL", defaultTokenTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: invalid duration %q: %w", ttlRaw, err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be > 0")
	}
	cfg.TokenTTL = ttl

	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}
