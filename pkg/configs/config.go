// pkg/configs/config.go
package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config collects everything read from the environment at startup.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Storage StorageConfig
}

// Load reads the configuration from the environment. Secrets have no
// defaults; a missing JWT_SECRET is a startup failure, never a fallback.
func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	cfg := &Config{
		Port:          envOr("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     jwtSecret,
		TokenTTL:      envDurationOr("TOKEN_TTL", 72*time.Hour),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envIntOr("REDIS_DB", 0),
		Storage:       loadStorageConfig(),
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
