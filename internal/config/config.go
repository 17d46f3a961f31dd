package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8000"`
	DBDriver        string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseDSN     string        `env:"DATABASE_DSN" envDefault:"business.db"`
	JWTSecretKey    string        `env:"JWT_SECRET_KEY,notEmpty"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"0s"`
	RedisURL        string        `env:"REDIS_URL"`
	TokenCacheTTL   time.Duration `env:"TOKEN_CACHE_TTL" envDefault:"15m"`
	NatsURL         string        `env:"NATS_URL"`
	LoginRateLimit  float64       `env:"LOGIN_RATE_LIMIT" envDefault:"0.2"`
	LoginRateBurst  int           `env:"LOGIN_RATE_BURST" envDefault:"5"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL < 0 {
		return nil, errors.New("TOKEN_TTL must not be negative")
	}
	return &cfg, nil
}
