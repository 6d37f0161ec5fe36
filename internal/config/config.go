package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the full service configuration. It is read from environment
// variables once at startup and treated as immutable afterwards.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL,notEmpty"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	JWTSecret       string        `env:"JWT_SECRET,notEmpty"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	GoogleClientIDs []string      `env:"GOOGLE_CLIENT_IDS,notEmpty" envSeparator:","`

	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`
	BrowseCacheTTL time.Duration `env:"BROWSE_CACHE_TTL" envDefault:"5m"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
