package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                   int    `env:"PORT" envDefault:"8080"`
	DatabaseURL            string `env:"DATABASE_URL,required"`
	RedisURL               string `env:"REDIS_URL,required"`
	CartViewTTLSeconds     int    `env:"CART_VIEW_TTL_SECONDS" envDefault:"300"`
	CartRetentionDays      int    `env:"CART_RETENTION_DAYS" envDefault:"30"`
	CartRateLimitPerMinute int    `env:"CART_RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	StaticDir              string `env:"STATIC_DIR" envDefault:"static"`
	LogLevel               string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) CartViewTTL() time.Duration {
	return time.Duration(c.CartViewTTLSeconds) * time.Second
}

func (c *Config) CartRetention() time.Duration {
	return time.Duration(c.CartRetentionDays) * 24 * time.Hour
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) Validate(isProduction bool) error {
	if c.CartRetentionDays < 1 {
		return fmt.Errorf("CART_RETENTION_DAYS must be at least 1")
	}
	if c.CartRateLimitPerMinute < 1 {
		return fmt.Errorf("CART_RATE_LIMIT_PER_MINUTE must be at least 1")
	}

	if isProduction && strings.HasPrefix(c.RedisURL, "redis://") {
		log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
