package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — the only hard requirement; there is no default on purpose.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis — optional; empty disables the dashboard cache.
	RedisURL string `mapstructure:"REDIS_URL"`

	// DashboardCacheTTL is the cache lifetime in seconds.
	DashboardCacheTTL int `mapstructure:"DASHBOARD_CACHE_TTL"`
}

// Load reads configuration from environment variables (and optional .env file).
// A missing DATABASE_URL is a hard error: the service has no source of truth
// without it and must refuse to start.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("DASHBOARD_CACHE_TTL", 30)

	// No default on purpose — AutomaticEnv alone does not surface unknown keys
	// through Unmarshal, so bind it explicitly.
	_ = viper.BindEnv("DATABASE_URL")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return cfg, nil
}
