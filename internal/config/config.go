package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig

	CatalogPath string        `env:"CATALOG_PATH" envDefault:"data/catalog.yaml"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	BuildTTL    time.Duration `env:"BUILD_TTL" envDefault:"720h"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL selects
// the in-memory build store.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// Load loads configuration from environment variables. Callers load .env
// first when they want one.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.BuildTTL < 0 {
		return nil, fmt.Errorf("BUILD_TTL must not be negative, got %s", cfg.BuildTTL)
	}
	return cfg, nil
}

// ValidateDiscord checks the fields the bot cannot start without
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}
