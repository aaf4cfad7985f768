// Package config loads the bot configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds everything the bot needs at startup
type Config struct {
	// Discord
	DiscordToken       string        `env:"DISCORD_TOKEN,notEmpty"`
	ApplicationID      string        `env:"APPLICATION_ID"`
	GuildID            string        `env:"GUILD_ID"`
	InteractionTimeout time.Duration `env:"INTERACTION_TIMEOUT" envDefault:"3s"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// MatchTTL is how long an untouched match and its ledger are kept
	MatchTTL time.Duration `env:"MATCH_TTL" envDefault:"72h"`

	// Game
	RollBudget int   `env:"ROLL_BUDGET" envDefault:"12"`
	DiceSeed   int64 `env:"DICE_SEED"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY"`
}

// Load reads the given .env files, or ./.env when none are given, and then
// parses the environment. Missing files are skipped. Variables already set
// in the environment win over the files.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return Parse()
}

// Parse builds a Config from the environment alone
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	if c.RollBudget < 0 {
		return errors.New("ROLL_BUDGET cannot be negative")
	}
	if c.MatchTTL < 0 {
		return errors.New("MATCH_TTL cannot be negative")
	}
	if c.InteractionTimeout < 0 {
		return errors.New("INTERACTION_TIMEOUT cannot be negative")
	}
	if c.RedisDB < 0 {
		return errors.New("REDIS_DB cannot be negative")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}
