package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the test and restores it afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

var allKeys = []string{
	"DISCORD_TOKEN", "APPLICATION_ID", "GUILD_ID", "INTERACTION_TIMEOUT",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "MATCH_TTL",
	"ROLL_BUDGET", "DICE_SEED", "LOG_LEVEL", "LOG_PRETTY",
}

func TestParse_Defaults(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 72*time.Hour, cfg.MatchTTL)
	assert.Equal(t, 12, cfg.RollBudget)
	assert.Equal(t, int64(0), cfg.DiceSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, 3*time.Second, cfg.InteractionTimeout)
}

func TestParse_Overrides(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GUILD_ID", "guild")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MATCH_TTL", "1h")
	t.Setenv("ROLL_BUDGET", "20")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "guild", cfg.GuildID)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Hour, cfg.MatchTTL)
	assert.Equal(t, 20, cfg.RollBudget)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing token",
			env:  map[string]string{},
		},
		{
			name: "bad duration",
			env:  map[string]string{"DISCORD_TOKEN": "token", "MATCH_TTL": "banana"},
		},
		{
			name: "negative roll budget",
			env:  map[string]string{"DISCORD_TOKEN": "token", "ROLL_BUDGET": "-1"},
		},
		{
			name: "unknown log level",
			env:  map[string]string{"DISCORD_TOKEN": "token", "LOG_LEVEL": "loud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, allKeys...)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("GUILD_ID", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DISCORD_TOKEN=from-file\nGUILD_ID=from-file\nROLL_BUDGET=8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.DiscordToken)
	assert.Equal(t, "from-env", cfg.GuildID, "the environment wins over the file")
	assert.Equal(t, 8, cfg.RollBudget)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	unsetEnv(t, allKeys...)
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.DiscordToken)
}
