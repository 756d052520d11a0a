package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Team:             "PIT",
		Season:           "20242025",
		RequestTimeout:   10 * time.Second,
		DatabaseHost:     "localhost",
		DatabasePort:     5432,
		DatabaseName:     "nhl_team_data",
		DatabaseUser:     "nhl_user",
		DatabasePassword: "secret",
		DatabaseSSLMode:  "disable",
		AppEnv:           "development",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing password", func(c *Config) { c.DatabasePassword = "" }},
		{"missing team", func(c *Config) { c.Team = "" }},
		{"short season", func(c *Config) { c.Season = "2024" }},
		{"non-numeric season", func(c *Config) { c.Season = "2024-202" }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := validConfig()
	dsn := cfg.DatabaseDSN()
	assert.Equal(t, "host=localhost port=5432 user=nhl_user password=secret dbname=nhl_team_data sslmode=disable", dsn)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api-web.nhle.com", cfg.NHLWebBaseURL)
	assert.Equal(t, "https://api.nhle.com", cfg.NHLStatsBaseURL)
	assert.Equal(t, "PIT", cfg.Team)
	assert.Equal(t, "20242025", cfg.Season)
	assert.Equal(t, time.Second, cfg.GamePace)
	assert.False(t, cfg.EnforceForeignKeys)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("NHL_TEAM", "TOR")
	t.Setenv("NHL_SEASON", "20232024")
	t.Setenv("GAME_PACE", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "TOR", cfg.Team)
	assert.Equal(t, "20232024", cfg.Season)
	assert.Equal(t, 250*time.Millisecond, cfg.GamePace)
}
