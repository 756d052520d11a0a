package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// NHL APIs
	NHLWebBaseURL   string        `envconfig:"NHL_WEB_BASE_URL" default:"https://api-web.nhle.com"`
	NHLStatsBaseURL string        `envconfig:"NHL_STATS_BASE_URL" default:"https://api.nhle.com"`
	RequestTimeout  time.Duration `envconfig:"NHL_REQUEST_TIMEOUT" default:"10s"`

	// Run parameters
	Team     string        `envconfig:"NHL_TEAM" default:"PIT"`
	Season   string        `envconfig:"NHL_SEASON" default:"20242025"`
	GamePace time.Duration `envconfig:"GAME_PACE" default:"1s"`

	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"nhl_team_data"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"nhl_user"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Schema options. Hit rows reference players that may never appear in the
	// skater leaderboard (goaltenders deliver and absorb hits too), so foreign
	// keys are opt-in.
	EnforceForeignKeys bool `envconfig:"ENFORCE_FOREIGN_KEYS" default:"false"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"false"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from a .env file if one is present
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}

	if c.Team == "" {
		return fmt.Errorf("NHL_TEAM is required")
	}

	// Season spans two consecutive years, e.g. "20242025"
	if len(c.Season) != 8 {
		return fmt.Errorf("NHL_SEASON must be an 8-digit season label, got %q", c.Season)
	}
	for _, r := range c.Season {
		if r < '0' || r > '9' {
			return fmt.Errorf("NHL_SEASON must be an 8-digit season label, got %q", c.Season)
		}
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("NHL_REQUEST_TIMEOUT must be positive")
	}

	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MustLoad loads configuration or exits on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
