// Command ingest runs the NHL hit-event ingestion job once and exits.
//
// It recreates the store from scratch, loads the season skater leaderboard,
// then walks the configured team's regular-season schedule recording every
// body-check event. Run it on demand:
//
//	nhl-ingest run
//	nhl-ingest run --team TOR --season 20242025
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"nhlhits/ingestion/internal/client"
	"nhlhits/ingestion/internal/config"
	"nhlhits/ingestion/internal/pipeline"
	"nhlhits/ingestion/internal/repository"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "nhl-ingest",
		Short: "NHL hit-event ingestion job",
	}

	root.AddCommand(runCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var team, season string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reset the store and ingest one team's season",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad()
			if team != "" {
				cfg.Team = team
			}
			if season != "" {
				cfg.Season = season
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			setupLogger(cfg)
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team abbreviation (overrides NHL_TEAM)")
	cmd.Flags().StringVar(&season, "season", "", "Season label YYYYYYYY (overrides NHL_SEASON)")
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log.Info().
		Str("team", cfg.Team).
		Str("season", cfg.Season).
		Msg("Starting NHL hit-event ingestion")

	db, err := repository.NewDatabase(ctx, repository.Config{
		Host:     cfg.DatabaseHost,
		Port:     strconv.Itoa(cfg.DatabasePort),
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Database: cfg.DatabaseName,
		SSLMode:  cfg.DatabaseSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	log.Info().Msg("Initializing database...")
	if err := db.ResetSchema(ctx, cfg.EnforceForeignKeys); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if cfg.EnableMetrics {
		go startMetricsServer(strconv.Itoa(cfg.MetricsPort))
	}

	nhl := client.NewClient(cfg.NHLWebBaseURL, cfg.NHLStatsBaseURL, cfg.RequestTimeout)

	start := time.Now()
	result := pipeline.New(nhl, db, cfg.Team, cfg.Season, cfg.GamePace).Run(ctx)

	log.Info().
		Dur("duration", time.Since(start).Round(time.Second)).
		Str("summary", result.Summary()).
		Msg("Ingestion run complete")

	for _, e := range result.Errors {
		log.Warn().Str("error", e).Msg("Run diagnostic")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg *config.Config) {
	// Pretty console logging in development
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("level", level.String()).
		Msg("Logger initialized")
}

// startMetricsServer starts the Prometheus metrics HTTP server
func startMetricsServer(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("port", port).Msg("Starting metrics server")

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("Metrics server failed")
	}
}
