package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ResetSchema destroys any prior run's relations and recreates them empty.
// There is no merge with previous runs: every run starts from a fresh store.
// Foreign keys from hits to games and players are declared only when
// enforcement is enabled in the config.
func (db *Database) ResetSchema(ctx context.Context, enforceFKs bool) error {
	drops := []string{
		`DROP TABLE IF EXISTS hits`,
		`DROP TABLE IF EXISTS games`,
		`DROP TABLE IF EXISTS players`,
	}

	for _, stmt := range drops {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop relation: %w", err)
		}
	}

	creates := []string{
		`CREATE TABLE games (
			game_id    BIGINT PRIMARY KEY,
			game_date  TEXT,
			home_team  TEXT,
			away_team  TEXT,
			home_score INTEGER,
			away_score INTEGER,
			season     TEXT
		)`,
		`CREATE TABLE players (
			player_id       BIGINT PRIMARY KEY,
			full_name       TEXT,
			team            TEXT,
			position        TEXT,
			games_played    INTEGER,
			goals           INTEGER,
			assists         INTEGER,
			points          INTEGER,
			plus_minus      INTEGER,
			penalty_minutes INTEGER
		)`,
		hitsTableDDL(enforceFKs),
	}

	for _, stmt := range creates {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create relation: %w", err)
		}
	}

	log.Info().
		Bool("enforce_fks", enforceFKs).
		Msg("Schema reset: games, players, hits recreated")

	return nil
}

func hitsTableDDL(enforceFKs bool) string {
	fkGame, fkHitter, fkHittee := "", "", ""
	if enforceFKs {
		fkGame = " REFERENCES games (game_id)"
		fkHitter = " REFERENCES players (player_id)"
		fkHittee = " REFERENCES players (player_id)"
	}

	return fmt.Sprintf(`CREATE TABLE hits (
		hit_id       BIGSERIAL PRIMARY KEY,
		game_id      BIGINT%s,
		period       INTEGER,
		period_type  TEXT,
		time_elapsed TEXT,
		x_coord      INTEGER,
		y_coord      INTEGER,
		hitter_id    BIGINT%s,
		hittee_id    BIGINT%s
	)`, fkGame, fkHitter, fkHittee)
}
