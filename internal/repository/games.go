package repository

import (
	"context"
	"fmt"

	"nhlhits/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// GameRepository handles game database operations
type GameRepository struct {
	db *Database
}

// InsertIgnore inserts a game row unless one with the same game_id already
// exists. First write wins; duplicates are silently ignored. It reports
// whether a new row was written.
func (r *GameRepository) InsertIgnore(ctx context.Context, game *models.Game) (bool, error) {
	query := `
		INSERT INTO games (game_id, game_date, home_team, away_team, home_score, away_score, season)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (game_id) DO NOTHING
	`

	tag, err := r.db.Pool.Exec(
		ctx, query,
		game.GameID, game.GameDate, game.HomeTeam, game.AwayTeam,
		game.HomeScore, game.AwayScore, game.Season,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert game: %w", err)
	}

	inserted := tag.RowsAffected() > 0
	if inserted {
		log.Debug().
			Int64("game_id", game.GameID).
			Str("home", game.HomeTeam).
			Str("away", game.AwayTeam).
			Msg("Game inserted")
	}

	return inserted, nil
}

// GetByGameID retrieves a game by its external game identifier
func (r *GameRepository) GetByGameID(ctx context.Context, gameID int64) (*models.Game, error) {
	query := `
		SELECT game_id, game_date, home_team, away_team, home_score, away_score, season
		FROM games
		WHERE game_id = $1
	`

	var game models.Game
	err := r.db.Pool.QueryRow(ctx, query, gameID).Scan(
		&game.GameID, &game.GameDate, &game.HomeTeam, &game.AwayTeam,
		&game.HomeScore, &game.AwayScore, &game.Season,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("game not found: game_id=%d", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &game, nil
}

// Count returns the total number of games
func (r *GameRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM games`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}

	return count, nil
}
