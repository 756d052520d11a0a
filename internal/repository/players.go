package repository

import (
	"context"
	"fmt"

	"nhlhits/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// PlayerRepository handles player database operations
type PlayerRepository struct {
	db *Database
}

// Upsert inserts a player row, replacing the prior row entirely when one
// with the same player_id already exists
func (r *PlayerRepository) Upsert(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (
			player_id, full_name, team, position,
			games_played, goals, assists, points,
			plus_minus, penalty_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (player_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			team = EXCLUDED.team,
			position = EXCLUDED.position,
			games_played = EXCLUDED.games_played,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			points = EXCLUDED.points,
			plus_minus = EXCLUDED.plus_minus,
			penalty_minutes = EXCLUDED.penalty_minutes
	`

	_, err := r.db.Pool.Exec(
		ctx, query,
		player.PlayerID, player.FullName, player.Team, player.Position,
		player.GamesPlayed, player.Goals, player.Assists, player.Points,
		player.PlusMinus, player.PenaltyMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}

	log.Debug().
		Int64("player_id", player.PlayerID).
		Str("name", player.FullName).
		Msg("Player upserted")

	return nil
}

// GetByPlayerID retrieves a player by identifier
func (r *PlayerRepository) GetByPlayerID(ctx context.Context, playerID int64) (*models.Player, error) {
	query := `
		SELECT player_id, full_name, team, position,
		       games_played, goals, assists, points,
		       plus_minus, penalty_minutes
		FROM players
		WHERE player_id = $1
	`

	var player models.Player
	err := r.db.Pool.QueryRow(ctx, query, playerID).Scan(
		&player.PlayerID, &player.FullName, &player.Team, &player.Position,
		&player.GamesPlayed, &player.Goals, &player.Assists, &player.Points,
		&player.PlusMinus, &player.PenaltyMinutes,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("player not found: player_id=%d", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &player, nil
}

// Count returns the total number of players
func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}

	return count, nil
}
