package repository

import (
	"context"
	"fmt"

	"nhlhits/ingestion/internal/models"

	"github.com/rs/zerolog/log"
)

// HitRepository handles hit event database operations
type HitRepository struct {
	db *Database
}

// Insert appends one hit event row. The surrogate hit_id is assigned by the
// database; logical duplicates across runs are not deduplicated.
func (r *HitRepository) Insert(ctx context.Context, hit *models.Hit) error {
	query := `
		INSERT INTO hits (
			game_id, period, period_type, time_elapsed,
			x_coord, y_coord, hitter_id, hittee_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING hit_id
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		hit.GameID, hit.Period, hit.PeriodType, hit.TimeElapsed,
		hit.XCoord, hit.YCoord, hit.HitterID, hit.HitteeID,
	).Scan(&hit.HitID)
	if err != nil {
		return fmt.Errorf("failed to insert hit: %w", err)
	}

	log.Debug().
		Int64("hit_id", hit.HitID).
		Int64("game_id", hit.GameID).
		Int64("hitter_id", hit.HitterID).
		Int64("hittee_id", hit.HitteeID).
		Msg("Hit inserted")

	return nil
}

// CountByGame returns the number of hit rows recorded for one game
func (r *HitRepository) CountByGame(ctx context.Context, gameID int64) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM hits WHERE game_id = $1`, gameID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count hits: %w", err)
	}

	return count, nil
}

// ListByGame retrieves the hit rows for one game in insertion order
func (r *HitRepository) ListByGame(ctx context.Context, gameID int64) ([]*models.Hit, error) {
	query := `
		SELECT hit_id, game_id, period, period_type, time_elapsed,
		       x_coord, y_coord, hitter_id, hittee_id
		FROM hits
		WHERE game_id = $1
		ORDER BY hit_id
	`

	rows, err := r.db.Pool.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hits: %w", err)
	}
	defer rows.Close()

	var hits []*models.Hit
	for rows.Next() {
		var hit models.Hit
		err := rows.Scan(
			&hit.HitID, &hit.GameID, &hit.Period, &hit.PeriodType, &hit.TimeElapsed,
			&hit.XCoord, &hit.YCoord, &hit.HitterID, &hit.HitteeID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hit: %w", err)
		}
		hits = append(hits, &hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hits: %w", err)
	}

	log.Debug().Int64("game_id", gameID).Int("count", len(hits)).Msg("Retrieved hits")
	return hits, nil
}
