package repository

import (
	"context"

	"nhlhits/ingestion/internal/models"
)

// Pass-through methods so Database satisfies the pipeline's store interface.

// InsertGame inserts a game row with insert-or-ignore semantics
func (db *Database) InsertGame(ctx context.Context, game *models.Game) (bool, error) {
	return db.Games.InsertIgnore(ctx, game)
}

// UpsertPlayer inserts or fully replaces a player row
func (db *Database) UpsertPlayer(ctx context.Context, player *models.Player) error {
	return db.Players.Upsert(ctx, player)
}

// InsertHit appends a hit event row
func (db *Database) InsertHit(ctx context.Context, hit *models.Hit) error {
	return db.Hits.Insert(ctx, hit)
}
