//go:build integration

package repository

import (
	"testing"

	"nhlhits/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetSchema_DiscardsPriorRows(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	// Populate every relation
	game := &models.Game{GameID: 9001, GameDate: "2024-10-09", HomeTeam: "PIT", AwayTeam: "NYR", Season: "20242025"}
	_, err := db.Games.InsertIgnore(ctx, game)
	require.NoError(t, err)

	player := &models.Player{PlayerID: 8471675, FullName: "Sidney Crosby", Team: "PIT", Position: "C"}
	require.NoError(t, db.Players.Upsert(ctx, player))

	hit := &models.Hit{GameID: 9001, Period: 1, PeriodType: "REG", TimeElapsed: "01:23", HitterID: 1, HitteeID: 2}
	require.NoError(t, db.Hits.Insert(ctx, hit))

	// Resetting drops everything from the prior run
	require.NoError(t, db.ResetSchema(ctx, false))

	gameCount, err := db.Games.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, gameCount)

	playerCount, err := db.Players.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, playerCount)

	hitCount, err := db.Hits.CountByGame(ctx, 9001)
	require.NoError(t, err)
	assert.Zero(t, hitCount)
}

func TestResetSchema_ForeignKeyEnforcement(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	require.NoError(t, db.ResetSchema(ctx, true))

	// A hit referencing a nonexistent game is rejected when enforcement is on
	hit := &models.Hit{GameID: 404, Period: 1, PeriodType: "REG", TimeElapsed: "00:01", HitterID: 1, HitteeID: 2}
	err := db.Hits.Insert(ctx, hit)
	assert.Error(t, err, "Should reject hit with dangling game reference")

	// The default schema accepts the same row
	require.NoError(t, db.ResetSchema(ctx, false))
	assert.NoError(t, db.Hits.Insert(ctx, hit))
}
