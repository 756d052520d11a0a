//go:build integration

package repository

import (
	"testing"

	"nhlhits/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_Upsert(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	player := &models.Player{
		PlayerID:       8471675,
		FullName:       "Sidney Crosby",
		Team:           "PIT",
		Position:       "C",
		GamesPlayed:    70,
		Goals:          30,
		Assists:        55,
		Points:         85,
		PlusMinus:      12,
		PenaltyMinutes: 24,
	}

	require.NoError(t, db.Players.Upsert(ctx, player), "Should insert player")

	retrieved, err := db.Players.GetByPlayerID(ctx, 8471675)
	require.NoError(t, err, "Should retrieve player")
	assert.Equal(t, "Sidney Crosby", retrieved.FullName)
	assert.Equal(t, 85, retrieved.Points)
}

func TestPlayerRepository_Upsert_ReplacesEntireRow(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	original := &models.Player{
		PlayerID: 8478402, FullName: "Connor McDavid", Team: "EDM", Position: "C",
		GamesPlayed: 50, Goals: 20, Assists: 60, Points: 80, PlusMinus: 15, PenaltyMinutes: 10,
	}
	require.NoError(t, db.Players.Upsert(ctx, original))

	// Later run writes a sparser record; every column takes the new value
	refetched := &models.Player{
		PlayerID: 8478402,
		FullName: models.DefaultPlayerName,
		Team:     models.DefaultPlayerTeam,
		Position: models.DefaultPosition,
	}
	require.NoError(t, db.Players.Upsert(ctx, refetched), "Should replace player")

	retrieved, err := db.Players.GetByPlayerID(ctx, 8478402)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPlayerName, retrieved.FullName, "Replacement is whole-row, not a merge")
	assert.Equal(t, 0, retrieved.Points)
	assert.Equal(t, 0, retrieved.GamesPlayed)

	count, err := db.Players.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Upsert should not create a second row")
}

func TestPlayerRepository_GetByPlayerID_NotFound(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	_, err := db.Players.GetByPlayerID(ctx, 99999)
	assert.Error(t, err, "Should report missing player")
	assert.Contains(t, err.Error(), "player not found")
}
