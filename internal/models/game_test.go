package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestScheduleGame_ToGame(t *testing.T) {
	sg := &ScheduleGame{
		ID:       2024020345,
		GameDate: "2024-11-23",
		GameType: GameTypeRegularSeason,
		HomeTeam: ScheduleTeam{Abbrev: strPtr("PIT"), Score: intPtr(4)},
		AwayTeam: ScheduleTeam{Abbrev: strPtr("TOR"), Score: intPtr(2)},
	}

	game := sg.ToGame("20242025")

	assert.Equal(t, int64(2024020345), game.GameID)
	assert.Equal(t, "2024-11-23", game.GameDate)
	assert.Equal(t, "PIT", game.HomeTeam)
	assert.Equal(t, "TOR", game.AwayTeam)
	assert.Equal(t, 4, game.HomeScore)
	assert.Equal(t, 2, game.AwayScore)
	assert.Equal(t, "20242025", game.Season)
}

func TestScheduleGame_ToGame_Defaults(t *testing.T) {
	// Schedule entries for future games carry no scores, sometimes not even
	// team abbreviations.
	sg := &ScheduleGame{ID: 2024020400, GameType: GameTypeRegularSeason}

	game := sg.ToGame("20242025")

	assert.Equal(t, DefaultTeamAbbrev, game.HomeTeam)
	assert.Equal(t, DefaultTeamAbbrev, game.AwayTeam)
	assert.Equal(t, 0, game.HomeScore)
	assert.Equal(t, 0, game.AwayScore)
	assert.Equal(t, "", game.GameDate)
	assert.Equal(t, "20242025", game.Season)
}

func TestScheduleGame_IsRegularSeason(t *testing.T) {
	assert.True(t, (&ScheduleGame{GameType: GameTypeRegularSeason}).IsRegularSeason())
	assert.False(t, (&ScheduleGame{GameType: GameTypePreseason}).IsRegularSeason())
	assert.False(t, (&ScheduleGame{GameType: GameTypePlayoffs}).IsRegularSeason())
	assert.False(t, (&ScheduleGame{}).IsRegularSeason())
}
