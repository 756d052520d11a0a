package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkaterSummary_ToPlayer(t *testing.T) {
	ss := &SkaterSummary{
		PlayerID:       8471675,
		SkaterFullName: strPtr("Sidney Crosby"),
		TeamAbbrevs:    strPtr("PIT"),
		PositionCode:   strPtr("C"),
		GamesPlayed:    intPtr(82),
		Goals:          intPtr(33),
		Assists:        intPtr(58),
		Points:         intPtr(91),
		PlusMinus:      intPtr(-2),
		PenaltyMinutes: intPtr(28),
	}

	player := ss.ToPlayer()

	assert.Equal(t, int64(8471675), player.PlayerID)
	assert.Equal(t, "Sidney Crosby", player.FullName)
	assert.Equal(t, "PIT", player.Team)
	assert.Equal(t, "C", player.Position)
	assert.Equal(t, 82, player.GamesPlayed)
	assert.Equal(t, 33, player.Goals)
	assert.Equal(t, 58, player.Assists)
	assert.Equal(t, 91, player.Points)
	assert.Equal(t, -2, player.PlusMinus)
	assert.Equal(t, 28, player.PenaltyMinutes)
}

func TestSkaterSummary_ToPlayer_Defaults(t *testing.T) {
	ss := &SkaterSummary{PlayerID: 8480000}

	player := ss.ToPlayer()

	assert.Equal(t, int64(8480000), player.PlayerID)
	assert.Equal(t, DefaultPlayerName, player.FullName)
	assert.Equal(t, DefaultPlayerTeam, player.Team)
	assert.Equal(t, DefaultPosition, player.Position)
	assert.Equal(t, 0, player.GamesPlayed)
	assert.Equal(t, 0, player.Goals)
	assert.Equal(t, 0, player.Assists)
	assert.Equal(t, 0, player.Points)
	assert.Equal(t, 0, player.PlusMinus)
	assert.Equal(t, 0, player.PenaltyMinutes)
}
