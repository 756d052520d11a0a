package models

// Placeholder defaults applied when the leaderboard payload omits a field.
const (
	DefaultPlayerName = "Unknown"
	DefaultPlayerTeam = "UNK"
	DefaultPosition   = "U"
)

// Player represents one row of the players relation
type Player struct {
	PlayerID       int64  `db:"player_id"`
	FullName       string `db:"full_name"`
	Team           string `db:"team"`
	Position       string `db:"position"`
	GamesPlayed    int    `db:"games_played"`
	Goals          int    `db:"goals"`
	Assists        int    `db:"assists"`
	Points         int    `db:"points"`
	PlusMinus      int    `db:"plus_minus"`
	PenaltyMinutes int    `db:"penalty_minutes"`
}

// SkaterSummary is one record of the skater leaderboard's `data` array
type SkaterSummary struct {
	PlayerID       int64   `json:"playerId"`
	SkaterFullName *string `json:"skaterFullName,omitempty"`
	TeamAbbrevs    *string `json:"teamAbbrevs,omitempty"`
	PositionCode   *string `json:"positionCode,omitempty"`
	GamesPlayed    *int    `json:"gamesPlayed,omitempty"`
	Goals          *int    `json:"goals,omitempty"`
	Assists        *int    `json:"assists,omitempty"`
	Points         *int    `json:"points,omitempty"`
	PlusMinus      *int    `json:"plusMinus,omitempty"`
	PenaltyMinutes *int    `json:"penaltyMinutes,omitempty"`
}

// ToPlayer converts a leaderboard record to a Player row, substituting
// documented defaults for every field the payload may omit. Integer stats
// default to 0.
func (ss *SkaterSummary) ToPlayer() *Player {
	player := &Player{
		PlayerID: ss.PlayerID,
		FullName: DefaultPlayerName,
		Team:     DefaultPlayerTeam,
		Position: DefaultPosition,
	}

	if ss.SkaterFullName != nil {
		player.FullName = *ss.SkaterFullName
	}
	if ss.TeamAbbrevs != nil {
		player.Team = *ss.TeamAbbrevs
	}
	if ss.PositionCode != nil {
		player.Position = *ss.PositionCode
	}
	if ss.GamesPlayed != nil {
		player.GamesPlayed = *ss.GamesPlayed
	}
	if ss.Goals != nil {
		player.Goals = *ss.Goals
	}
	if ss.Assists != nil {
		player.Assists = *ss.Assists
	}
	if ss.Points != nil {
		player.Points = *ss.Points
	}
	if ss.PlusMinus != nil {
		player.PlusMinus = *ss.PlusMinus
	}
	if ss.PenaltyMinutes != nil {
		player.PenaltyMinutes = *ss.PenaltyMinutes
	}

	return player
}
