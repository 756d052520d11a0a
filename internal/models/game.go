package models

// Game type codes used by the schedule endpoint.
const (
	GameTypePreseason     = 1
	GameTypeRegularSeason = 2
	GameTypePlayoffs      = 3
)

// Placeholder defaults applied when the schedule payload omits a field.
const (
	DefaultTeamAbbrev = "UNK"
)

// Game represents one regular-season game row
type Game struct {
	GameID    int64  `db:"game_id"`
	GameDate  string `db:"game_date"`
	HomeTeam  string `db:"home_team"`
	AwayTeam  string `db:"away_team"`
	HomeScore int    `db:"home_score"`
	AwayScore int    `db:"away_score"`
	Season    string `db:"season"`
}

// ScheduleTeam is the home/away team descriptor inside a schedule entry
type ScheduleTeam struct {
	Abbrev *string `json:"abbrev,omitempty"`
	Score  *int    `json:"score,omitempty"`
}

// ScheduleGame is one entry of the club-schedule-season `games` array
type ScheduleGame struct {
	ID       int64        `json:"id"`
	GameDate string       `json:"gameDate"`
	GameType int          `json:"gameType"`
	HomeTeam ScheduleTeam `json:"homeTeam"`
	AwayTeam ScheduleTeam `json:"awayTeam"`
}

// IsRegularSeason returns true for regular-season schedule entries
func (sg *ScheduleGame) IsRegularSeason() bool {
	return sg.GameType == GameTypeRegularSeason
}

// ToGame converts a schedule entry to a Game row, substituting defaults
// for fields absent from the payload
func (sg *ScheduleGame) ToGame(season string) *Game {
	game := &Game{
		GameID:   sg.ID,
		GameDate: sg.GameDate,
		HomeTeam: DefaultTeamAbbrev,
		AwayTeam: DefaultTeamAbbrev,
		Season:   season,
	}

	if sg.HomeTeam.Abbrev != nil {
		game.HomeTeam = *sg.HomeTeam.Abbrev
	}
	if sg.AwayTeam.Abbrev != nil {
		game.AwayTeam = *sg.AwayTeam.Abbrev
	}
	if sg.HomeTeam.Score != nil {
		game.HomeScore = *sg.HomeTeam.Score
	}
	if sg.AwayTeam.Score != nil {
		game.AwayScore = *sg.AwayTeam.Score
	}

	return game
}
