package models

import (
	"database/sql"
	"fmt"
)

// Play type and default period descriptor values.
const (
	PlayTypeHit         = "hit"
	DefaultPeriodType   = "REG"
	DefaultTimeInPeriod = "0:00"
)

// Hit represents one body-check event row. The surrogate hit_id is assigned
// by the database.
type Hit struct {
	HitID       int64         `db:"hit_id"`
	GameID      int64         `db:"game_id"`
	Period      int           `db:"period"`
	PeriodType  string        `db:"period_type"`
	TimeElapsed string        `db:"time_elapsed"`
	XCoord      sql.NullInt32 `db:"x_coord"`
	YCoord      sql.NullInt32 `db:"y_coord"`
	HitterID    int64         `db:"hitter_id"`
	HitteeID    int64         `db:"hittee_id"`
}

// PlayByPlay is the play-by-play document for a single game
type PlayByPlay struct {
	Plays []Play `json:"plays"`
}

// PeriodDescriptor identifies which segment of play an event occurred in
type PeriodDescriptor struct {
	Number     *int    `json:"number,omitempty"`
	PeriodType *string `json:"periodType,omitempty"`
}

// PlayDetails carries the event-specific fields of a play. Coordinates can
// appear here instead of on the play itself.
type PlayDetails struct {
	HittingPlayerID *int64 `json:"hittingPlayerId,omitempty"`
	HitteePlayerID  *int64 `json:"hitteePlayerId,omitempty"`
	XCoord          *int   `json:"xCoord,omitempty"`
	YCoord          *int   `json:"yCoord,omitempty"`
}

// Play is one entry of the play-by-play `plays` array
type Play struct {
	TypeDescKey      string           `json:"typeDescKey"`
	PeriodDescriptor PeriodDescriptor `json:"periodDescriptor"`
	TimeInPeriod     *string          `json:"timeInPeriod,omitempty"`
	XCoord           *int             `json:"xCoord,omitempty"`
	YCoord           *int             `json:"yCoord,omitempty"`
	Details          PlayDetails      `json:"details"`
}

// IsHit returns true for body-check plays
func (p *Play) IsHit() bool {
	return p.TypeDescKey == PlayTypeHit
}

// ToHit converts a hit play to a Hit row for the given game. It returns an
// error when either player identifier is missing; such plays are skipped, not
// inserted. Coordinates are taken from the play's top-level fields first,
// falling back to the details object, and stay NULL when absent from both.
func (p *Play) ToHit(gameID int64) (*Hit, error) {
	hitterID := p.Details.HittingPlayerID
	hitteeID := p.Details.HitteePlayerID
	if hitterID == nil || *hitterID == 0 || hitteeID == nil || *hitteeID == 0 {
		return nil, fmt.Errorf("missing player IDs: hitter=%v hittee=%v", fmtID(hitterID), fmtID(hitteeID))
	}

	hit := &Hit{
		GameID:      gameID,
		PeriodType:  DefaultPeriodType,
		TimeElapsed: DefaultTimeInPeriod,
		HitterID:    *hitterID,
		HitteeID:    *hitteeID,
	}

	if p.PeriodDescriptor.Number != nil {
		hit.Period = *p.PeriodDescriptor.Number
	}
	if p.PeriodDescriptor.PeriodType != nil {
		hit.PeriodType = *p.PeriodDescriptor.PeriodType
	}
	if p.TimeInPeriod != nil {
		hit.TimeElapsed = *p.TimeInPeriod
	}

	if x := coalesceCoord(p.XCoord, p.Details.XCoord); x != nil {
		hit.XCoord = sql.NullInt32{Int32: int32(*x), Valid: true}
	}
	if y := coalesceCoord(p.YCoord, p.Details.YCoord); y != nil {
		hit.YCoord = sql.NullInt32{Int32: int32(*y), Valid: true}
	}

	return hit, nil
}

// coalesceCoord prefers the play-level coordinate over the details-level one
func coalesceCoord(top, nested *int) *int {
	if top != nil {
		return top
	}
	return nested
}

func fmtID(id *int64) string {
	if id == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *id)
}
