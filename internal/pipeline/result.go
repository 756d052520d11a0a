package pipeline

import "fmt"

// Result tracks counts and diagnostics from a full ingestion run.
//
// PlayersFetched is the number of leaderboard records returned by the API,
// not the number successfully upserted; the run summary reports the fetched
// count, matching the loader's reporting contract.
type Result struct {
	PlayersFetched  int
	PlayersUpserted int
	PlayersSkipped  int

	GamesScheduled int
	GamesProcessed int
	GamesFailed    int

	HitsInserted int
	HitsSkipped  int

	Errors []string
}

// AddErrorf records a formatted diagnostic message
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"players=%d games=%d/%d hits=%d hits_skipped=%d errors=%d",
		r.PlayersFetched, r.GamesProcessed, r.GamesScheduled,
		r.HitsInserted, r.HitsSkipped, len(r.Errors),
	)
}
