// Package pipeline runs the batch ETL: load the season player leaderboard,
// fetch the team schedule, and record every body-check event of each
// regular-season game.
//
// Failures never propagate past the unit they occur in. A failed fetch is
// "no data", a bad record is skipped, a failed game is skipped; the run
// always proceeds to its end and reports what happened in a Result.
package pipeline

import (
	"context"
	"time"

	"nhlhits/ingestion/internal/metrics"
	"nhlhits/ingestion/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Fetcher is the read surface of the NHL API client
type Fetcher interface {
	FetchSchedule(ctx context.Context, team, season string) ([]models.ScheduleGame, error)
	FetchSkaterSummary(ctx context.Context, season string) ([]models.SkaterSummary, error)
	FetchPlayByPlay(ctx context.Context, gameID int64) (*models.PlayByPlay, error)
}

// Store is the write surface of the persistent store
type Store interface {
	InsertGame(ctx context.Context, game *models.Game) (bool, error)
	UpsertPlayer(ctx context.Context, player *models.Player) error
	InsertHit(ctx context.Context, hit *models.Hit) error
}

// Pipeline is the single-run ingestion job
type Pipeline struct {
	fetcher Fetcher
	store   Store
	team    string
	season  string
	pace    *rate.Limiter
}

// New creates a pipeline for one team and season. gamePace is the
// self-throttling interval between processed games; the first game is never
// delayed and schedule entries that are filtered out consume no pacing.
func New(fetcher Fetcher, store Store, team, season string, gamePace time.Duration) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		store:   store,
		team:    team,
		season:  season,
		pace:    rate.NewLimiter(rate.Every(gamePace), 1),
	}
}

// Run executes the full pipeline: player stats load, then schedule fetch,
// then per-game processing. Stages always run in that order; an earlier
// stage's failure never prevents a later stage (an empty schedule simply
// leaves nothing to process).
func (p *Pipeline) Run(ctx context.Context) *Result {
	result := &Result{}

	log.Info().Str("season", p.season).Msg("Updating player stats...")
	p.loadPlayerStats(ctx, result)

	log.Info().Str("team", p.team).Msg("Fetching schedule...")
	schedule, err := p.fetcher.FetchSchedule(ctx, p.team, p.season)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch schedule")
		metrics.RecordError("pipeline", "schedule_fetch")
		result.AddErrorf("fetch schedule: %v", err)
	}

	if len(schedule) == 0 {
		log.Info().Msg("No schedule data available")
		return result
	}

	for _, entry := range schedule {
		if entry.IsRegularSeason() {
			result.GamesScheduled++
		}
	}

	log.Info().Int("count", result.GamesScheduled).Msg("Processing regular season games...")
	for _, entry := range schedule {
		if !entry.IsRegularSeason() {
			continue
		}

		if err := p.pace.Wait(ctx); err != nil {
			log.Error().Err(err).Msg("Run interrupted while pacing")
			result.AddErrorf("pacing wait: %v", err)
			return result
		}

		log.Info().
			Int64("game_id", entry.ID).
			Int("processed", result.GamesProcessed+1).
			Int("total", result.GamesScheduled).
			Msg("Processing game")

		if err := p.processGame(ctx, &entry, result); err != nil {
			log.Error().Err(err).Int64("game_id", entry.ID).Msg("Error processing game")
			metrics.RecordError("pipeline", "process_game")
			result.GamesFailed++
			result.AddErrorf("game %d: %v", entry.ID, err)
			continue
		}

		result.GamesProcessed++
		metrics.RecordGameProcessed()
	}

	log.Info().
		Int("processed", result.GamesProcessed).
		Int("failed", result.GamesFailed).
		Msg("Completed processing games")

	return result
}

// loadPlayerStats fetches the full season leaderboard once and upserts each
// record. A bad record is logged and skipped; the batch continues. The
// reported count is the number of records fetched, which can exceed the
// number upserted.
func (p *Pipeline) loadPlayerStats(ctx context.Context, result *Result) {
	summaries, err := p.fetcher.FetchSkaterSummary(ctx, p.season)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch player stats")
		metrics.RecordError("pipeline", "stats_fetch")
		result.AddErrorf("fetch player stats: %v", err)
		return
	}

	if len(summaries) == 0 {
		log.Info().Msg("No player stats data available")
		return
	}

	result.PlayersFetched = len(summaries)
	for i := range summaries {
		player := summaries[i].ToPlayer()
		if err := p.store.UpsertPlayer(ctx, player); err != nil {
			log.Error().Err(err).Int64("player_id", player.PlayerID).Msg("Error processing player data")
			metrics.RecordSkip("player_upsert_failed")
			result.PlayersSkipped++
			continue
		}
		result.PlayersUpserted++
		metrics.RecordRowWritten("players")
	}

	log.Info().Int("count", result.PlayersFetched).Msg("Updated player stats")
}

// processGame handles one schedule entry: the game row is written first with
// insert-or-ignore semantics, then the game's play-by-play feed is scanned
// for hits. A play-by-play fetch failure leaves the already-written game row
// in place with zero hit rows.
func (p *Pipeline) processGame(ctx context.Context, entry *models.ScheduleGame, result *Result) error {
	game := entry.ToGame(p.season)
	inserted, err := p.store.InsertGame(ctx, game)
	if err != nil {
		return err
	}
	if inserted {
		metrics.RecordRowWritten("games")
	}

	pbp, err := p.fetcher.FetchPlayByPlay(ctx, entry.ID)
	if err != nil {
		log.Error().Err(err).Int64("game_id", entry.ID).Msg("Error fetching play-by-play")
		metrics.RecordError("pipeline", "pbp_fetch")
		result.AddErrorf("play-by-play %d: %v", entry.ID, err)
		return nil
	}

	for i := range pbp.Plays {
		play := &pbp.Plays[i]
		if !play.IsHit() {
			continue
		}

		hit, err := play.ToHit(entry.ID)
		if err != nil {
			log.Warn().
				Err(err).
				Int64("game_id", entry.ID).
				Msg("Skipping hit record")
			metrics.RecordSkip("hit_missing_player_ids")
			result.HitsSkipped++
			continue
		}

		if err := p.store.InsertHit(ctx, hit); err != nil {
			log.Error().Err(err).Int64("game_id", entry.ID).Msg("Database error inserting hit")
			metrics.RecordSkip("hit_insert_failed")
			result.HitsSkipped++
			continue
		}

		result.HitsInserted++
		metrics.RecordRowWritten("hits")
	}

	return nil
}
