// Package client provides read access to the NHL web and stats APIs.
//
// The schedule and play-by-play feeds live on the web API host; the skater
// leaderboard lives on the stats API host. Every operation is a single GET
// with a fixed timeout. There are no retries: the pipeline's degradation
// policy is skip-and-continue at every level, so a failed fetch is simply
// reported as an error and treated as "no data" by the caller.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nhlhits/ingestion/internal/metrics"
	"nhlhits/ingestion/internal/models"

	"github.com/rs/zerolog/log"
)

// Client is the NHL API client
type Client struct {
	webBaseURL   string
	statsBaseURL string
	httpClient   *http.Client
}

// NewClient creates a new NHL API client with a fixed request timeout
func NewClient(webBaseURL, statsBaseURL string, timeout time.Duration) *Client {
	return &Client{
		webBaseURL:   webBaseURL,
		statsBaseURL: statsBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get performs a GET request against one of the NHL API hosts
func (c *Client) get(ctx context.Context, url, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().
		Str("url", url).
		Str("endpoint", endpoint).
		Msg("Making API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPICall(endpoint, "transport_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordAPICall(endpoint, "read_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordAPICall(endpoint, fmt.Sprintf("%d", resp.StatusCode), time.Since(start).Seconds())
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	metrics.RecordAPICall(endpoint, "ok", time.Since(start).Seconds())
	log.Debug().
		Str("endpoint", endpoint).
		Int("size", len(body)).
		Msg("API request successful")

	return body, nil
}

// FetchSchedule fetches the full season schedule for a team and extracts the
// games array
func (c *Client) FetchSchedule(ctx context.Context, team, season string) ([]models.ScheduleGame, error) {
	url := fmt.Sprintf("%s/v1/club-schedule-season/%s/%s", c.webBaseURL, team, season)
	body, err := c.get(ctx, url, "schedule")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	var schedule struct {
		Games []models.ScheduleGame `json:"games"`
	}
	if err := json.Unmarshal(body, &schedule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
	}

	return schedule.Games, nil
}

// FetchSkaterSummary fetches the unbounded season skater leaderboard and
// extracts the data array
func (c *Client) FetchSkaterSummary(ctx context.Context, season string) ([]models.SkaterSummary, error) {
	url := fmt.Sprintf("%s/stats/rest/en/skater/summary?limit=-1&sort=points&cayenneExp=seasonId=%s", c.statsBaseURL, season)
	body, err := c.get(ctx, url, "skater_summary")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skater summary: %w", err)
	}

	var summary struct {
		Data []models.SkaterSummary `json:"data"`
	}
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skater summary: %w", err)
	}

	return summary.Data, nil
}

// FetchPlayByPlay fetches the full play-by-play document for one game
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID int64) (*models.PlayByPlay, error) {
	url := fmt.Sprintf("%s/v1/gamecenter/%d/play-by-play", c.webBaseURL, gameID)
	body, err := c.get(ctx, url, "play_by_play")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch play-by-play: %w", err)
	}

	var pbp models.PlayByPlay
	if err := json.Unmarshal(body, &pbp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal play-by-play: %w", err)
	}

	return &pbp, nil
}
