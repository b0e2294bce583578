package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nhl-cli/internal/domain"
	"nhl-cli/internal/logging"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches league data from the NHL API and maps it to domain
// models. Every call is one fresh request/response cycle: no retries, no
// caching.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// Schedule retrieves the multi-day schedule window anchored at date
// (YYYY-MM-DD).
func (c *Client) Schedule(ctx context.Context, date string) ([]domain.ScheduleDay, error) {
	url := c.baseURL + "/schedule/" + date
	var payload scheduleResponse
	if err := c.get(ctx, url, &payload); err != nil {
		return nil, err
	}

	var days []gameWeekDay
	if err := unmarshalArray(payload.GameWeek, url, "gameWeek", &days); err != nil {
		return nil, err
	}
	return mapScheduleDays(days), nil
}

// Standings retrieves the current league standings snapshot.
func (c *Client) Standings(ctx context.Context) ([]domain.StandingsEntry, error) {
	url := c.baseURL + "/standings/now"
	var payload standingsResponse
	if err := c.get(ctx, url, &payload); err != nil {
		return nil, err
	}

	var teams []standingsTeam
	if err := unmarshalArray(payload.Standings, url, "standings", &teams); err != nil {
		return nil, err
	}
	return mapStandings(teams), nil
}

// SkaterLeaders retrieves the current skater leaderboard for the category
// stored under field in the response.
func (c *Client) SkaterLeaders(ctx context.Context, field string) ([]domain.LeaderEntry, error) {
	return c.leaders(ctx, c.baseURL+"/skater-stats-leaders/current", field)
}

// GoalieLeaders retrieves the current goaltender leaderboard for the
// category stored under field in the response.
func (c *Client) GoalieLeaders(ctx context.Context, field string) ([]domain.LeaderEntry, error) {
	return c.leaders(ctx, c.baseURL+"/goalie-stats-leaders/current", field)
}

func (c *Client) leaders(ctx context.Context, url, field string) ([]domain.LeaderEntry, error) {
	var payload leadersResponse
	if err := c.get(ctx, url, &payload); err != nil {
		return nil, err
	}

	var players []leaderPlayer
	if err := unmarshalArray(payload[field], url, field, &players); err != nil {
		return nil, err
	}
	return mapLeaders(players), nil
}

// GameLanding retrieves the detailed landing data for one game.
func (c *Client) GameLanding(ctx context.Context, gameID int) (domain.BoxScore, error) {
	url := fmt.Sprintf("%s/gamecenter/%d/landing", c.baseURL, gameID)
	var payload landingResponse
	if err := c.get(ctx, url, &payload); err != nil {
		return domain.BoxScore{}, err
	}
	return mapBoxScore(payload), nil
}

// PlayerLanding retrieves a player's landing page.
func (c *Client) PlayerLanding(ctx context.Context, playerID int) (domain.PlayerProfile, error) {
	url := fmt.Sprintf("%s/player/%d/landing", c.baseURL, playerID)
	var payload playerLanding
	if err := c.get(ctx, url, &payload); err != nil {
		return domain.PlayerProfile{}, err
	}
	return mapPlayerProfile(payload), nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ResponseFormatError{URL: url, Err: err}
	}

	logging.Debug(c.logger, "fetched",
		slog.String(logging.FieldPath, req.URL.Path),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// unmarshalArray decodes a raw JSON array into out, treating an absent,
// null, or non-array value as a ResponseFormatError.
func unmarshalArray(raw json.RawMessage, url, field string, out any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return &ResponseFormatError{URL: url, Field: field}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ResponseFormatError{URL: url, Field: field, Err: err}
	}
	return nil
}
