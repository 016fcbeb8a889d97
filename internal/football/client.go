package football

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"game-weather/internal/upstream"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"

	// Upstream responses are small; cap reads defensively.
	maxBodyBytes = 1 << 20
)

// ErrInvalidQuery is returned when neither or both of the two mutually
// exclusive query modes are supplied.
var ErrInvalidQuery = errors.New("exactly one of search or name must be provided")

// Query selects the upstream lookup mode: Search is a substring match, Name
// an exact one. Exactly one field must be set.
type Query struct {
	Search string
	Name   string
}

// Config controls how the client reaches the API-Football upstream.
type Config struct {
	BaseURL    string
	APIKey     string
	APIHost    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches teams and fixtures from API-Football and maps them into the
// standardized schema.
type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewClient constructs an API-Football client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		apiHost: cfg.APIHost,
		client:  client,
		circuit: upstream.NewBreaker("api-football"),
		logger:  logger,
	}
}

// SearchTeams issues the team lookup in the mode selected by q and maps each
// raw result item into the standardized TeamWithVenue shape. Result order
// follows the upstream response; duplicates pass through.
func (c *Client) SearchTeams(ctx context.Context, q Query) (SearchResult, error) {
	var param, term string
	switch {
	case q.Search != "" && q.Name != "":
		return SearchResult{}, ErrInvalidQuery
	case q.Search != "":
		param, term = "search", q.Search
	case q.Name != "":
		param, term = "name", q.Name
	default:
		return SearchResult{}, ErrInvalidQuery
	}

	body, err := c.get(ctx, "/teams", url.Values{param: {term}})
	if err != nil {
		return SearchResult{}, err
	}

	var payload teamsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return SearchResult{}, fmt.Errorf("decode teams response: %w", err)
	}

	result := SearchResult{
		Results: payload.Results,
		Teams:   make([]TeamWithVenue, 0, len(payload.Response)),
	}
	for _, item := range payload.Response {
		result.Teams = append(result.Teams, mapTeamWithVenue(item))
	}
	return result, nil
}

// UpcomingFixtures retrieves the next `next` fixtures for a team in a single
// request. Only the first page of upstream results is consulted. Any
// transport, status or parse failure is returned to the caller together with
// a nil slice; it is never silently degraded to an empty result.
func (c *Client) UpcomingFixtures(ctx context.Context, teamID, next int) ([]Fixture, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("team id must be positive, got %d", teamID)
	}
	if next <= 0 {
		next = 5
	}

	body, err := c.get(ctx, "/fixtures", url.Values{
		"team": {strconv.Itoa(teamID)},
		"next": {strconv.Itoa(next)},
	})
	if err != nil {
		return nil, err
	}

	var payload fixturesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode fixtures response: %w", err)
	}

	fixtures := make([]Fixture, 0, len(payload.Response))
	for _, item := range payload.Response {
		fx, err := mapFixture(item)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fx)
	}
	return fixtures, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := upstream.Do(ctx, c.client, c.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstream.MessageFromBody(body, "failed to fetch data from football api")
		c.logger.Warn("football api returned non-success status",
			"path", path, "status", resp.StatusCode, "message", msg)
		return nil, &upstream.StatusError{Status: resp.StatusCode, Message: msg}
	}
	return body, nil
}
