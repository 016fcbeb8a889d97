package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"game-weather/internal/geo"
	"game-weather/internal/upstream"
)

const (
	defaultBaseURL = "https://api.openweathermap.org"

	maxBodyBytes = 1 << 20
)

// Config controls how the client reaches the OpenWeather One Call endpoint.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches daily forecast series from the One Call endpoint.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewClient constructs a One Call client with the provided configuration.
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
		client:  client,
		circuit: upstream.NewBreaker("openweather-onecall"),
		logger:  logger,
	}
}

// DailyForecasts retrieves the daily series for a point, excluding hourly
// and minutely granularity to keep the payload small.
func (c *Client) DailyForecasts(ctx context.Context, pt geo.GeoPoint, target time.Time) ([]DailyForecast, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(pt.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(pt.Lon, 'f', -1, 64))
	values.Set("exclude", "hourly,minutely")
	values.Set("dt", strconv.FormatInt(target.Unix(), 10))
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/onecall?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

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
		msg := upstream.MessageFromBody(body, "failed to fetch forecast")
		c.logger.Warn("onecall returned non-success status",
			"status", resp.StatusCode, "message", msg)
		return nil, &upstream.StatusError{Status: resp.StatusCode, Message: msg}
	}

	var payload oneCallResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode onecall response: %w", err)
	}

	series := make([]DailyForecast, 0, len(payload.Daily))
	for _, day := range payload.Daily {
		series = append(series, mapDaily(day))
	}
	return series, nil
}

// ForecastFor retrieves the daily series for a point and selects the entry
// matching the target date.
func (c *Client) ForecastFor(ctx context.Context, pt geo.GeoPoint, target time.Time) (DailyForecast, error) {
	series, err := c.DailyForecasts(ctx, pt, target)
	if err != nil {
		return DailyForecast{}, err
	}
	return MatchDay(series, target)
}

type oneCallResponse struct {
	Daily []dailyPayload `json:"daily"`
}

type dailyPayload struct {
	Dt      int64 `json:"dt"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Temp struct {
		Day float64 `json:"day"`
	} `json:"temp"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
}

func mapDaily(day dailyPayload) DailyForecast {
	fc := DailyForecast{
		Date:      day.Dt / secondsPerDay,
		TempDay:   day.Temp.Day,
		Humidity:  day.Humidity,
		WindSpeed: day.WindSpeed,
	}
	if len(day.Weather) > 0 {
		fc.Description = day.Weather[0].Description
		fc.Icon = day.Weather[0].Icon
	}
	return fc
}
