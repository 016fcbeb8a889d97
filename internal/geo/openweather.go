package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"game-weather/internal/upstream"
)

const (
	defaultGeoBaseURL = "https://api.openweathermap.org"

	maxBodyBytes = 1 << 20
)

// Config controls how the OpenWeather geocoder reaches the upstream.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// OpenWeatherGeocoder implements Geocoder against the OpenWeather direct
// geocoding endpoint. This is the canonical backend.
type OpenWeatherGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewOpenWeatherGeocoder constructs the OpenWeather-backed geocoder.
func NewOpenWeatherGeocoder(cfg Config) *OpenWeatherGeocoder {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGeoBaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenWeatherGeocoder{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  client,
		circuit: upstream.NewBreaker("openweather-geo"),
		logger:  logger,
	}
}

// Geocode issues a direct lookup limited to exactly one result and returns
// that result's coordinates. An empty upstream result set is ErrNotFound.
func (g *OpenWeatherGeocoder) Geocode(ctx context.Context, venueName string) (GeoPoint, error) {
	values := url.Values{}
	values.Set("q", venueName)
	values.Set("limit", "1")
	values.Set("appid", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/geo/1.0/direct?"+values.Encode(), nil)
	if err != nil {
		return GeoPoint{}, err
	}

	resp, err := upstream.Do(ctx, g.client, g.circuit, req)
	if err != nil {
		return GeoPoint{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return GeoPoint{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstream.MessageFromBody(body, "failed to geocode venue")
		g.logger.Warn("geocoding returned non-success status",
			"venue", venueName, "status", resp.StatusCode, "message", msg)
		return GeoPoint{}, &upstream.StatusError{Status: resp.StatusCode, Message: msg}
	}

	var results []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return GeoPoint{}, fmt.Errorf("decode geocoding response: %w", err)
	}

	if len(results) == 0 {
		return GeoPoint{}, fmt.Errorf("%w for %q", ErrNotFound, venueName)
	}
	return GeoPoint{Lat: results[0].Lat, Lon: results[0].Lon}, nil
}
