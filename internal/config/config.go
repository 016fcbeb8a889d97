package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Geocoder provider names accepted by GEOCODER_PROVIDER.
const (
	GeocoderOpenWeather = "openweather"
	GeocoderGoogle      = "google"
)

// AppConfig is resolved once at startup and injected into component
// constructors. Nothing reads the environment inline after Load returns.
type AppConfig struct {
	// API-Football auth pair, sent as the X-RapidAPI-Key/Host headers.
	FootballAPIKey  string
	FootballAPIHost string

	// OpenWeather key, shared by the geocoding and forecast endpoints.
	OpenWeatherAPIKey string

	// GeocoderProvider selects the venue geocoding backend.
	GeocoderProvider  string
	GoogleGeocoderKey string

	// FixturesNext is the default "next N" count for upcoming fixtures.
	FixturesNext int

	// HTTPTimeout is the hard per-request safety margin for outbound calls.
	// The upstream contracts specify no timeout; this is implementation-defined.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.FootballAPIKey = os.Getenv("FOOTBALL_API_KEY")
	cfg.FootballAPIHost = getenvDefault("FOOTBALL_API_HOST", "v3.football.api-sports.io")
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.GoogleGeocoderKey = os.Getenv("GOOGLE_GEOCODER_API_KEY")

	cfg.GeocoderProvider = getenvDefault("GEOCODER_PROVIDER", GeocoderOpenWeather)
	switch cfg.GeocoderProvider {
	case GeocoderOpenWeather, GeocoderGoogle:
	default:
		return nil, fmt.Errorf("invalid GEOCODER_PROVIDER: %q", cfg.GeocoderProvider)
	}
	if cfg.GeocoderProvider == GeocoderGoogle && cfg.GoogleGeocoderKey == "" {
		return nil, fmt.Errorf("GEOCODER_PROVIDER=google requires GOOGLE_GEOCODER_API_KEY")
	}

	cfg.FixturesNext = getenvInt("FIXTURES_NEXT", 5)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
