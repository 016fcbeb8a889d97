// Package pipeline chains the user-triggered fetch stages: team search,
// upcoming fixtures, venue geocoding and date-matched forecast. Each stage
// is independently callable and independently failable; later stages never
// retry earlier ones.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"game-weather/internal/football"
	"game-weather/internal/geo"
	"game-weather/internal/search"
	"game-weather/internal/weather"
)

// TeamSearcher is the team search stage.
type TeamSearcher interface {
	SearchTeams(ctx context.Context, q football.Query) (football.SearchResult, error)
}

// FixtureProvider is the fixture list stage.
type FixtureProvider interface {
	UpcomingFixtures(ctx context.Context, teamID, next int) ([]football.Fixture, error)
}

// ForecastProvider is the forecast stage, already composed with date
// matching.
type ForecastProvider interface {
	ForecastFor(ctx context.Context, pt geo.GeoPoint, target time.Time) (weather.DailyForecast, error)
}

// Service orchestrates the pipeline stages over injected collaborators.
type Service struct {
	teams     TeamSearcher
	fixtures  FixtureProvider
	geocoder  geo.Geocoder
	forecasts ForecastProvider
	next      int
	logger    *slog.Logger
}

// NewService wires the pipeline. next is the default "next N" fixtures count
// used when a caller passes 0.
func NewService(teams TeamSearcher, fixtures FixtureProvider, geocoder geo.Geocoder, forecasts ForecastProvider, next int, logger *slog.Logger) *Service {
	if next <= 0 {
		next = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		teams:     teams,
		fixtures:  fixtures,
		geocoder:  geocoder,
		forecasts: forecasts,
		next:      next,
		logger:    logger,
	}
}

// SearchTeams validates and normalizes the raw term on the issuing side,
// then runs the upstream search in substring mode.
func (s *Service) SearchTeams(ctx context.Context, term string) (football.SearchResult, error) {
	normalized, err := search.ValidateTerm(term)
	if err != nil {
		return football.SearchResult{}, err
	}
	return s.teams.SearchTeams(ctx, football.Query{Search: normalized})
}

// SearchTeamsExact is SearchTeams in the upstream's exact-name mode.
func (s *Service) SearchTeamsExact(ctx context.Context, term string) (football.SearchResult, error) {
	normalized, err := search.ValidateTerm(term)
	if err != nil {
		return football.SearchResult{}, err
	}
	return s.teams.SearchTeams(ctx, football.Query{Name: normalized})
}

// UpcomingFixtures retrieves the next fixtures for a selected team. A next
// of 0 uses the configured default.
func (s *Service) UpcomingFixtures(ctx context.Context, teamID, next int) ([]football.Fixture, error) {
	if next <= 0 {
		next = s.next
	}
	return s.fixtures.UpcomingFixtures(ctx, teamID, next)
}

// ForecastForVenue geocodes a venue name and matches the daily forecast
// series against the target date. When geocoding finds nothing the pipeline
// halts and reports geo.ErrNotFound; the forecast stage is never reached.
func (s *Service) ForecastForVenue(ctx context.Context, venueName string, date time.Time) (weather.DailyForecast, error) {
	pt, err := s.geocoder.Geocode(ctx, venueName)
	if err != nil {
		return weather.DailyForecast{}, err
	}
	s.logger.Debug("venue geocoded", "venue", venueName, "lat", pt.Lat, "lon", pt.Lon)
	return s.forecasts.ForecastFor(ctx, pt, date)
}

// ForecastForFixture runs ForecastForVenue for a selected fixture. A fixture
// without a venue name cannot be geocoded and reports geo.ErrNotFound.
func (s *Service) ForecastForFixture(ctx context.Context, fx football.Fixture) (weather.DailyForecast, error) {
	if fx.Venue.Name == nil || *fx.Venue.Name == "" {
		return weather.DailyForecast{}, fmt.Errorf("%w: fixture %d has no venue name", geo.ErrNotFound, fx.ID)
	}
	return s.ForecastForVenue(ctx, *fx.Venue.Name, fx.Date)
}
