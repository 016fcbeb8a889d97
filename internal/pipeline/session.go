package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"game-weather/internal/football"
	"game-weather/internal/weather"
)

// ErrStaleSelection reports that a fetch resolved after its selection was
// superseded; its result was discarded, not committed.
var ErrStaleSelection = errors.New("selection superseded")

// Session holds the one active selection per user session. Writes are
// last-write-wins. Every fetch is tagged with the token current at issue
// time; a result whose token has been superseded by the time it resolves is
// discarded, so an out-of-order resolution can never overwrite newer state
// with stale data.
type Session struct {
	svc *Service

	token atomic.Uint64

	mu       sync.Mutex
	team     *football.TeamWithVenue
	fixtures []football.Fixture
	fixture  *football.Fixture
	forecast *weather.DailyForecast
}

// NewSession creates an empty session over the pipeline service.
func NewSession(svc *Service) *Session {
	return &Session{svc: svc}
}

// State is a point-in-time copy of the session's selection.
type State struct {
	Team     *football.TeamWithVenue
	Fixtures []football.Fixture
	Fixture  *football.Fixture
	Forecast *weather.DailyForecast
}

// State returns the current selection state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Team:     s.team,
		Fixtures: s.fixtures,
		Fixture:  s.fixture,
		Forecast: s.forecast,
	}
}

// SelectTeam makes team the current selection and fetches its upcoming
// fixtures, clearing any fixture-level state from the previous selection.
func (s *Session) SelectTeam(ctx context.Context, team football.TeamWithVenue) ([]football.Fixture, error) {
	tok := s.token.Add(1)

	s.mu.Lock()
	s.team = &team
	s.fixtures = nil
	s.fixture = nil
	s.forecast = nil
	s.mu.Unlock()

	fixtures, err := s.svc.UpcomingFixtures(ctx, team.ID, 0)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token.Load() != tok {
		return nil, ErrStaleSelection
	}
	s.fixtures = fixtures
	return fixtures, nil
}

// SelectFixture makes fx the current selection and fetches the forecast for
// its venue and date.
func (s *Session) SelectFixture(ctx context.Context, fx football.Fixture) (weather.DailyForecast, error) {
	tok := s.token.Add(1)

	s.mu.Lock()
	s.fixture = &fx
	s.forecast = nil
	s.mu.Unlock()

	forecast, err := s.svc.ForecastForFixture(ctx, fx)
	if err != nil {
		return weather.DailyForecast{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token.Load() != tok {
		return weather.DailyForecast{}, ErrStaleSelection
	}
	s.forecast = &forecast
	return forecast, nil
}
