// Package httpapi exposes the internal standardized endpoints the UI layer
// calls instead of hitting the upstream APIs directly.
package httpapi

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"game-weather/internal/football"
	"game-weather/internal/geo"
	"game-weather/internal/search"
	"game-weather/internal/upstream"
	"game-weather/internal/weather"
)

var validate = validator.New()

// Service is the pipeline surface the HTTP layer needs.
type Service interface {
	SearchTeams(ctx context.Context, term string) (football.SearchResult, error)
	SearchTeamsExact(ctx context.Context, term string) (football.SearchResult, error)
	UpcomingFixtures(ctx context.Context, teamID, next int) ([]football.Fixture, error)
	ForecastForVenue(ctx context.Context, venueName string, date time.Time) (weather.DailyForecast, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc Service) {
	api := app.Group("/api")

	api.Get("/teamSearch", func(c *fiber.Ctx) error {
		searchTerm := c.Query("search")
		nameTerm := c.Query("name")

		// The receiving side re-validates; it never trusts the issuing
		// side's check.
		var result football.SearchResult
		var err error
		switch {
		case searchTerm != "" && nameTerm != "":
			return fiber.NewError(fiber.StatusBadRequest, "provide either a search or a name query parameter, not both")
		case searchTerm != "":
			if _, verr := search.ValidateTerm(searchTerm); verr != nil {
				return fiber.NewError(fiber.StatusBadRequest, verr.Error())
			}
			result, err = svc.SearchTeams(c.Context(), searchTerm)
		case nameTerm != "":
			if _, verr := search.ValidateTerm(nameTerm); verr != nil {
				return fiber.NewError(fiber.StatusBadRequest, verr.Error())
			}
			result, err = svc.SearchTeamsExact(c.Context(), nameTerm)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "please provide a valid search or name query parameter")
		}
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(result)
	})

	api.Get("/teams/:id/fixtures", func(c *fiber.Ctx) error {
		var req fixturesQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		fixtures, err := svc.UpcomingFixtures(c.Context(), req.Team, req.Next)
		if err != nil {
			// Failure and empty result stay distinguishable: errors get a
			// status and message, an empty list is a valid 200.
			return toHTTPError(err)
		}
		if fixtures == nil {
			fixtures = []football.Fixture{}
		}
		return c.JSON(fiber.Map{"fixtures": fixtures})
	})

	api.Get("/fixtureWeather", func(c *fiber.Ctx) error {
		var req weatherQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := svc.ForecastForVenue(c.Context(), req.Venue, req.Date)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(fiber.Map{
			"forecast": forecast,
			"tempDayC": forecast.TempDayRounded(),
		})
	})
}

// ErrorHandler is the centralized error response: every failure becomes
// {"error": <message>}, never a silent blank state.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := err.Error()
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		msg = fiberErr.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// toHTTPError maps the pipeline's error taxonomy onto HTTP statuses:
// validation 400, expected-empty outcomes 404, upstream failures the
// upstream's status (or 502), anything else 500.
func toHTTPError(err error) error {
	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, search.ErrInvalidTerm), errors.Is(err, football.ErrInvalidQuery):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, geo.ErrNotFound), errors.Is(err, weather.ErrNoMatch):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &statusErr):
		code := statusErr.Status
		if code < 400 {
			code = fiber.StatusBadGateway
		}
		return fiber.NewError(code, statusErr.Message)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// fixturesQuery holds the parameters for the upcoming-fixtures endpoint.
// Next of 0 means the configured default.
type fixturesQuery struct {
	Team int `validate:"required,gt=0"`
	Next int `validate:"gte=0,lte=50"`
}

func (q *fixturesQuery) bind(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.New("team id must be an integer")
	}
	q.Team = id
	q.Next = c.QueryInt("next", 0)
	return nil
}

// weatherQuery holds the parameters for the fixture-weather endpoint.
type weatherQuery struct {
	Venue string    `validate:"required"`
	Date  time.Time `validate:"required"`
}

func (q *weatherQuery) bind(c *fiber.Ctx) error {
	q.Venue = c.Query("venue")

	dateStr := c.Query("date")
	if dateStr == "" {
		return errors.New("date query parameter is required")
	}
	date, err := parseTime(dateStr)
	if err != nil {
		return err
	}
	q.Date = date
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid date format; use RFC3339 or unix seconds")
}
