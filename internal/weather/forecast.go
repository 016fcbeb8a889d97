// Package weather retrieves daily forecasts for coordinates and selects the
// entry matching a fixture's date.
package weather

import (
	"errors"
	"math"
	"time"
)

const secondsPerDay = 86400

// ErrNoMatch reports that the forecast series does not cover the target
// date, e.g. a fixture beyond the upstream horizon. This is an expected
// outcome, not a failure; there is never an approximate or nearest match.
var ErrNoMatch = errors.New("no forecast available")

// DailyForecast is one normalized day from the upstream daily series.
type DailyForecast struct {
	// Date is the entry's day truncated to whole epoch-days.
	Date        int64   `json:"date"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	TempDay     float64 `json:"tempDay"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// TempDayRounded returns the integer Celsius value the presentation layer
// shows for the daytime temperature.
func (d DailyForecast) TempDayRounded() int {
	return int(math.Round(d.TempDay))
}

// EpochDay truncates t to whole-day granularity.
func EpochDay(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}

// MatchDay selects the series entry whose epoch-day equals the target
// date's, scanning linearly. Pure and idempotent: identical inputs always
// select the same entry.
func MatchDay(series []DailyForecast, target time.Time) (DailyForecast, error) {
	day := EpochDay(target)
	for _, entry := range series {
		if entry.Date == day {
			return entry, nil
		}
	}
	return DailyForecast{}, ErrNoMatch
}
