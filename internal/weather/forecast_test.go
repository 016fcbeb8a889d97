package weather

import (
	"errors"
	"testing"
	"time"
)

func daySeries(start time.Time, days int) []DailyForecast {
	series := make([]DailyForecast, 0, days)
	for i := 0; i < days; i++ {
		series = append(series, DailyForecast{
			Date:        EpochDay(start.AddDate(0, 0, i)),
			Description: "scattered clouds",
			TempDay:     15.0 + float64(i),
		})
	}
	return series
}

func TestMatchDayExactMatch(t *testing.T) {
	start := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	series := daySeries(start, 7)

	// Time of day must not matter; only the whole epoch-day does.
	target := time.Date(2026, 9, 12, 19, 45, 0, 0, time.UTC)
	got, err := MatchDay(series, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != EpochDay(target) {
		t.Fatalf("matched day %d, want %d", got.Date, EpochDay(target))
	}
	if got.TempDay != 17.0 {
		t.Fatalf("tempDay = %v, want 17.0", got.TempDay)
	}
}

func TestMatchDayDeterministic(t *testing.T) {
	start := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	series := daySeries(start, 7)
	target := start.AddDate(0, 0, 3)

	first, err := MatchDay(series, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := MatchDay(series, target)
		if err != nil {
			t.Fatalf("unexpected error on repeat call: %v", err)
		}
		if again != first {
			t.Fatalf("repeat call selected %+v, want %+v", again, first)
		}
	}
}

func TestMatchDayNoMatchBeyondHorizon(t *testing.T) {
	start := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	series := daySeries(start, 7)

	// A fixture 20 days out against a 7-day horizon is an expected miss,
	// never a nearest-day approximation.
	target := start.AddDate(0, 0, 20)
	_, err := MatchDay(series, target)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
}

func TestMatchDayEmptySeries(t *testing.T) {
	_, err := MatchDay(nil, time.Now())
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
}

func TestEpochDayTruncates(t *testing.T) {
	morning := time.Date(2026, 9, 12, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2026, 9, 12, 23, 59, 59, 0, time.UTC)
	if EpochDay(morning) != EpochDay(evening) {
		t.Fatalf("same calendar day truncated to different epoch-days: %d vs %d",
			EpochDay(morning), EpochDay(evening))
	}
	nextDay := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	if EpochDay(evening) == EpochDay(nextDay) {
		t.Fatal("day boundary not respected")
	}
}

func TestTempDayRounded(t *testing.T) {
	tests := []struct {
		temp float64
		want int
	}{
		{16.4, 16},
		{16.5, 17},
		{-0.4, 0},
		{-2.6, -3},
	}
	for _, tt := range tests {
		got := DailyForecast{TempDay: tt.temp}.TempDayRounded()
		if got != tt.want {
			t.Errorf("TempDayRounded(%v) = %d, want %d", tt.temp, got, tt.want)
		}
	}
}
