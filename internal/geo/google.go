package geo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kelvins/geocoder"

	"game-weather/internal/common"
)

// GoogleGeocoder implements Geocoder against the Google Geocoding API via
// kelvins/geocoder. Selected with GEOCODER_PROVIDER=google; same contract as
// the OpenWeather backend, first result wins.
type GoogleGeocoder struct {
	logger *slog.Logger
}

// NewGoogleGeocoder sets the package-level Google API key and returns the
// geocoder. The key is process-wide state in kelvins/geocoder, so construct
// at most one per process.
func NewGoogleGeocoder(apiKey string, logger *slog.Logger) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	if logger == nil {
		logger = slog.Default()
	}
	return &GoogleGeocoder{logger: logger}
}

// Geocode resolves a venue name through Google. Zero-result responses map to
// ErrNotFound; everything else surfaces as an upstream failure.
//
// kelvins/geocoder does not take a context; the ctx check here only covers
// cancellation before the call.
func (g *GoogleGeocoder) Geocode(ctx context.Context, venueName string) (GeoPoint, error) {
	if err := ctx.Err(); err != nil {
		return GeoPoint{}, err
	}

	location, err := geocoder.Geocoding(geocoder.Address{Street: venueName})
	if err != nil {
		if common.HasAny(err.Error(), "zero_results", "no results", "empty") {
			return GeoPoint{}, fmt.Errorf("%w for %q", ErrNotFound, venueName)
		}
		g.logger.Warn("google geocoding failed", "venue", venueName, "error", err)
		return GeoPoint{}, fmt.Errorf("google geocode %q: %w", venueName, err)
	}
	return GeoPoint{Lat: location.Latitude, Lon: location.Longitude}, nil
}
