// Package geo resolves free-text venue names to geographic coordinates.
package geo

import (
	"context"
	"errors"
)

// GeoPoint is a venue position derived from geocoding a venue name. The
// first upstream result wins; there is no disambiguation by country or
// region, so ambiguous names resolve by upstream ranking.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ErrNotFound is returned when the upstream has no result for a venue name.
// This is an expected outcome, distinct from an upstream failure; callers
// must not proceed to the forecast stage when they see it.
var ErrNotFound = errors.New("no geocoding results found")

// Geocoder resolves a venue name to coordinates. A single lookup, no retry,
// no alternate query strategies.
type Geocoder interface {
	Geocode(ctx context.Context, venueName string) (GeoPoint, error)
}
