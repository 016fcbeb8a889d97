package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"game-weather/internal/upstream"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *OpenWeatherGeocoder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenWeatherGeocoder(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		HTTPClient: srv.Client(),
	})
}

func TestGeocodeFirstResultWins(t *testing.T) {
	var gotQuery string
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[
			{"name": "Emirates Stadium", "lat": 51.5549, "lon": -0.1084, "country": "GB"},
			{"name": "Emirates Stadium", "lat": 0, "lon": 0, "country": "XX"}
		]`))
	})

	pt, err := g.Geocode(context.Background(), "Emirates Stadium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "appid=test-key&limit=1&q=Emirates+Stadium" {
		t.Fatalf("query = %q", gotQuery)
	}
	if pt.Lat != 51.5549 || pt.Lon != -0.1084 {
		t.Fatalf("point = %+v", pt)
	}
}

func TestGeocodeNotFound(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := g.Geocode(context.Background(), "Emirates Stadium")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGeocodeUpstreamError(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	})

	_, err := g.Geocode(context.Background(), "Emirates Stadium")
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("upstream failure must not look like not-found: %v", err)
	}
	var statusErr *upstream.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *upstream.StatusError", err)
	}
	if statusErr.Status != http.StatusUnauthorized || statusErr.Message != "Invalid API key" {
		t.Fatalf("statusErr = %+v", statusErr)
	}
}
