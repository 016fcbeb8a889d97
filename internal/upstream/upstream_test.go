package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoReturnsServerErrorResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message": "upstream exploded"}`))
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	// A 5xx counts as a breaker failure but the response must still reach
	// the caller so it can extract the upstream message.
	resp, err := Do(context.Background(), srv.Client(), NewBreaker("test"), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
}

func TestDoNilClient(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://localhost/", nil)
	if _, err := Do(context.Background(), nil, NewBreaker("test"), req); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestDoCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, _ := http.NewRequest(http.MethodGet, "http://localhost/", nil)
	if _, err := Do(ctx, http.DefaultClient, NewBreaker("test"), req); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestMessageFromBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string message", body: `{"message": "Invalid API key"}`, want: "Invalid API key"},
		{name: "errors object", body: `{"errors": {"token": "missing application key"}}`, want: "missing application key"},
		{name: "empty object", body: `{}`, want: "fetch failed"},
		{name: "not json", body: `gateway timeout`, want: "fetch failed"},
		{name: "errors array ignored", body: `{"errors": []}`, want: "fetch failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageFromBody([]byte(tt.body), "fetch failed"); got != tt.want {
				t.Fatalf("MessageFromBody(%s) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Status: 403, Message: "not subscribed"}
	if got := err.Error(); got != "not subscribed (status=403)" {
		t.Fatalf("Error() = %q", got)
	}
	bare := &StatusError{Status: 500}
	if got := bare.Error(); got != "fetch failed (status=500)" {
		t.Fatalf("Error() = %q", got)
	}
}
