// Package upstream holds the pieces shared by every outbound API client:
// circuit-breaker-wrapped request execution, the typed status error, and
// tolerant error-message extraction from upstream bodies.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tidwall/gjson"
)

var (
	// ErrCircuitOpen is returned when the breaker for an upstream is open and
	// the request was not attempted.
	ErrCircuitOpen = errors.New("circuit breaker open")

	errNoHTTPClient = errors.New("http client not configured")
	errServerError  = errors.New("server error")
)

// StatusError reports a non-success HTTP status from an upstream API,
// carrying the best available message: the upstream-provided one when the
// body has it, else a caller-supplied fallback.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "fetch failed"
	}
	return fmt.Sprintf("%s (status=%d)", msg, e.Status)
}

// NewBreaker creates the circuit breaker used for one upstream host.
func NewBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// Do executes a single attempt of req through the circuit breaker. There are
// no retries: a failed attempt fails the call. The breaker counts transport
// errors and 5xx responses as failures, but any obtained response is returned
// to the caller so it can read the body (upstream error messages live there).
func Do(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	req = req.WithContext(ctx)

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode >= 500 {
			return resp, errServerError
		}
		return resp, nil
	})

	resp, _ := result.(*http.Response)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			if resp != nil {
				resp.Body.Close()
			}
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		if resp != nil {
			// 5xx still carries a body worth surfacing to the caller.
			return resp, nil
		}
		return nil, err
	}
	return resp, nil
}

// MessageFromBody pulls a human-readable message out of an upstream error
// body. The upstreams here disagree on shape (string "message", object
// "errors", numeric "cod"), so extraction is tolerant rather than typed.
func MessageFromBody(body []byte, fallback string) string {
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	if errs := gjson.GetBytes(body, "errors"); errs.IsObject() {
		var first string
		errs.ForEach(func(_, value gjson.Result) bool {
			first = value.String()
			return false
		})
		if first != "" {
			return first
		}
	}
	return fallback
}
