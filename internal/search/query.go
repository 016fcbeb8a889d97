// Package search implements the query term contract shared by the
// request-issuing and request-receiving sides of team search. Both sides
// validate independently; the server never trusts the client's check.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTerm marks a search term that fails the shape contract.
var ErrInvalidTerm = errors.New("invalid search term")

const minTermLength = 3

// ValidateTerm checks a raw search term against the shared contract and
// returns the normalized form the upstream search API expects: lower-cased,
// interior whitespace joined with underscores.
//
// The length check runs on the raw term, before normalization. Allowed
// characters are ASCII letters, whitespace and underscore; anything else
// rejects the whole term.
func ValidateTerm(term string) (string, error) {
	if len(term) < minTermLength {
		return "", fmt.Errorf("%w: search query must be at least 3 alphabetic characters", ErrInvalidTerm)
	}
	for _, r := range term {
		if !isAllowed(r) {
			return "", fmt.Errorf("%w: search query must be at least 3 alphabetic characters", ErrInvalidTerm)
		}
	}
	return strings.Join(strings.Fields(strings.ToLower(term)), "_"), nil
}

func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '_':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r':
		return true
	}
	return false
}
