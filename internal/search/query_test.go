package search

import (
	"errors"
	"testing"
)

func TestValidateTerm(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		want    string
		wantErr bool
	}{
		{name: "simple lowercase", term: "arsenal", want: "arsenal"},
		{name: "mixed case", term: "Arsenal", want: "arsenal"},
		{name: "interior space becomes underscore", term: "Manchester United", want: "manchester_united"},
		{name: "multiple spaces collapse", term: "Real   Madrid", want: "real_madrid"},
		{name: "underscore passes through", term: "west_ham", want: "west_ham"},
		{name: "too short", term: "ar", wantErr: true},
		{name: "empty", term: "", wantErr: true},
		{name: "digits rejected", term: "arsenal 2", wantErr: true},
		{name: "punctuation rejected", term: "st. pauli", wantErr: true},
		{name: "unicode rejected", term: "köln", wantErr: true},
		{name: "hyphen rejected", term: "saint-etienne", wantErr: true},
		{name: "length counted before trimming", term: "ar ", want: "ar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTerm(tt.term)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateTerm(%q) = %q, want error", tt.term, got)
				}
				if !errors.Is(err, ErrInvalidTerm) {
					t.Fatalf("ValidateTerm(%q) error = %v, want ErrInvalidTerm", tt.term, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateTerm(%q) unexpected error: %v", tt.term, err)
			}
			if got != tt.want {
				t.Fatalf("ValidateTerm(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestValidateTermRejectionMessage(t *testing.T) {
	_, err := ValidateTerm("ar")
	if err == nil {
		t.Fatal("expected error for two-character term")
	}
	want := "invalid search term: search query must be at least 3 alphabetic characters"
	if err.Error() != want {
		t.Fatalf("error message = %q, want %q", err.Error(), want)
	}
}
