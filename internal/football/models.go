// Package football is the API-Football client: team search and upcoming
// fixtures, normalized from the upstream's ad hoc JSON into the stable
// schema the rest of the service consumes.
package football

import "time"

// Team is the standardized team schema. ID, Name and Logo are mandatory in
// the upstream contract; Code and Founded may be null upstream.
type Team struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Code     *string `json:"code"`
	Country  string  `json:"country"`
	Founded  *int    `json:"founded"`
	National bool    `json:"national"`
	Logo     string  `json:"logo"`
}

// Venue is always a present object, never absent: when the upstream omits
// venue data entirely, every field is nil. Callers branch on field values
// only, never on the object's existence.
type Venue struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
	Surface  *string `json:"surface"`
	Image    *string `json:"image"`
}

// TeamWithVenue is one standardized search result item.
type TeamWithVenue struct {
	Team
	Venue Venue `json:"venue"`
}

// SearchResult is the standardized search response: upstream order, no
// de-duplication.
type SearchResult struct {
	Results int             `json:"results"`
	Teams   []TeamWithVenue `json:"teams"`
}

// TeamSummary is the minimal team projection embedded in fixtures. It is the
// single canonical shape for "team-ish" references.
type TeamSummary struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Fixture is one upcoming match. It lives only in transient session state
// and is discarded on the next search.
type Fixture struct {
	ID       int         `json:"id"`
	Date     time.Time   `json:"date"`
	HomeTeam TeamSummary `json:"homeTeam"`
	AwayTeam TeamSummary `json:"awayTeam"`
	Venue    Venue       `json:"venue"`
	League   *string     `json:"league"`
}
