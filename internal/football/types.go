package football

// Wire types for the API-Football v3 responses. Venue payloads are pointers
// so a missing venue object decodes to nil instead of failing.

type teamsResponse struct {
	Results  int             `json:"results"`
	Response []teamVenueItem `json:"response"`
}

type teamVenueItem struct {
	Team  teamPayload   `json:"team"`
	Venue *venuePayload `json:"venue"`
}

type teamPayload struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Code     *string `json:"code"`
	Country  string  `json:"country"`
	Founded  *int    `json:"founded"`
	National bool    `json:"national"`
	Logo     string  `json:"logo"`
}

type venuePayload struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Capacity *int    `json:"capacity"`
	Surface  *string `json:"surface"`
	Image    *string `json:"image"`
}

type fixturesResponse struct {
	Response []fixtureItem `json:"response"`
}

type fixtureItem struct {
	Fixture fixturePayload `json:"fixture"`
	Teams   struct {
		Home teamSummaryPayload `json:"home"`
		Away teamSummaryPayload `json:"away"`
	} `json:"teams"`
	League *leaguePayload `json:"league"`
}

type fixturePayload struct {
	ID    int           `json:"id"`
	Date  string        `json:"date"`
	Venue *venuePayload `json:"venue"`
}

type teamSummaryPayload struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type leaguePayload struct {
	Name string `json:"name"`
}
