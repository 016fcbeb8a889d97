package football

import (
	"fmt"
	"time"
)

func mapTeamWithVenue(item teamVenueItem) TeamWithVenue {
	return TeamWithVenue{
		Team: Team{
			ID:       item.Team.ID,
			Name:     item.Team.Name,
			Code:     item.Team.Code,
			Country:  item.Team.Country,
			Founded:  item.Team.Founded,
			National: item.Team.National,
			Logo:     item.Team.Logo,
		},
		Venue: mapVenue(item.Venue),
	}
}

// mapVenue null-coalesces venue sub-fields: a missing upstream venue becomes
// a Venue whose fields are all nil, never a missing object.
func mapVenue(v *venuePayload) Venue {
	if v == nil {
		return Venue{}
	}
	return Venue{
		ID:       v.ID,
		Name:     v.Name,
		Address:  v.Address,
		City:     v.City,
		Capacity: v.Capacity,
		Surface:  v.Surface,
		Image:    v.Image,
	}
}

func mapFixture(item fixtureItem) (Fixture, error) {
	date, err := time.Parse(time.RFC3339, item.Fixture.Date)
	if err != nil {
		return Fixture{}, fmt.Errorf("parse fixture date %q: %w", item.Fixture.Date, err)
	}

	var league *string
	if item.League != nil && item.League.Name != "" {
		league = &item.League.Name
	}

	return Fixture{
		ID:       item.Fixture.ID,
		Date:     date,
		HomeTeam: TeamSummary(item.Teams.Home),
		AwayTeam: TeamSummary(item.Teams.Away),
		Venue:    mapVenue(item.Fixture.Venue),
		League:   league,
	}, nil
}
