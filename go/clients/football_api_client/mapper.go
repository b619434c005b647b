package football_api_client

import "github.com/mcdev12/pitchside/go/internal/models"

// MapLeague converts one entry of the leagues response into a League. Length
// limits are not checked here; the storage layer rejects violations on write.
func MapLeague(entry LeagueEntry) *models.League {
	league := &models.League{
		ID:      entry.League.ID,
		Name:    entry.League.Name,
		Country: entry.Country.Name,
		Code:    entry.Country.Code,
		Flag:    entry.Country.Flag,
	}
	if entry.League.Logo != "" {
		logo := entry.League.Logo
		league.Logo = &logo
	}
	return league
}
