package models

import "fmt"

// Team represents a football club in the system
type Team struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo,omitempty"`
	LeagueID    int     `json:"league_id"`
	HomeVenueID int     `json:"home_venue_id"`
	Timestamps

	// Loaded relations, nil unless the caller populated them.
	League  *League  `json:"league,omitempty"`
	Venue   *Venue   `json:"venue,omitempty"`
	Players []Player `json:"players,omitempty"`
	Coaches []Coach  `json:"coaches,omitempty"`
}

func (t Team) String() string {
	return fmt.Sprintf("<Team: %s>", t.Name)
}
