package models

import "fmt"

// Player represents a squad member of a team
type Player struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Image     *string `json:"image,omitempty"`
	TeamID    int     `json:"team_id"`
	Position  string  `json:"position"`
	Timestamps
}

func (p Player) String() string {
	return fmt.Sprintf("<Player: %s %s>", p.FirstName, p.LastName)
}
