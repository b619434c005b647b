package models

import "fmt"

// Coach represents a member of a team's coaching staff
type Coach struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Image     *string `json:"image,omitempty"`
	TeamID    int     `json:"team_id"`
	Timestamps
}

func (c Coach) String() string {
	return fmt.Sprintf("<Coach: %s %s>", c.FirstName, c.LastName)
}
