package models

import (
	"fmt"
	"time"
)

// Score is a home/away goal pair for one phase of a match.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Scores groups the per-phase results. ExtraTime and Penalties are nil when
// the phase was not played.
type Scores struct {
	Regular   Score  `json:"regular"`
	HalfTime  Score  `json:"half_time"`
	FullTime  Score  `json:"full_time"`
	ExtraTime *Score `json:"extra_time,omitempty"`
	Penalties *Score `json:"penalties,omitempty"`
}

// Conditions holds the weather and pitch metadata recorded for a match.
type Conditions struct {
	Weather       string `json:"weather"`
	Temperature   int    `json:"temperature"`
	WindSpeed     int    `json:"wind_speed"`
	WindDirection string `json:"wind_direction"`
	Humidity      int    `json:"humidity"`
	Pitch         string `json:"pitch"`
}

// Match represents a fixture between two teams at a venue
type Match struct {
	ID         int         `json:"id"`
	HomeTeamID int         `json:"home_team_id"`
	AwayTeamID int         `json:"away_team_id"`
	VenueID    int         `json:"venue_id"`
	Date       time.Time   `json:"date"`
	Status     MatchStatus `json:"status"`
	Scores     Scores      `json:"scores"`

	Referee     string `json:"referee"`
	Attendance  int    `json:"attendance"`
	Matchday    int    `json:"matchday"`
	Season      string `json:"season"`
	Competition string `json:"competition"`
	Round       string `json:"round"`
	Group       string `json:"group"`
	Stage       string `json:"stage"`
	Result      string `json:"result"`
	Winner      string `json:"winner"`
	Duration    string `json:"duration"`

	Conditions Conditions `json:"conditions"`
	Timestamps
}

func (m Match) String() string {
	return fmt.Sprintf("<Match: %d vs %d> date: %s status: %s",
		m.HomeTeamID, m.AwayTeamID, m.Date.Format(time.RFC3339), m.Status)
}
