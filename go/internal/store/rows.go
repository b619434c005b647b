package store

import (
	"github.com/mcdev12/pitchside/go/internal/models"
	"github.com/mcdev12/pitchside/go/internal/schema"
	"github.com/mcdev12/pitchside/go/internal/sqlutil"
)

// withID adds the id column only when the caller supplied one, leaving
// assignment to the storage layer otherwise.
func withID(row schema.Row, id int) schema.Row {
	if id != 0 {
		row["id"] = id
	}
	return row
}

func leagueRow(l *models.League) schema.Row {
	return withID(schema.Row{
		"name":    l.Name,
		"logo":    sqlutil.ToSqlString(l.Logo),
		"country": l.Country,
		"code":    l.Code,
		"flag":    l.Flag,
	}, l.ID)
}

func venueRow(v *models.Venue) schema.Row {
	return withID(schema.Row{
		"name":     v.Name,
		"city":     v.City,
		"country":  v.Country,
		"capacity": v.Capacity,
		"surface":  v.Surface,
		"image":    sqlutil.ToSqlString(v.Image),
	}, v.ID)
}

func teamRow(t *models.Team) schema.Row {
	return withID(schema.Row{
		"name":          t.Name,
		"logo":          sqlutil.ToSqlString(t.Logo),
		"league_id":     t.LeagueID,
		"home_venue_id": t.HomeVenueID,
	}, t.ID)
}

func playerRow(p *models.Player) schema.Row {
	return withID(schema.Row{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"image":      sqlutil.ToSqlString(p.Image),
		"team_id":    p.TeamID,
		"position":   p.Position,
	}, p.ID)
}

func coachRow(c *models.Coach) schema.Row {
	return withID(schema.Row{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"image":      sqlutil.ToSqlString(c.Image),
		"team_id":    c.TeamID,
	}, c.ID)
}

func matchRow(m *models.Match) schema.Row {
	row := schema.Row{
		"home_team_id": m.HomeTeamID,
		"away_team_id": m.AwayTeamID,
		"venue_id":     m.VenueID,
		"date":         m.Date,
		"status":       string(m.Status),

		"home_team_score":     m.Scores.Regular.Home,
		"away_team_score":     m.Scores.Regular.Away,
		"home_team_ht_score":  m.Scores.HalfTime.Home,
		"away_team_ht_score":  m.Scores.HalfTime.Away,
		"home_team_ft_score":  m.Scores.FullTime.Home,
		"away_team_ft_score":  m.Scores.FullTime.Away,
		"home_team_et_score":  sqlutil.ToSqlInt32(homeOf(m.Scores.ExtraTime)),
		"away_team_et_score":  sqlutil.ToSqlInt32(awayOf(m.Scores.ExtraTime)),
		"home_team_pen_score": sqlutil.ToSqlInt32(homeOf(m.Scores.Penalties)),
		"away_team_pen_score": sqlutil.ToSqlInt32(awayOf(m.Scores.Penalties)),

		"referee":     m.Referee,
		"attendance":  m.Attendance,
		"matchday":    m.Matchday,
		"season":      m.Season,
		"competition": m.Competition,
		"round":       m.Round,
		"group":       m.Group,
		"stage":       m.Stage,
		"result":      m.Result,
		"winner":      m.Winner,
		"duration":    m.Duration,

		"weather":        m.Conditions.Weather,
		"temperature":    m.Conditions.Temperature,
		"wind_speed":     m.Conditions.WindSpeed,
		"wind_direction": m.Conditions.WindDirection,
		"humidity":       m.Conditions.Humidity,
		"pitch":          m.Conditions.Pitch,
	}
	if m.Date.IsZero() {
		row["date"] = nil
	}
	return withID(row, m.ID)
}

func homeOf(s *models.Score) *int {
	if s == nil {
		return nil
	}
	return &s.Home
}

func awayOf(s *models.Score) *int {
	if s == nil {
		return nil
	}
	return &s.Away
}
