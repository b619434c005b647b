// Package store is the relational storage layer for the football entities.
// Both implementations enforce the constraints declared in package schema and
// own id assignment and timestamp defaults.
package store

import (
	"context"

	"github.com/mcdev12/pitchside/go/internal/models"
)

// Store is implemented by Postgres and Memory. Create methods fill the ID and
// Timestamps of the passed model.
type Store interface {
	CreateLeague(ctx context.Context, league *models.League) error
	// UpsertLeague inserts the league or, when a row with the same id already
	// exists, updates it and refreshes UpdatedAt. It reports whether a row
	// was created.
	UpsertLeague(ctx context.Context, league *models.League) (bool, error)
	UpdateLeague(ctx context.Context, league *models.League) error
	GetLeague(ctx context.Context, id int) (*models.League, error)

	CreateVenue(ctx context.Context, venue *models.Venue) error
	CreateTeam(ctx context.Context, team *models.Team) error
	CreatePlayer(ctx context.Context, player *models.Player) error
	CreateMatch(ctx context.Context, match *models.Match) error
	CreateCoach(ctx context.Context, coach *models.Coach) error
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Postgres)(nil)
)
