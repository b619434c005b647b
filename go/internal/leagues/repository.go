package leagues

import (
	"context"
	"fmt"

	"github.com/mcdev12/pitchside/go/internal/models"
	"github.com/mcdev12/pitchside/go/internal/store"
)

// LeagueStore is the part of store.Store the repository uses.
type LeagueStore interface {
	UpsertLeague(ctx context.Context, league *models.League) (bool, error)
	GetLeague(ctx context.Context, id int) (*models.League, error)
}

var _ LeagueStore = (store.Store)(nil)

// Repository implements league persistence on top of the storage layer.
type Repository struct {
	store LeagueStore
}

// NewRepository creates a new leagues repository
func NewRepository(s LeagueStore) *Repository {
	return &Repository{
		store: s,
	}
}

func (r *Repository) UpsertLeague(ctx context.Context, league *models.League) (bool, error) {
	created, err := r.store.UpsertLeague(ctx, league)
	if err != nil {
		return false, fmt.Errorf("failed to upsert league %d: %w", league.ID, err)
	}
	return created, nil
}

func (r *Repository) GetLeague(ctx context.Context, id int) (*models.League, error) {
	league, err := r.store.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league %d: %w", id, err)
	}
	return league, nil
}
