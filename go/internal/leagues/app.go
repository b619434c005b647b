package leagues

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pitchside/go/clients/football_api_client"
	"github.com/mcdev12/pitchside/go/internal/models"
	"github.com/rs/zerolog/log"
)

// LeaguesClient is what the app needs from the API-Football client.
type LeaguesClient interface {
	GetLeaguesByCountryCode(ctx context.Context, code string) (*football_api_client.LeaguesResponse, []byte, error)
}

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	UpsertLeague(ctx context.Context, league *models.League) (bool, error)
	GetLeague(ctx context.Context, id int) (*models.League, error)
}

// App handles league ingestion
type App struct {
	client LeaguesClient
	repo   LeaguesRepository
}

// NewApp creates a new leagues App. repo may be nil when nothing is
// persisted; ImportByCountryCode and GetLeague then fail.
func NewApp(client LeaguesClient, repo LeaguesRepository) *App {
	return &App{
		client: client,
		repo:   repo,
	}
}

// FetchByCountryCode performs one request for the given country code and
// maps the first league in the response. The code is passed through as is.
func (a *App) FetchByCountryCode(ctx context.Context, code string) (*FetchResult, error) {
	logger := log.With().
		Str("request_id", uuid.NewString()).
		Str("code", code).
		Logger()

	logger.Debug().Msg("fetching leagues by country code")

	resp, raw, err := a.client.GetLeaguesByCountryCode(ctx, code)
	if err != nil {
		if transportErr, ok := asTransportError(code, err); ok {
			logger.Error().Err(transportErr.Err).Msg("leagues request failed")
			return nil, transportErr
		}
		logger.Error().Err(err).Msg("leagues request rejected")
		return nil, fmt.Errorf("failed to get leagues for code %q: %w", code, err)
	}

	if len(resp.Response) == 0 {
		logger.Warn().Int("results", resp.Results).Msg("empty leagues response")
		return nil, fmt.Errorf("%w: %q", ErrLeagueNotFound, code)
	}

	league := football_api_client.MapLeague(resp.Response[0])
	logger.Info().
		Int("league_id", league.ID).
		Str("league", league.Name).
		Int("results", len(resp.Response)).
		Msg("fetched league")

	return &FetchResult{
		Raw:    json.RawMessage(raw),
		League: league,
	}, nil
}

// ImportByCountryCode fetches the league and upserts it. Constraint
// violations such as an over-long code surface from the storage layer.
func (a *App) ImportByCountryCode(ctx context.Context, code string) (*ImportResult, error) {
	if a.repo == nil {
		return nil, fmt.Errorf("leagues app has no repository configured")
	}

	result, err := a.FetchByCountryCode(ctx, code)
	if err != nil {
		return nil, err
	}

	created, err := a.repo.UpsertLeague(ctx, result.League)
	if err != nil {
		return nil, fmt.Errorf("failed to import league: %w", err)
	}

	log.Info().
		Int("league_id", result.League.ID).
		Bool("created", created).
		Time("updated_at", result.League.UpdatedAt).
		Msg("imported league")

	return &ImportResult{Raw: result.Raw, League: result.League, Created: created}, nil
}

// GetLeague retrieves a stored league by ID
func (a *App) GetLeague(ctx context.Context, id int) (*models.League, error) {
	if a.repo == nil {
		return nil, fmt.Errorf("leagues app has no repository configured")
	}
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}
