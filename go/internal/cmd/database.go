package main

import (
	"context"
	"fmt"

	"github.com/mcdev12/pitchside/go/internal/dbconfig"
	"github.com/mcdev12/pitchside/go/internal/store"
	"github.com/rs/zerolog/log"
)

// setupStore connects to Postgres and creates any missing tables. The
// returned func closes the pool.
func setupStore(ctx context.Context) (*store.Postgres, func(), error) {
	dbCfg := dbconfig.NewConfigFromEnv()

	pool, err := store.Connect(ctx, dbCfg)
	if err != nil {
		return nil, nil, err
	}

	pg := store.NewPostgres(pool)
	if err := pg.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	log.Info().
		Str("database", dbCfg.Database).
		Str("host", dbCfg.Host).
		Msg("database schema ready")

	return pg, pool.Close, nil
}
