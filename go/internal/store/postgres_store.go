package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/mcdev12/pitchside/go/internal/dbconfig"
	"github.com/mcdev12/pitchside/go/internal/models"
	"github.com/mcdev12/pitchside/go/internal/schema"
	"github.com/mcdev12/pitchside/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

// DBTX is the subset of *pgxpool.Pool the store uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Postgres stores entities in PostgreSQL; constraint enforcement and
// timestamp defaults come from the DDL rendered by schema.DDL.
type Postgres struct {
	db DBTX
}

// NewPostgres wraps an existing pool or connection.
func NewPostgres(db DBTX) *Postgres {
	return &Postgres{db: db}
}

// Connect opens a pgx pool for cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg dbconfig.Config) (*pgxpool.Pool, error) {
	poolCfg, err := cfg.PoolConfig()
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")
	return pool, nil
}

// EnsureSchema creates any missing tables and indexes in one transaction.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	return sqlutil.Run(ctx, p.db, func(tx pgx.Tx) error {
		for _, stmt := range schema.DDL() {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}

func (p *Postgres) CreateLeague(ctx context.Context, league *models.League) error {
	return p.create(ctx, schema.Leagues, leagueRow(league), &league.ID, &league.Timestamps)
}

func (p *Postgres) UpsertLeague(ctx context.Context, league *models.League) (bool, error) {
	if league.ID == 0 {
		if err := p.CreateLeague(ctx, league); err != nil {
			return false, err
		}
		return true, nil
	}

	cols, args := columnsOf(schema.Leagues, leagueRow(league))
	updates := make([]string, 0, len(cols))
	for _, c := range cols {
		if c == "id" {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", pq.QuoteIdentifier(c), pq.QuoteIdentifier(c)))
	}
	updates = append(updates, pq.QuoteIdentifier("updated_at")+" = now()")

	query := insertSQL(schema.Leagues, cols) +
		fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s", pq.QuoteIdentifier("id"), strings.Join(updates, ", ")) +
		returningSQL + ", (xmax = 0) AS inserted"

	var inserted bool
	err := p.db.QueryRow(ctx, query, args...).Scan(&league.ID, &league.CreatedAt, &league.UpdatedAt, &inserted)
	if err != nil {
		return false, translateError(schema.Leagues, err)
	}
	return inserted, nil
}

func (p *Postgres) UpdateLeague(ctx context.Context, league *models.League) error {
	cols, args := columnsOf(schema.Leagues, leagueRow(league))
	sets := make([]string, 0, len(cols))
	params := make([]any, 0, len(args)+1)
	params = append(params, league.ID)
	for i, c := range cols {
		if c == "id" {
			continue
		}
		params = append(params, args[i])
		sets = append(sets, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(c), len(params)))
	}
	sets = append(sets, pq.QuoteIdentifier("updated_at")+" = now()")

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1 RETURNING %s, %s",
		pq.QuoteIdentifier(schema.Leagues), strings.Join(sets, ", "), pq.QuoteIdentifier("id"),
		pq.QuoteIdentifier("created_at"), pq.QuoteIdentifier("updated_at"))

	err := p.db.QueryRow(ctx, query, params...).Scan(&league.CreatedAt, &league.UpdatedAt)
	if err != nil {
		return translateError(schema.Leagues, err)
	}
	return nil
}

func (p *Postgres) GetLeague(ctx context.Context, id int) (*models.League, error) {
	const query = `SELECT "id", "name", "logo", "country", "code", "flag", "created_at", "updated_at"
FROM "leagues" WHERE "id" = $1`

	var (
		league models.League
		logo   sql.NullString
	)
	err := p.db.QueryRow(ctx, query, id).Scan(
		&league.ID, &league.Name, &logo, &league.Country, &league.Code, &league.Flag,
		&league.CreatedAt, &league.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("league %d: %w", id, translateError(schema.Leagues, err))
	}
	league.Logo = sqlutil.FromSqlStringPtr(logo)
	return &league, nil
}

func (p *Postgres) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return p.create(ctx, schema.Venues, venueRow(venue), &venue.ID, &venue.Timestamps)
}

func (p *Postgres) CreateTeam(ctx context.Context, team *models.Team) error {
	return p.create(ctx, schema.Teams, teamRow(team), &team.ID, &team.Timestamps)
}

func (p *Postgres) CreatePlayer(ctx context.Context, player *models.Player) error {
	return p.create(ctx, schema.Players, playerRow(player), &player.ID, &player.Timestamps)
}

func (p *Postgres) CreateMatch(ctx context.Context, match *models.Match) error {
	return p.create(ctx, schema.Matches, matchRow(match), &match.ID, &match.Timestamps)
}

func (p *Postgres) CreateCoach(ctx context.Context, coach *models.Coach) error {
	return p.create(ctx, schema.Coaches, coachRow(coach), &coach.ID, &coach.Timestamps)
}

func (p *Postgres) create(ctx context.Context, table string, row schema.Row, id *int, ts *models.Timestamps) error {
	cols, args := columnsOf(table, row)
	query := insertSQL(table, cols) + returningSQL
	if err := p.db.QueryRow(ctx, query, args...).Scan(id, &ts.CreatedAt, &ts.UpdatedAt); err != nil {
		return translateError(table, err)
	}
	return nil
}

var returningSQL = fmt.Sprintf(" RETURNING %s, %s, %s",
	pq.QuoteIdentifier("id"), pq.QuoteIdentifier("created_at"), pq.QuoteIdentifier("updated_at"))

// columnsOf returns the columns present in row, in declaration order, with
// their values. NULL values are kept so the database reports NOT NULL
// violations itself.
func columnsOf(table string, row schema.Row) ([]string, []any) {
	t, _ := schema.Lookup(table)
	cols := make([]string, 0, len(row))
	args := make([]any, 0, len(row))
	for _, c := range t.Columns {
		v, ok := row[c.Name]
		if !ok {
			continue
		}
		cols = append(cols, c.Name)
		args = append(args, v)
	}
	return cols, args
}

func insertSQL(table string, cols []string) string {
	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pq.QuoteIdentifier(c)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pq.QuoteIdentifier(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
}

// translateError maps Postgres SQLSTATEs onto the store's error types.
func translateError(table string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to write %s: %w", table, err)
	}

	var kind ConstraintKind
	switch pgErr.Code {
	case "23502":
		kind = KindNotNull
	case "22001":
		kind = KindTooLong
	case "23503":
		kind = KindForeignKey
	case "23514":
		kind = KindCheck
	case "23505":
		kind = KindUnique
	case "22003":
		kind = KindOutOfRange
	default:
		return fmt.Errorf("failed to write %s: %w", table, err)
	}

	if pgErr.TableName != "" {
		table = pgErr.TableName
	}
	return &ConstraintError{
		Table:      table,
		Column:     pgErr.ColumnName,
		Constraint: pgErr.ConstraintName,
		Kind:       kind,
		Err:        err,
	}
}
