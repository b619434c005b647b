package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mcdev12/pitchside/go/internal/models"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: expected %d destinations, got %d", len(r.values), len(dest))
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *int:
			*d = v.(int)
		case *string:
			*d = v.(string)
		case *bool:
			*d = v.(bool)
		case *time.Time:
			*d = v.(time.Time)
		case *sql.NullString:
			if v == nil {
				*d = sql.NullString{}
			} else {
				*d = sql.NullString{String: v.(string), Valid: true}
			}
		default:
			return fmt.Errorf("scan: unsupported destination %T", dest[i])
		}
	}
	return nil
}

type fakeDB struct {
	query string
	args  []any
	row   fakeRow
	execs []string
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.query = sql
	f.args = args
	return f.row
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("transactions not supported by fakeDB")
}

func TestPostgresCreateLeagueBuildsInsert(t *testing.T) {
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{288, now, now}}}
	p := NewPostgres(db)

	league := &models.League{ID: 288, Name: "PSL", Country: "South Africa", Code: "za", Flag: "f.png"}
	if err := p.CreateLeague(context.Background(), league); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `INSERT INTO "leagues" ("id", "name", "logo", "country", "code", "flag") VALUES ($1, $2, $3, $4, $5, $6) RETURNING "id", "created_at", "updated_at"`
	if db.query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", db.query, want)
	}
	if len(db.args) != 6 || db.args[0] != 288 || db.args[4] != "za" {
		t.Fatalf("unexpected args %v", db.args)
	}
	if logo, ok := db.args[2].(sql.NullString); !ok || logo.Valid {
		t.Fatalf("expected NULL logo, got %#v", db.args[2])
	}
	if !league.CreatedAt.Equal(now) || !league.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps from RETURNING, got %+v", league.Timestamps)
	}
}

func TestPostgresCreateVenueOmitsUnsetID(t *testing.T) {
	now := time.Now()
	db := &fakeDB{row: fakeRow{values: []any{9, now, now}}}
	p := NewPostgres(db)

	venue := &models.Venue{Name: "FNB Stadium", City: "Johannesburg", Country: "South Africa", Capacity: 94736, Surface: "grass"}
	if err := p.CreateVenue(context.Background(), venue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(db.query, `INSERT INTO "venues" ("name", `) {
		t.Fatalf("expected id to be left to the database, got %s", db.query)
	}
	if venue.ID != 9 {
		t.Fatalf("expected id 9, got %d", venue.ID)
	}
}

func TestPostgresCreateMatchQuotesReservedColumns(t *testing.T) {
	now := time.Now()
	db := &fakeDB{row: fakeRow{values: []any{1, now, now}}}
	p := NewPostgres(db)

	match := &models.Match{HomeTeamID: 1, AwayTeamID: 2, VenueID: 1, Date: now, Status: models.MatchStatusScheduled}
	if err := p.CreateMatch(context.Background(), match); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, col := range []string{`"group"`, `"round"`, `"date"`} {
		if !strings.Contains(db.query, col) {
			t.Fatalf("expected %s in %s", col, db.query)
		}
	}
}

func TestPostgresUpsertLeague(t *testing.T) {
	now := time.Now()
	db := &fakeDB{row: fakeRow{values: []any{288, now, now, false}}}
	p := NewPostgres(db)

	league := &models.League{ID: 288, Name: "PSL", Country: "South Africa", Code: "za", Flag: "f.png"}
	created, err := p.UpsertLeague(context.Background(), league)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected update to report created=false")
	}
	for _, want := range []string{
		`ON CONFLICT ("id") DO UPDATE SET`,
		`"code" = EXCLUDED."code"`,
		`"updated_at" = now()`,
		`(xmax = 0) AS inserted`,
	} {
		if !strings.Contains(db.query, want) {
			t.Fatalf("expected %q in %s", want, db.query)
		}
	}
	if strings.Contains(db.query, `"id" = EXCLUDED."id"`) {
		t.Fatalf("id must not be updated: %s", db.query)
	}
}

func TestPostgresUpdateLeague(t *testing.T) {
	now := time.Now()
	db := &fakeDB{row: fakeRow{values: []any{now, now}}}
	p := NewPostgres(db)

	league := &models.League{ID: 288, Name: "PSL", Country: "South Africa", Code: "za", Flag: "f.png"}
	if err := p.UpdateLeague(context.Background(), league); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `UPDATE "leagues" SET "name" = $2, "logo" = $3, "country" = $4, "code" = $5, "flag" = $6, "updated_at" = now() WHERE "id" = $1 RETURNING "created_at", "updated_at"`
	if db.query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", db.query, want)
	}
	if db.args[0] != 288 {
		t.Fatalf("expected id as first arg, got %v", db.args[0])
	}

	db.row = fakeRow{err: pgx.ErrNoRows}
	if err := p.UpdateLeague(context.Background(), league); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresGetLeague(t *testing.T) {
	now := time.Now()
	db := &fakeDB{row: fakeRow{values: []any{288, "PSL", "l.png", "South Africa", "za", "f.png", now, now}}}
	p := NewPostgres(db)

	league, err := p.GetLeague(context.Background(), 288)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if league.Logo == nil || *league.Logo != "l.png" || league.Code != "za" {
		t.Fatalf("unexpected league %+v", league)
	}

	db.row = fakeRow{err: pgx.ErrNoRows}
	if _, err := p.GetLeague(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresRejectsCodeTooLong(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(3)"}
	db := &fakeDB{row: fakeRow{err: pgErr}}
	p := NewPostgres(db)

	league := &models.League{Name: "PSL", Country: "South Africa", Code: "ZAF1", Flag: "f.png"}
	err := p.CreateLeague(context.Background(), league)
	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConstraintError, got %v", err)
	}
	if cerr.Kind != KindTooLong || cerr.Table != "leagues" {
		t.Fatalf("unexpected constraint error %+v", cerr)
	}
	if !errors.Is(err, pgErr) {
		t.Fatal("expected the pg error to stay in the chain")
	}
}

func TestTranslateError(t *testing.T) {
	cases := []struct {
		code string
		kind ConstraintKind
	}{
		{"23502", KindNotNull},
		{"22001", KindTooLong},
		{"23503", KindForeignKey},
		{"23514", KindCheck},
		{"23505", KindUnique},
		{"22003", KindOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := translateError("teams", &pgconn.PgError{Code: tc.code, TableName: "teams", ColumnName: "league_id", ConstraintName: "teams_league_id_fkey"})
			var cerr *ConstraintError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *ConstraintError, got %v", err)
			}
			if cerr.Kind != tc.kind {
				t.Fatalf("expected %s, got %s", tc.kind, cerr.Kind)
			}
			if cerr.Column != "league_id" || cerr.Constraint != "teams_league_id_fkey" {
				t.Fatalf("unexpected details %+v", cerr)
			}
		})
	}

	other := translateError("teams", &pgconn.PgError{Code: "40001"})
	if errors.Is(other, ErrConstraint) {
		t.Fatalf("serialization failure is not a constraint error: %v", other)
	}
	plain := translateError("teams", errors.New("connection reset"))
	if !strings.Contains(plain.Error(), "failed to write teams") {
		t.Fatalf("unexpected error text %q", plain.Error())
	}
}

func TestEnsureSchemaSurfacesBeginError(t *testing.T) {
	p := NewPostgres(&fakeDB{})
	if err := p.EnsureSchema(context.Background()); err == nil {
		t.Fatal("expected begin error")
	}
}
