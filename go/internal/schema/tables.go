package schema

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mcdev12/pitchside/go/internal/models"
)

const (
	Leagues = "leagues"
	Venues  = "venues"
	Teams   = "teams"
	Players = "players"
	Matches = "matches"
	Coaches = "coaches"
)

// defaultMaxLength bounds every free-text column unless stated otherwise.
const defaultMaxLength = 255

// Tables returns the table declarations in dependency order: a table only
// references tables listed before it.
func Tables() []Table {
	return []Table{
		leaguesTable(),
		venuesTable(),
		teamsTable(),
		playersTable(),
		matchesTable(),
		coachesTable(),
	}
}

// Lookup returns the declaration of the named table.
func Lookup(name string) (Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

func leaguesTable() Table {
	return Table{
		Name: Leagues,
		Columns: withTimestamps(
			idColumn(),
			text("name"),
			nullableText("logo"),
			text("country"),
			Column{Name: "code", Type: Text, MaxLength: 3},
			text("flag"),
		),
	}
}

func venuesTable() Table {
	return Table{
		Name: Venues,
		Columns: withTimestamps(
			idColumn(),
			text("name"),
			text("city"),
			text("country"),
			integer("capacity"),
			text("surface"),
			nullableText("image"),
		),
		Checks: []Check{
			{
				Name: "venues_capacity_check",
				Expr: pq.QuoteIdentifier("capacity") + " >= 0",
				Holds: func(r Row) bool {
					n, ok := r.Int("capacity")
					return !ok || n >= 0
				},
			},
		},
	}
}

func teamsTable() Table {
	return Table{
		Name: Teams,
		Columns: withTimestamps(
			idColumn(),
			text("name"),
			nullableText("logo"),
			reference("league_id", Leagues),
			reference("home_venue_id", Venues),
		),
	}
}

func playersTable() Table {
	return Table{
		Name: Players,
		Columns: withTimestamps(
			idColumn(),
			text("first_name"),
			text("last_name"),
			nullableText("image"),
			reference("team_id", Teams),
			text("position"),
		),
	}
}

func matchesTable() Table {
	return Table{
		Name: Matches,
		Columns: withTimestamps(
			idColumn(),
			reference("home_team_id", Teams),
			reference("away_team_id", Teams),
			reference("venue_id", Venues),
			Column{Name: "date", Type: Timestamp},
			text("status"),

			integer("home_team_score"),
			integer("away_team_score"),
			integer("home_team_ht_score"),
			integer("away_team_ht_score"),
			integer("home_team_ft_score"),
			integer("away_team_ft_score"),
			nullableInteger("home_team_et_score"),
			nullableInteger("away_team_et_score"),
			nullableInteger("home_team_pen_score"),
			nullableInteger("away_team_pen_score"),

			text("referee"),
			integer("attendance"),
			integer("matchday"),
			text("season"),
			text("competition"),
			text("round"),
			text("group"),
			text("stage"),
			text("result"),
			text("winner"),
			text("duration"),
			text("weather"),
			integer("temperature"),
			integer("wind_speed"),
			text("wind_direction"),
			integer("humidity"),
			text("pitch"),
		),
		Checks: []Check{
			{
				Name: "matches_status_check",
				Expr: statusCheckExpr(),
				Holds: func(r Row) bool {
					s, ok := r.Text("status")
					return !ok || models.MatchStatus(s).Valid()
				},
			},
			{
				Name: "matches_distinct_teams_check",
				Expr: pq.QuoteIdentifier("home_team_id") + " <> " + pq.QuoteIdentifier("away_team_id"),
				Holds: func(r Row) bool {
					home, okHome := r.Int("home_team_id")
					away, okAway := r.Int("away_team_id")
					return !okHome || !okAway || home != away
				},
			},
		},
	}
}

func coachesTable() Table {
	return Table{
		Name: Coaches,
		Columns: withTimestamps(
			idColumn(),
			text("first_name"),
			text("last_name"),
			nullableText("image"),
			reference("team_id", Teams),
		),
	}
}

func statusCheckExpr() string {
	all := models.AllMatchStatuses()
	literals := make([]string, len(all))
	for i, s := range all {
		literals[i] = pq.QuoteLiteral(string(s))
	}
	return fmt.Sprintf("%s IN (%s)", pq.QuoteIdentifier("status"), strings.Join(literals, ", "))
}

func idColumn() Column {
	return Column{Name: "id", Type: SmallInt, PrimaryKey: true, ServerDefault: true}
}

func text(name string) Column {
	return Column{Name: name, Type: Text, MaxLength: defaultMaxLength}
}

func nullableText(name string) Column {
	return Column{Name: name, Type: Text, MaxLength: defaultMaxLength, Nullable: true}
}

func integer(name string) Column {
	return Column{Name: name, Type: Integer}
}

func nullableInteger(name string) Column {
	return Column{Name: name, Type: Integer, Nullable: true}
}

func reference(name, table string) Column {
	return Column{Name: name, Type: Integer, References: table}
}

func withTimestamps(cols ...Column) []Column {
	return append(cols,
		Column{Name: "created_at", Type: Timestamp, ServerDefault: true},
		Column{Name: "updated_at", Type: Timestamp, ServerDefault: true},
	)
}
