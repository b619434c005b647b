package store

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/pitchside/go/internal/models"
	"github.com/mcdev12/pitchside/go/internal/schema"
)

// maxSmallInt is the upper bound of a SMALLINT primary key.
const maxSmallInt = 32767

// Memory is an in-process store that enforces the schema declarations the
// same way Postgres does. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	rows    map[string]map[int]schema.Row
	nextID  map[string]int
	leagues map[int]models.League
}

// NewMemory constructs an empty Memory store. A nil clock uses the real clock.
func NewMemory(clock clockwork.Clock) *Memory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	m := &Memory{
		clock:   clock,
		rows:    make(map[string]map[int]schema.Row),
		nextID:  make(map[string]int),
		leagues: make(map[int]models.League),
	}
	for _, t := range schema.Tables() {
		m.rows[t.Name] = make(map[int]schema.Row)
		m.nextID[t.Name] = 1
	}
	return m
}

func (m *Memory) CreateLeague(ctx context.Context, league *models.League) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createLeagueLocked(league)
}

func (m *Memory) UpsertLeague(ctx context.Context, league *models.League) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.leagues[league.ID]; league.ID != 0 && exists {
		return false, m.updateLeagueLocked(league)
	}
	if err := m.createLeagueLocked(league); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) UpdateLeague(ctx context.Context, league *models.League) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateLeagueLocked(league)
}

func (m *Memory) GetLeague(ctx context.Context, id int) (*models.League, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	league, ok := m.leagues[id]
	if !ok {
		return nil, fmt.Errorf("league %d: %w", id, ErrNotFound)
	}
	return &league, nil
}

func (m *Memory) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return m.create(schema.Venues, venueRow(venue), &venue.ID, &venue.Timestamps)
}

func (m *Memory) CreateTeam(ctx context.Context, team *models.Team) error {
	return m.create(schema.Teams, teamRow(team), &team.ID, &team.Timestamps)
}

func (m *Memory) CreatePlayer(ctx context.Context, player *models.Player) error {
	return m.create(schema.Players, playerRow(player), &player.ID, &player.Timestamps)
}

func (m *Memory) CreateMatch(ctx context.Context, match *models.Match) error {
	return m.create(schema.Matches, matchRow(match), &match.ID, &match.Timestamps)
}

func (m *Memory) CreateCoach(ctx context.Context, coach *models.Coach) error {
	return m.create(schema.Coaches, coachRow(coach), &coach.ID, &coach.Timestamps)
}

func (m *Memory) create(table string, row schema.Row, id *int, ts *models.Timestamps) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	newID, now, err := m.insertLocked(table, row)
	if err != nil {
		return err
	}
	*id = newID
	*ts = models.Timestamps{CreatedAt: now, UpdatedAt: now}
	return nil
}

func (m *Memory) createLeagueLocked(league *models.League) error {
	id, now, err := m.insertLocked(schema.Leagues, leagueRow(league))
	if err != nil {
		return err
	}
	league.ID = id
	league.Timestamps = models.Timestamps{CreatedAt: now, UpdatedAt: now}
	m.leagues[id] = *league
	return nil
}

func (m *Memory) updateLeagueLocked(league *models.League) error {
	existing, ok := m.leagues[league.ID]
	if !ok {
		return fmt.Errorf("league %d: %w", league.ID, ErrNotFound)
	}

	row := leagueRow(league)
	if err := m.enforce(schema.Leagues, row); err != nil {
		return err
	}

	league.CreatedAt = existing.CreatedAt
	league.UpdatedAt = m.clock.Now()
	m.rows[schema.Leagues][league.ID] = row
	m.leagues[league.ID] = *league
	return nil
}

func (m *Memory) insertLocked(table string, row schema.Row) (int, time.Time, error) {
	if err := m.enforce(table, row); err != nil {
		return 0, time.Time{}, err
	}

	id := m.nextID[table]
	if explicit, ok := row.Int("id"); ok {
		id = int(explicit)
		if id < 1 || id > maxSmallInt {
			return 0, time.Time{}, &ConstraintError{Table: table, Column: "id", Kind: KindOutOfRange}
		}
		if _, taken := m.rows[table][id]; taken {
			return 0, time.Time{}, &ConstraintError{Table: table, Column: "id", Constraint: table + "_pkey", Kind: KindUnique}
		}
	} else if id > maxSmallInt {
		return 0, time.Time{}, &ConstraintError{Table: table, Column: "id", Kind: KindOutOfRange}
	}
	if id >= m.nextID[table] {
		m.nextID[table] = id + 1
	}

	stored := make(schema.Row, len(row)+1)
	for k, v := range row {
		stored[k] = v
	}
	stored["id"] = id
	m.rows[table][id] = stored

	return id, m.clock.Now(), nil
}

// enforce applies the declared NOT NULL, length, foreign key and check
// constraints of table to row.
func (m *Memory) enforce(table string, row schema.Row) error {
	t, ok := schema.Lookup(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	for _, col := range t.Columns {
		if col.ServerDefault {
			continue
		}
		value, present := row.Value(col.Name)
		if !present {
			if !col.Nullable {
				return &ConstraintError{Table: table, Column: col.Name, Kind: KindNotNull}
			}
			continue
		}
		if col.Type == schema.Text && col.MaxLength > 0 {
			if s, ok := value.(string); ok && utf8.RuneCountInString(s) > col.MaxLength {
				return &ConstraintError{Table: table, Column: col.Name, Kind: KindTooLong}
			}
		}
		if col.References != "" {
			ref, _ := row.Int(col.Name)
			if _, exists := m.rows[col.References][int(ref)]; !exists {
				return &ConstraintError{
					Table:      table,
					Column:     col.Name,
					Constraint: fmt.Sprintf("%s_%s_fkey", table, col.Name),
					Kind:       KindForeignKey,
				}
			}
		}
	}

	for _, chk := range t.Checks {
		if !chk.Holds(row) {
			return &ConstraintError{Table: table, Constraint: chk.Name, Kind: KindCheck}
		}
	}
	return nil
}
