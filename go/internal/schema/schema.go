// Package schema declares the relational shape of the football entities:
// column types, nullability, maximum lengths, foreign keys and check
// constraints. Storage implementations enforce these declarations; the
// package itself performs no validation.
package schema

import (
	"database/sql/driver"
	"fmt"
)

// ColumnType is the storage type of a column.
type ColumnType int

const (
	SmallInt ColumnType = iota
	Integer
	Text
	Timestamp
)

func (t ColumnType) String() string {
	switch t {
	case SmallInt:
		return "SMALLINT"
	case Integer:
		return "INTEGER"
	case Text:
		return "TEXT"
	case Timestamp:
		return "TIMESTAMPTZ"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// Column describes one column of a table.
type Column struct {
	Name       string
	Type       ColumnType
	MaxLength  int // characters; 0 means unbounded
	Nullable   bool
	PrimaryKey bool
	// References names the table whose id this column points at.
	References string
	// ServerDefault columns are filled by the storage layer when absent.
	ServerDefault bool
}

// Row is a column-name keyed record as handed to a storage layer. A nil value
// (or a driver.Valuer yielding nil) is SQL NULL.
type Row map[string]any

// Check is a table-level CHECK constraint. Expr is rendered into the DDL and
// Holds evaluates the same predicate for in-process stores.
type Check struct {
	Name  string
	Expr  string
	Holds func(Row) bool
}

// Table describes one entity table.
type Table struct {
	Name    string
	Columns []Column
	Checks  []Check
}

// Column returns the named column.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ForeignKeys returns the columns that reference another table.
func (t Table) ForeignKeys() []Column {
	var fks []Column
	for _, c := range t.Columns {
		if c.References != "" {
			fks = append(fks, c)
		}
	}
	return fks
}

// Value resolves a row value, unwrapping driver.Valuer types such as
// sql.NullString. It reports false when the column is absent or NULL.
func (r Row) Value(name string) (any, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return nil, false
	}
	if valuer, ok := v.(driver.Valuer); ok {
		resolved, err := valuer.Value()
		if err != nil || resolved == nil {
			return nil, false
		}
		return resolved, true
	}
	return v, true
}

// Int returns the value of an integer column.
func (r Row) Int(name string) (int64, bool) {
	v, ok := r.Value(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// Text returns the value of a text column.
func (r Row) Text(name string) (string, bool) {
	v, ok := r.Value(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
