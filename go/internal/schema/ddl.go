package schema

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// DDL renders the declarations as idempotent PostgreSQL statements, tables
// first and foreign-key indexes after.
func DDL() []string {
	var stmts, indexes []string
	for _, t := range Tables() {
		stmts = append(stmts, createTable(t))
		for _, fk := range t.ForeignKeys() {
			indexes = append(indexes, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
				pq.QuoteIdentifier(t.Name+"_"+fk.Name+"_idx"),
				pq.QuoteIdentifier(t.Name),
				pq.QuoteIdentifier(fk.Name),
			))
		}
	}
	return append(stmts, indexes...)
}

func createTable(t Table) string {
	lines := make([]string, 0, len(t.Columns)+len(t.Checks))
	for _, c := range t.Columns {
		lines = append(lines, columnDefinition(c))
	}
	for _, chk := range t.Checks {
		lines = append(lines, fmt.Sprintf("CONSTRAINT %s CHECK (%s)", pq.QuoteIdentifier(chk.Name), chk.Expr))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n    %s\n)",
		pq.QuoteIdentifier(t.Name), strings.Join(lines, ",\n    "))
}

func columnDefinition(c Column) string {
	var b strings.Builder
	b.WriteString(pq.QuoteIdentifier(c.Name))
	b.WriteByte(' ')

	switch {
	case c.Type == Text && c.MaxLength > 0:
		fmt.Fprintf(&b, "VARCHAR(%d)", c.MaxLength)
	default:
		b.WriteString(c.Type.String())
	}

	if c.PrimaryKey {
		b.WriteString(" GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY")
		return b.String()
	}
	if !c.Nullable {
		b.WriteString(" NOT NULL")
	}
	if c.ServerDefault && c.Type == Timestamp {
		b.WriteString(" DEFAULT now()")
	}
	if c.References != "" {
		fmt.Fprintf(&b, " REFERENCES %s (%s)", pq.QuoteIdentifier(c.References), pq.QuoteIdentifier("id"))
	}
	return b.String()
}
