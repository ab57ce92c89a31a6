// Package dialect implements the query-builder capability described by
// the core spec: a small set of render hooks that let the shared
// rendering algorithms in query and ddl produce MySQL-, Postgres-, and
// SQLite-correct SQL without branching on dialect themselves.
package dialect

import (
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// Func enumerates the portable function vocabulary that needs a
// dialect-specific name mapping.
type Func int

const (
	FuncIfNull Func = iota
	FuncCharLength
)

// QueryBuilder is the dialect-parameterized rendering capability. The
// three concrete implementations are the package-level singletons
// MysqlQueryBuilder, PostgresQueryBuilder, and SqliteQueryBuilder.
type QueryBuilder interface {
	// Name identifies the dialect for error messages and tests.
	Name() string

	// QuoteIdent writes a quoted identifier to w.
	QuoteIdent(w *writer.Writer, name iden.Iden)

	// Placeholder returns the SQL text for the pos-th (1-based) bound
	// value in the statement.
	Placeholder(pos int) string

	// MapFunc returns the dialect's name for a portable function.
	MapFunc(f Func) string

	// SupportsReturning reports whether INSERT ... RETURNING is valid.
	SupportsReturning() bool

	// SupportsUpdateOrderLimit reports whether UPDATE/DELETE may carry
	// ORDER BY / LIMIT.
	SupportsUpdateOrderLimit() bool

	// SupportsEnumType reports whether CREATE/ALTER/DROP TYPE ... AS ENUM
	// is valid.
	SupportsEnumType() bool

	// ColumnTypeSQL returns the type token for ct. autoIncPK is true when
	// the column carries both AutoIncrement and PrimaryKey, which on
	// Postgres substitutes "serial" and on SQLite forces "integer".
	ColumnTypeSQL(ct ref.ColumnType, autoIncPK bool) string

	// AutoIncrementKeyword returns the keyword to emit for a column whose
	// autoIncPK flag is set (empty string when autoIncPK is false, or if
	// the dialect expresses auto-increment purely through the type token,
	// as Postgres does).
	AutoIncrementKeyword(autoIncPK bool) string

	// RenameTableSQL renders a full RENAME TABLE statement given already
	// quoted identifiers.
	RenameTableSQL(oldQuoted, newQuoted string) string

	// DropIndexSQL renders a full DROP INDEX statement given already
	// quoted identifiers.
	DropIndexSQL(indexQuoted, tableQuoted string) string

	// ForeignKeyInlineSQL renders a foreign key constraint clause for
	// inclusion inside CREATE TABLE's column list.
	ForeignKeyInlineSQL(fk ref.ForeignKeyDef) string

	// ForeignKeyDropSQL renders an ALTER TABLE ... DROP FOREIGN KEY /
	// DROP CONSTRAINT clause, or fails with ErrUnsupportedOnDialect.
	ForeignKeyDropSQL(fk ref.ForeignKeyDef) (string, error)
}

// Binder threads the running placeholder count and the caller's
// Collector through a single render call.
type Binder struct {
	QB        QueryBuilder
	Collector writer.Collector
	count     int
}

// NewBinder constructs a Binder bound to qb and collector.
func NewBinder(qb QueryBuilder, collector writer.Collector) *Binder {
	return &Binder{QB: qb, Collector: collector}
}

// Bind pushes v into the collector and writes the next placeholder to w.
func (b *Binder) Bind(w *writer.Writer, v value.Value) {
	b.Collector(v)
	b.count++
	w.Token(b.QB.Placeholder(b.count))
}

// Count reports how many values have been bound so far.
func (b *Binder) Count() int {
	return b.count
}

// QuoteIdentString is a convenience for dialect implementations: it
// writes name wrapped in quote on both sides with no interior escaping,
// matching the spec's "caller responsibility" note on Iden.Unquoted.
func QuoteIdentString(w *writer.Writer, quote byte, name iden.Iden) {
	w.WriteByte(quote)
	w.WriteString(iden.Text(name))
	w.WriteByte(quote)
}
