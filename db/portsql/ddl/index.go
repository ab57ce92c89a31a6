package ddl

import (
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// IndexCreateStatement is the CREATE INDEX statement AST. It also
// renders as an inline clause inside CREATE TABLE via TableCreateStatement.Index.
type IndexCreateStatement struct {
	def ref.IndexDef
}

// CreateIndex constructs an IndexCreateStatement from an IndexDef.
func CreateIndex(def ref.IndexDef) IndexCreateStatement {
	return IndexCreateStatement{def: def}
}

func (s IndexCreateStatement) inlineSQL(qb dialect.QueryBuilder) string {
	w := writer.New()
	if s.def.Unique {
		w.Token("UNIQUE")
	}
	w.Token("KEY")
	w.Token(quotedIdent(qb, s.def.Name))
	w.Token(quotedIdentList(qb, s.def.Columns))
	return w.String()
}

// Build renders s as a standalone CREATE INDEX statement.
func (s IndexCreateStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked (index DDL binds no placeholders).
func (s IndexCreateStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s IndexCreateStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s IndexCreateStatement) render(qb dialect.QueryBuilder) (string, error) {
	w := writer.New()
	w.Token("CREATE")
	if s.def.Unique {
		w.Token("UNIQUE")
	}
	w.Token("INDEX")
	w.Token(quotedIdent(qb, s.def.Name))
	w.Token("ON")
	w.Token(quotedIdent(qb, s.def.Table))
	w.Token(quotedIdentList(qb, s.def.Columns))
	return w.String(), nil
}

// IndexDropStatement is the DROP INDEX statement AST.
type IndexDropStatement struct {
	name  iden.Iden
	table iden.Iden
}

// DropIndex constructs an IndexDropStatement. table is required by
// MySQL/SQLite's `DROP INDEX n ON t` syntax even though Postgres ignores
// it (spec §4.3's dialect table).
func DropIndex(name, table iden.Iden) *IndexDropStatement {
	return &IndexDropStatement{name: name, table: table}
}

// Build renders s against qb.
func (s *IndexDropStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *IndexDropStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *IndexDropStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *IndexDropStatement) render(qb dialect.QueryBuilder) (string, error) {
	return qb.DropIndexSQL(quotedIdent(qb, s.name), quotedIdent(qb, s.table)), nil
}

func quotedIdent(qb dialect.QueryBuilder, name iden.Iden) string {
	w := writer.New()
	qb.QuoteIdent(w, name)
	return w.String()
}

func quotedIdentList(qb dialect.QueryBuilder, names []iden.Iden) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = quotedIdent(qb, n)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
