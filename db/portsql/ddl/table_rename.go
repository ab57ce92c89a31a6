package ddl

import (
	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// TableRenameStatement is the table rename statement AST. MySQL renders
// `RENAME TABLE x TO y`; Postgres and SQLite render
// `ALTER TABLE x RENAME TO y` (spec §4.3's dialect table).
type TableRenameStatement struct {
	from ref.TableRef
	to   ref.TableRef
}

// RenameTable constructs a TableRenameStatement from from to to.
func RenameTable(from, to ref.TableRef) *TableRenameStatement {
	return &TableRenameStatement{from: from, to: to}
}

// Build renders s against qb.
func (s *TableRenameStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *TableRenameStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *TableRenameStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TableRenameStatement) render(qb dialect.QueryBuilder) (string, error) {
	return qb.RenameTableSQL(quotedTableRef(qb, s.from), quotedTableRef(qb, s.to)), nil
}
