package ddl

import (
	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// TableTruncateStatement is the TRUNCATE TABLE statement AST.
type TableTruncateStatement struct {
	table ref.TableRef
}

// TruncateTable constructs a TableTruncateStatement for t.
func TruncateTable(t ref.TableRef) *TableTruncateStatement {
	return &TableTruncateStatement{table: t}
}

// Build renders s against qb.
func (s *TableTruncateStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *TableTruncateStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *TableTruncateStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TableTruncateStatement) render(qb dialect.QueryBuilder) (string, error) {
	w := writer.New()
	w.Token("TRUNCATE TABLE")
	w.Token(quotedTableRef(qb, s.table))
	return w.String(), nil
}
