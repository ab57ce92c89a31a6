package ddl

import (
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// TableDropStatement is the DROP TABLE statement AST.
type TableDropStatement struct {
	tables   []ref.TableRef
	ifExists bool
	cascade  bool
	restrict bool
}

// DropTable constructs a TableDropStatement naming tables.
func DropTable(tables ...ref.TableRef) *TableDropStatement {
	return &TableDropStatement{tables: tables}
}

// IfExists sets the IF EXISTS flag.
func (s *TableDropStatement) IfExists() *TableDropStatement {
	s.ifExists = true
	return s
}

// Cascade sets the CASCADE flag (mutually exclusive with Restrict —
// whichever is called last wins, matching the single-slot semantics of
// the rest of the builder surface).
func (s *TableDropStatement) Cascade() *TableDropStatement {
	s.cascade, s.restrict = true, false
	return s
}

// Restrict sets the RESTRICT flag.
func (s *TableDropStatement) Restrict() *TableDropStatement {
	s.restrict, s.cascade = true, false
	return s
}

// Build renders s against qb.
func (s *TableDropStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *TableDropStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *TableDropStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TableDropStatement) render(qb dialect.QueryBuilder) (string, error) {
	if len(s.tables) == 0 {
		return "", ErrTableDropEmpty
	}
	w := writer.New()
	w.Token("DROP TABLE")
	if s.ifExists {
		w.Token("IF EXISTS")
	}
	parts := make([]string, len(s.tables))
	for i, t := range s.tables {
		parts[i] = quotedTableRef(qb, t)
	}
	w.Token(strings.Join(parts, ", "))
	if s.cascade {
		w.Token("CASCADE")
	} else if s.restrict {
		w.Token("RESTRICT")
	}
	return w.String(), nil
}
