package ddl

import (
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// TableCreateStatement is the CREATE TABLE statement AST.
type TableCreateStatement struct {
	table       ref.TableRef
	ifNotExists bool
	columns     []*ColumnDef
	indexes     []IndexCreateStatement
	foreignKeys []ref.ForeignKeyDef
	engine      string
	charset     string
	collation   string
}

// CreateTable constructs an empty CREATE TABLE statement builder for t.
func CreateTable(t ref.TableRef) *TableCreateStatement {
	return &TableCreateStatement{table: t}
}

// IfNotExists sets the IF NOT EXISTS flag.
func (s *TableCreateStatement) IfNotExists() *TableCreateStatement {
	s.ifNotExists = true
	return s
}

// Column appends a column definition.
func (s *TableCreateStatement) Column(c *ColumnDef) *TableCreateStatement {
	s.columns = append(s.columns, c)
	return s
}

// Index appends an inline index definition.
func (s *TableCreateStatement) Index(idx IndexCreateStatement) *TableCreateStatement {
	s.indexes = append(s.indexes, idx)
	return s
}

// ForeignKey appends an inline foreign key constraint.
func (s *TableCreateStatement) ForeignKey(fk ref.ForeignKeyDef) *TableCreateStatement {
	s.foreignKeys = append(s.foreignKeys, fk)
	return s
}

// Engine overwrites the MySQL storage engine table option.
func (s *TableCreateStatement) Engine(name string) *TableCreateStatement {
	s.engine = name
	return s
}

// Charset overwrites the table character set option.
func (s *TableCreateStatement) Charset(name string) *TableCreateStatement {
	s.charset = name
	return s
}

// Collation overwrites the table collation option.
func (s *TableCreateStatement) Collation(name string) *TableCreateStatement {
	s.collation = name
	return s
}

// Build renders s against qb. CREATE TABLE never binds placeholders:
// default literals are always inlined via dialect.Escape.
func (s *TableCreateStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s against qb; collector is accepted for interface
// uniformity with the query builders but is never invoked.
func (s *TableCreateStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s against qb. It is identical to Build's SQL since
// CREATE TABLE has no placeholders to inline.
func (s *TableCreateStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TableCreateStatement) render(qb dialect.QueryBuilder) (string, error) {
	w := writer.New()
	w.Token("CREATE TABLE")
	if s.ifNotExists {
		w.Token("IF NOT EXISTS")
	}

	w.Token(quotedTableRef(qb, s.table))

	var parts []string
	for _, c := range s.columns {
		cw := writer.New()
		renderColumnDef(cw, qb, c)
		parts = append(parts, cw.String())
	}
	for _, idx := range s.indexes {
		parts = append(parts, idx.inlineSQL(qb))
	}
	for _, fk := range s.foreignKeys {
		parts = append(parts, qb.ForeignKeyInlineSQL(fk))
	}
	w.Token("(" + strings.Join(parts, ", ") + ")")

	if s.engine != "" {
		w.Token("ENGINE=" + s.engine)
	}
	if s.charset != "" {
		w.Token("DEFAULT CHARSET=" + s.charset)
	}
	if s.collation != "" {
		w.Token("COLLATE=" + s.collation)
	}

	return w.String(), nil
}
