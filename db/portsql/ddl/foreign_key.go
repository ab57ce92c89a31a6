package ddl

import (
	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// ForeignKeyCreateStatement is the ALTER TABLE ... ADD CONSTRAINT ...
// FOREIGN KEY statement AST — a foreign key added to an existing table,
// as opposed to one inlined in TableCreateStatement.
type ForeignKeyCreateStatement struct {
	table ref.TableRef
	def   ref.ForeignKeyDef
}

// CreateForeignKey constructs a ForeignKeyCreateStatement attaching def
// to table.
func CreateForeignKey(table ref.TableRef, def ref.ForeignKeyDef) *ForeignKeyCreateStatement {
	return &ForeignKeyCreateStatement{table: table, def: def}
}

// Build renders s against qb.
func (s *ForeignKeyCreateStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *ForeignKeyCreateStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *ForeignKeyCreateStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *ForeignKeyCreateStatement) render(qb dialect.QueryBuilder) (string, error) {
	w := writer.New()
	w.Token("ALTER TABLE")
	w.Token(quotedTableRef(qb, s.table))
	w.Token("ADD")
	w.Token(qb.ForeignKeyInlineSQL(s.def))
	return w.String(), nil
}

// ForeignKeyDropStatement is the ALTER TABLE ... DROP FOREIGN KEY /
// DROP CONSTRAINT statement AST. It fails ErrUnsupportedOnDialect on
// SQLite, which has no syntax for dropping an inline foreign key.
type ForeignKeyDropStatement struct {
	table ref.TableRef
	name  ref.ForeignKeyDef
}

// DropForeignKey constructs a ForeignKeyDropStatement for the foreign
// key named by def.Name on table.
func DropForeignKey(table ref.TableRef, def ref.ForeignKeyDef) *ForeignKeyDropStatement {
	return &ForeignKeyDropStatement{table: table, name: def}
}

// Build renders s against qb.
func (s *ForeignKeyDropStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *ForeignKeyDropStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *ForeignKeyDropStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *ForeignKeyDropStatement) render(qb dialect.QueryBuilder) (string, error) {
	clause, err := qb.ForeignKeyDropSQL(s.name)
	if err != nil {
		return "", err
	}
	w := writer.New()
	w.Token("ALTER TABLE")
	w.Token(quotedTableRef(qb, s.table))
	w.Token(clause)
	return w.String(), nil
}
