package ddl

import (
	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

type alterOptionKind int

const (
	alterAdd alterOptionKind = iota
	alterModify
	alterRename
	alterDrop
)

type alterOption struct {
	kind      alterOptionKind
	column    *ColumnDef // Add/Modify
	fromName  iden.Iden  // Rename
	toName    iden.Iden  // Rename
	dropName  iden.Iden  // Drop
}

// TableAlterStatement is the ALTER TABLE ... {ADD|MODIFY|RENAME|DROP}
// COLUMN statement AST. Exactly one option may be set; rendering with
// none set fails ErrAlterTableOptionEmpty. Setting a second option
// overwrites the first — the AST carries a single slot, not a list, so
// "at most one" is structural rather than merely validated.
type TableAlterStatement struct {
	table  ref.TableRef
	option *alterOption
}

// AlterTable constructs an empty ALTER TABLE statement builder for t.
func AlterTable(t ref.TableRef) *TableAlterStatement {
	return &TableAlterStatement{table: t}
}

// AddColumn sets the ADD COLUMN option.
func (s *TableAlterStatement) AddColumn(c *ColumnDef) *TableAlterStatement {
	s.option = &alterOption{kind: alterAdd, column: c}
	return s
}

// ModifyColumn sets the MODIFY COLUMN option.
func (s *TableAlterStatement) ModifyColumn(c *ColumnDef) *TableAlterStatement {
	s.option = &alterOption{kind: alterModify, column: c}
	return s
}

// RenameColumn sets the RENAME COLUMN option.
func (s *TableAlterStatement) RenameColumn(from, to iden.Iden) *TableAlterStatement {
	s.option = &alterOption{kind: alterRename, fromName: from, toName: to}
	return s
}

// DropColumn sets the DROP COLUMN option.
func (s *TableAlterStatement) DropColumn(name iden.Iden) *TableAlterStatement {
	s.option = &alterOption{kind: alterDrop, dropName: name}
	return s
}

// Build renders s against qb.
func (s *TableAlterStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *TableAlterStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *TableAlterStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TableAlterStatement) render(qb dialect.QueryBuilder) (string, error) {
	if s.option == nil {
		return "", ErrAlterTableOptionEmpty
	}

	w := writer.New()
	w.Token("ALTER TABLE")
	w.Token(quotedTableRef(qb, s.table))

	switch s.option.kind {
	case alterAdd:
		w.Token("ADD COLUMN")
		colW := writer.New()
		renderColumnDef(colW, qb, s.option.column)
		w.Token(colW.String())
	case alterModify:
		w.Token("MODIFY COLUMN")
		colW := writer.New()
		renderColumnDef(colW, qb, s.option.column)
		w.Token(colW.String())
	case alterRename:
		w.Token("RENAME COLUMN")
		w.Token(quotedIdent(qb, s.option.fromName))
		w.Token("TO")
		w.Token(quotedIdent(qb, s.option.toName))
	case alterDrop:
		w.Token("DROP COLUMN")
		w.Token(quotedIdent(qb, s.option.dropName))
	}

	return w.String(), nil
}
