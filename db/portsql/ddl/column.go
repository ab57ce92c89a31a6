package ddl

import (
	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// ColumnDef is one column of a TableCreateStatement or the operand of an
// ADD/MODIFY TableAlterStatement option.
type ColumnDef struct {
	Name  iden.Iden
	Type  ref.ColumnType
	specs []ref.ColumnSpec
}

// Column constructs a ColumnDef with no specs.
func Column(name iden.Iden, t ref.ColumnType) *ColumnDef {
	return &ColumnDef{Name: name, Type: t}
}

// NotNull appends a NOT NULL spec.
func (c *ColumnDef) NotNull() *ColumnDef {
	c.specs = append(c.specs, ref.NotNull())
	return c
}

// Default appends a DEFAULT spec. A null Value still renders as
// `DEFAULT NULL`, not as absence.
func (c *ColumnDef) Default(v value.Value) *ColumnDef {
	c.specs = append(c.specs, ref.Default(v))
	return c
}

// AutoIncrement appends an AUTO_INCREMENT spec.
func (c *ColumnDef) AutoIncrement() *ColumnDef {
	c.specs = append(c.specs, ref.AutoIncrement())
	return c
}

// UniqueKey appends a UNIQUE KEY spec.
func (c *ColumnDef) UniqueKey() *ColumnDef {
	c.specs = append(c.specs, ref.UniqueKey())
	return c
}

// PrimaryKey appends a PRIMARY KEY spec.
func (c *ColumnDef) PrimaryKey() *ColumnDef {
	c.specs = append(c.specs, ref.PrimaryKey())
	return c
}

// Extra appends a raw trailing spec clause.
func (c *ColumnDef) Extra(sql string) *ColumnDef {
	c.specs = append(c.specs, ref.Extra(sql))
	return c
}

func (c *ColumnDef) hasSpec(kind ref.ColumnSpecKind) (ref.ColumnSpec, bool) {
	for _, s := range c.specs {
		if s.Kind == kind {
			return s, true
		}
	}
	return ref.ColumnSpec{}, false
}

// isAutoIncPK reports whether c carries both AutoIncrement and
// PrimaryKey, the combination every dialect treats specially in its type
// mapping and spec ordering.
func (c *ColumnDef) isAutoIncPK() bool {
	_, inc := c.hasSpec(ref.SpecAutoIncrement)
	_, pk := c.hasSpec(ref.SpecPrimaryKey)
	return inc && pk
}

// renderColumnDef emits c's name, dialect type token, and specs in the
// canonical order NOT NULL, DEFAULT, AUTO_INCREMENT, UNIQUE KEY, PRIMARY
// KEY, EXTRA (spec §4.4). Every dialect renders the specs the caller
// attached in this canonical order, with one exception and one
// positional quirk: AutoIncrement takes effect only on a column that is
// also PrimaryKey (otherwise no auto-increment keyword or type is
// emitted), and SQLite's AUTOINCREMENT keyword trails PRIMARY KEY, while
// MySQL's AUTO_INCREMENT leads it.
func renderColumnDef(w *writer.Writer, qb dialect.QueryBuilder, c *ColumnDef) {
	nameW := writer.New()
	qb.QuoteIdent(nameW, c.Name)
	w.Token(nameW.String())

	autoIncPK := c.isAutoIncPK()
	w.Token(qb.ColumnTypeSQL(c.Type, autoIncPK))

	sqliteStyle := qb.Name() == "sqlite"

	if _, ok := c.hasSpec(ref.SpecNotNull); ok {
		w.Token("NOT NULL")
	}
	if spec, ok := c.hasSpec(ref.SpecDefault); ok {
		w.Token("DEFAULT")
		w.Token(dialect.Escape(qb, spec.Default))
	}

	kw := qb.AutoIncrementKeyword(autoIncPK)
	if kw != "" && !sqliteStyle {
		w.Token(kw)
	}
	if _, ok := c.hasSpec(ref.SpecUniqueKey); ok {
		w.Token("UNIQUE")
	}
	if _, ok := c.hasSpec(ref.SpecPrimaryKey); ok {
		w.Token("PRIMARY KEY")
	}
	if kw != "" && sqliteStyle {
		w.Token(kw)
	}
	if spec, ok := c.hasSpec(ref.SpecExtra); ok {
		w.Token(spec.Extra)
	}
}
