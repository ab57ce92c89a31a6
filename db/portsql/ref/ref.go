// Package ref provides the shared column/table reference types and the
// schema vocabulary (column types, column specs, foreign key and index
// definitions) used across the query, ddl, and dialect packages. It
// exists to avoid circular imports: dialect renders column types,
// foreign keys, and indexes, while ddl depends on dialect to render its
// statements, so those types cannot live in ddl.
package ref

import "github.com/shipq/sqlkit/db/portsql/iden"

// ColumnRef is a reference to a column, optionally qualified by its
// table. Rendered respectively as `"col"` and `"table"."col"`.
type ColumnRef struct {
	Table iden.Iden // nil for the unqualified Column variant
	Name  iden.Iden
}

// Column constructs an unqualified column reference.
func Column(name iden.Iden) ColumnRef {
	return ColumnRef{Name: name}
}

// TableColumn constructs a table-qualified column reference.
func TableColumn(table, name iden.Iden) ColumnRef {
	return ColumnRef{Table: table, Name: name}
}

// Qualified reports whether c carries a table qualifier.
func (c ColumnRef) Qualified() bool {
	return c.Table != nil
}

// tableRefKind discriminates TableRef's variants.
type tableRefKind int

const (
	kindTable tableRefKind = iota
	kindSchemaTable
	kindTableAlias
	kindSchemaTableAlias
	kindSubQuery
)

// TableRef is a reference to a table, a schema-qualified table, either of
// those aliased, or an aliased subquery.
type TableRef struct {
	kind   tableRefKind
	schema iden.Iden
	table  iden.Iden
	alias  iden.Iden
	sub    any // live *query.SelectStatement, used by the SubQuery variant
}

// Table constructs a plain table reference.
func Table(t iden.Iden) TableRef {
	return TableRef{kind: kindTable, table: t}
}

// SchemaTable constructs a schema-qualified table reference.
func SchemaTable(schema, t iden.Iden) TableRef {
	return TableRef{kind: kindSchemaTable, schema: schema, table: t}
}

// SubQuery constructs an aliased subquery table reference from a live
// statement. stmt is expected to be a *query.SelectStatement; it is
// stored as an opaque any rather than a concrete type because query
// already imports ref (for TableRef/ColumnRef), so ref importing query
// back would be a cycle. Only query's own rendering code type-asserts
// it back, re-rendering it per-dialect and threading the outer
// statement's *dialect.Binder through so the inner statement's bound
// values reach the outer statement's value slice.
func SubQuery(stmt any, alias iden.Iden) TableRef {
	return TableRef{kind: kindSubQuery, sub: stmt, alias: alias}
}

// Alias derives an aliased form of t. It is only valid to call on the
// Table or SchemaTable variants; calling it on an already-aliased
// TableRef or on the SubQuery variant is a usage error.
func (t TableRef) Alias(alias iden.Iden) (TableRef, error) {
	switch t.kind {
	case kindTable:
		return TableRef{kind: kindTableAlias, table: t.table, alias: alias}, nil
	case kindSchemaTable:
		return TableRef{kind: kindSchemaTableAlias, schema: t.schema, table: t.table, alias: alias}, nil
	default:
		return TableRef{}, ErrUnexpectedTableRefAlias
	}
}

// Kind reports which TableRef variant t is, for dialect renderers.
type Kind = tableRefKind

const (
	KindTable            = kindTable
	KindSchemaTable      = kindSchemaTable
	KindTableAlias       = kindTableAlias
	KindSchemaTableAlias = kindSchemaTableAlias
	KindSubQuery         = kindSubQuery
)

// Parts exposes t's fields for dialect renderers without requiring them
// to live in this package. sub is the opaque payload stored by
// SubQuery, nil for every other variant.
func (t TableRef) Parts() (kind Kind, schema, table, alias iden.Iden, sub any) {
	return t.kind, t.schema, t.table, t.alias, t.sub
}
