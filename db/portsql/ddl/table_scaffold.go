package ddl

import (
	"strings"

	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
)

// NewTable is sugar over CreateTable: it stamps the conventional
// id/public_id/created_at/updated_at/deleted_at columns and their two
// unique indexes onto a fresh CREATE TABLE builder, the shape every
// application table in the teacher's schema shares. It does not expand
// the statement model; a caller could build the identical statement by
// hand through CreateTable/Column.
func NewTable(t ref.TableRef) *TableCreateStatement {
	_, _, table, _, _ := t.Parts()
	name := iden.Text(table)

	return CreateTable(t).
		Column(Column(iden.New("id"), ref.BigInteger()).NotNull().AutoIncrement().PrimaryKey()).
		Column(Column(iden.New("public_id"), ref.VarString(36)).NotNull().UniqueKey()).
		Column(Column(iden.New("created_at"), ref.DateTime()).NotNull()).
		Column(Column(iden.New("updated_at"), ref.DateTime()).NotNull()).
		Column(Column(iden.New("deleted_at"), ref.DateTime())).
		Index(CreateIndex(indexDef(name, "id"))).
		Index(CreateIndex(indexDef(name, "public_id")))
}

func indexDef(table, column string) ref.IndexDef {
	return ref.IndexDef{
		Name:    iden.New(generateIndexName(table, []string{column})),
		Table:   iden.New(table),
		Columns: []iden.Iden{iden.New(column)},
		Unique:  true,
	}
}

// generateIndexName mirrors the teacher's own idx_<table>_<col1>_<col2>
// naming convention for generated index names.
func generateIndexName(table string, columns []string) string {
	return "idx_" + table + "_" + strings.Join(columns, "_")
}
