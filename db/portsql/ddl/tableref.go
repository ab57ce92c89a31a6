package ddl

import (
	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// quotedTableRef renders t as a bare (schema-qualified) table name with
// no alias — DDL statements name tables, they never alias them.
func quotedTableRef(qb dialect.QueryBuilder, t ref.TableRef) string {
	kind, schema, table, _, _ := t.Parts()
	w := writer.New()
	switch kind {
	case ref.KindSchemaTable, ref.KindSchemaTableAlias:
		qb.QuoteIdent(w, schema)
		w.WriteByte('.')
		qb.QuoteIdent(w, table)
	default:
		qb.QuoteIdent(w, table)
	}
	return w.String()
}
