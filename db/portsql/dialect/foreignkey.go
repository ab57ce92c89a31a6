package dialect

import (
	"strings"

	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

func actionSQL(a ref.ForeignKeyAction) string {
	switch a {
	case ref.ActionRestrict:
		return "RESTRICT"
	case ref.ActionCascade:
		return "CASCADE"
	case ref.ActionSetNull:
		return "SET NULL"
	case ref.ActionNoAction:
		return "NO ACTION"
	case ref.ActionSetDefault:
		return "SET DEFAULT"
	default:
		return "RESTRICT"
	}
}

func quotedIdentString(qb QueryBuilder, id iden.Iden) string {
	w := writer.New()
	qb.QuoteIdent(w, id)
	return w.String()
}

func joinQuotedIdents(qb QueryBuilder, idents []iden.Iden) string {
	w := writer.New()
	w.WriteByte('(')
	for i, id := range idents {
		if i > 0 {
			w.WriteString(", ")
		}
		qb.QuoteIdent(w, id)
	}
	w.WriteByte(')')
	return w.String()
}

func foreignKeyBody(qb QueryBuilder, fk ref.ForeignKeyDef) string {
	w := writer.New()
	w.Token("FOREIGN KEY")
	w.Token(joinQuotedIdents(qb, fk.Columns))
	w.Token("REFERENCES")
	w.Token(quotedIdentString(qb, fk.RefTable))
	w.Token(joinQuotedIdents(qb, fk.RefColumns))
	if fk.OnDelete != nil {
		w.Token("ON DELETE")
		w.Token(actionSQL(*fk.OnDelete))
	}
	if fk.OnUpdate != nil {
		w.Token("ON UPDATE")
		w.Token(actionSQL(*fk.OnUpdate))
	}
	return strings.TrimSpace(w.String())
}

// renderNamedForeignKeyInline is shared by MySQL and Postgres, both of
// which inline a named CONSTRAINT clause.
func renderNamedForeignKeyInline(qb QueryBuilder, fk ref.ForeignKeyDef) string {
	w := writer.New()
	w.Token("CONSTRAINT")
	w.Token(quotedIdentString(qb, fk.Name))
	w.Token(foreignKeyBody(qb, fk))
	return w.String()
}

// renderUnnamedForeignKeyInline is used by SQLite, which has no inline
// CONSTRAINT name syntax for foreign keys.
func renderUnnamedForeignKeyInline(qb QueryBuilder, fk ref.ForeignKeyDef) string {
	return foreignKeyBody(qb, fk)
}
