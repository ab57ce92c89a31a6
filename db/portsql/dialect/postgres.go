package dialect

import (
	"fmt"
	"strconv"

	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

type postgresBuilder struct{}

// PostgresQueryBuilder is the PostgreSQL dialect singleton.
var PostgresQueryBuilder QueryBuilder = postgresBuilder{}

func (postgresBuilder) Name() string { return "postgres" }

func (postgresBuilder) QuoteIdent(w *writer.Writer, name iden.Iden) {
	QuoteIdentString(w, '"', name)
}

func (postgresBuilder) Placeholder(pos int) string { return "$" + strconv.Itoa(pos) }

func (postgresBuilder) MapFunc(f Func) string {
	switch f {
	case FuncIfNull:
		return "COALESCE"
	case FuncCharLength:
		return "CHAR_LENGTH"
	default:
		return ""
	}
}

func (postgresBuilder) SupportsReturning() bool        { return true }
func (postgresBuilder) SupportsUpdateOrderLimit() bool { return false }
func (postgresBuilder) SupportsEnumType() bool         { return true }

func (postgresBuilder) ColumnTypeSQL(ct ref.ColumnType, autoIncPK bool) string {
	switch ct.Kind {
	case ref.TypeChar:
		return "char(" + strconv.Itoa(ct.Length) + ")"
	case ref.TypeString:
		if ct.Length > 0 {
			return "varchar(" + strconv.Itoa(ct.Length) + ")"
		}
		return "varchar"
	case ref.TypeText:
		return "text"
	case ref.TypeTinyInteger:
		return "smallint"
	case ref.TypeSmallInteger:
		return "smallint"
	case ref.TypeInteger:
		if autoIncPK {
			return "serial"
		}
		return "integer"
	case ref.TypeBigInteger:
		if autoIncPK {
			return "bigserial"
		}
		return "bigint"
	case ref.TypeFloat:
		return "real"
	case ref.TypeDouble:
		return "double precision"
	case ref.TypeDecimal:
		return fmt.Sprintf("numeric(%d,%d)", ct.Precision, ct.Scale)
	case ref.TypeDateTime:
		return "timestamp"
	case ref.TypeTimestamp:
		return "timestamp"
	case ref.TypeTime:
		return "time"
	case ref.TypeDate:
		return "date"
	case ref.TypeBinary:
		return "bytea"
	case ref.TypeBoolean:
		return "boolean"
	case ref.TypeMoney:
		return "money"
	case ref.TypeJson:
		return "json"
	case ref.TypeJsonBinary:
		return "jsonb"
	case ref.TypeUuid:
		return "uuid"
	case ref.TypeCustom:
		return ct.CustomName
	default:
		return "text"
	}
}

func (postgresBuilder) AutoIncrementKeyword(bool) string { return "" }

func (postgresBuilder) RenameTableSQL(oldQuoted, newQuoted string) string {
	return "ALTER TABLE " + oldQuoted + " RENAME TO " + newQuoted
}

func (postgresBuilder) DropIndexSQL(indexQuoted, _ string) string {
	return "DROP INDEX " + indexQuoted
}

func (b postgresBuilder) ForeignKeyInlineSQL(fk ref.ForeignKeyDef) string {
	return renderNamedForeignKeyInline(b, fk)
}

func (b postgresBuilder) ForeignKeyDropSQL(fk ref.ForeignKeyDef) (string, error) {
	w := writer.New()
	w.Token("DROP")
	w.Token("CONSTRAINT")
	w.Token(quotedIdentString(b, fk.Name))
	return w.String(), nil
}
