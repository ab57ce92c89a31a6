package dialect

import (
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

type sqliteBuilder struct{}

// SqliteQueryBuilder is the SQLite dialect singleton.
var SqliteQueryBuilder QueryBuilder = sqliteBuilder{}

func (sqliteBuilder) Name() string { return "sqlite" }

func (sqliteBuilder) QuoteIdent(w *writer.Writer, name iden.Iden) {
	QuoteIdentString(w, '`', name)
}

func (sqliteBuilder) Placeholder(int) string { return "?" }

func (sqliteBuilder) MapFunc(f Func) string {
	switch f {
	case FuncIfNull:
		return "IFNULL"
	case FuncCharLength:
		return "LENGTH"
	default:
		return ""
	}
}

func (sqliteBuilder) SupportsReturning() bool        { return false }
func (sqliteBuilder) SupportsUpdateOrderLimit() bool { return false }
func (sqliteBuilder) SupportsEnumType() bool         { return false }

// ColumnTypeSQL follows the teacher's sqlite column-mapping convention
// (SQLite is dynamically typed; the declared type is advisory except
// for the INTEGER PRIMARY KEY rowid-aliasing special case).
func (sqliteBuilder) ColumnTypeSQL(ct ref.ColumnType, autoIncPK bool) string {
	if autoIncPK {
		// SQLite only aliases rowid for a column declared literally
		// "INTEGER PRIMARY KEY [AUTOINCREMENT]" — never BIGINT or any
		// other spelling, regardless of the portable column type.
		return "integer"
	}
	switch ct.Kind {
	case ref.TypeChar, ref.TypeString, ref.TypeText, ref.TypeUuid:
		return "text"
	case ref.TypeTinyInteger, ref.TypeSmallInteger, ref.TypeInteger, ref.TypeBigInteger:
		return "integer"
	case ref.TypeFloat, ref.TypeDouble, ref.TypeDecimal, ref.TypeMoney:
		return "real"
	case ref.TypeDateTime, ref.TypeTimestamp, ref.TypeDate, ref.TypeTime:
		return "text"
	case ref.TypeBinary:
		return "blob"
	case ref.TypeBoolean:
		return "integer"
	case ref.TypeJson, ref.TypeJsonBinary:
		return "text"
	case ref.TypeCustom:
		return ct.CustomName
	default:
		return "text"
	}
}

func (sqliteBuilder) AutoIncrementKeyword(autoIncPK bool) string {
	if autoIncPK {
		return "AUTOINCREMENT"
	}
	return ""
}

func (sqliteBuilder) RenameTableSQL(oldQuoted, newQuoted string) string {
	return "ALTER TABLE " + oldQuoted + " RENAME TO " + newQuoted
}

func (sqliteBuilder) DropIndexSQL(indexQuoted, tableQuoted string) string {
	return "DROP INDEX " + indexQuoted + " ON " + tableQuoted
}

func (b sqliteBuilder) ForeignKeyInlineSQL(fk ref.ForeignKeyDef) string {
	return renderUnnamedForeignKeyInline(b, fk)
}

func (sqliteBuilder) ForeignKeyDropSQL(ref.ForeignKeyDef) (string, error) {
	return "", ErrUnsupportedOnDialect
}
