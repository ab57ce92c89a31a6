package dialect

import (
	"fmt"
	"strconv"

	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

type mysqlBuilder struct{}

// MysqlQueryBuilder is the MySQL dialect singleton.
var MysqlQueryBuilder QueryBuilder = mysqlBuilder{}

func (mysqlBuilder) Name() string { return "mysql" }

func (mysqlBuilder) QuoteIdent(w *writer.Writer, name iden.Iden) {
	QuoteIdentString(w, '`', name)
}

func (mysqlBuilder) Placeholder(int) string { return "?" }

func (mysqlBuilder) MapFunc(f Func) string {
	switch f {
	case FuncIfNull:
		return "IFNULL"
	case FuncCharLength:
		return "CHAR_LENGTH"
	default:
		return ""
	}
}

func (mysqlBuilder) SupportsReturning() bool        { return false }
func (mysqlBuilder) SupportsUpdateOrderLimit() bool { return true }
func (mysqlBuilder) SupportsEnumType() bool          { return false }

func (mysqlBuilder) ColumnTypeSQL(ct ref.ColumnType, autoIncPK bool) string {
	switch ct.Kind {
	case ref.TypeChar:
		return "char(" + strconv.Itoa(ct.Length) + ")"
	case ref.TypeString:
		n := ct.Length
		if n == 0 {
			n = 255
		}
		return "varchar(" + strconv.Itoa(n) + ")"
	case ref.TypeText:
		return "text"
	case ref.TypeTinyInteger:
		return "tinyint"
	case ref.TypeSmallInteger:
		return "smallint"
	case ref.TypeInteger:
		return "int"
	case ref.TypeBigInteger:
		return "bigint"
	case ref.TypeFloat:
		return "float"
	case ref.TypeDouble:
		return "double"
	case ref.TypeDecimal:
		return fmt.Sprintf("decimal(%d,%d)", ct.Precision, ct.Scale)
	case ref.TypeDateTime:
		return "datetime"
	case ref.TypeTimestamp:
		return "timestamp"
	case ref.TypeTime:
		return "time"
	case ref.TypeDate:
		return "date"
	case ref.TypeBinary:
		if ct.Length == 0 {
			return "blob"
		}
		return "varbinary(" + strconv.Itoa(ct.Length) + ")"
	case ref.TypeBoolean:
		return "boolean"
	case ref.TypeMoney:
		return "decimal(19,4)"
	case ref.TypeJson:
		return "json"
	case ref.TypeJsonBinary:
		return "json"
	case ref.TypeUuid:
		return "char(36)"
	case ref.TypeCustom:
		return ct.CustomName
	default:
		return "text"
	}
}

func (mysqlBuilder) AutoIncrementKeyword(autoIncPK bool) string {
	if autoIncPK {
		return "AUTO_INCREMENT"
	}
	return ""
}

func (mysqlBuilder) RenameTableSQL(oldQuoted, newQuoted string) string {
	return "RENAME TABLE " + oldQuoted + " TO " + newQuoted
}

func (mysqlBuilder) DropIndexSQL(indexQuoted, tableQuoted string) string {
	return "DROP INDEX " + indexQuoted + " ON " + tableQuoted
}

func (b mysqlBuilder) ForeignKeyInlineSQL(fk ref.ForeignKeyDef) string {
	return renderNamedForeignKeyInline(b, fk)
}

func (b mysqlBuilder) ForeignKeyDropSQL(fk ref.ForeignKeyDef) (string, error) {
	w := writer.New()
	w.Token("DROP")
	w.Token("FOREIGN KEY")
	w.Token(quotedIdentString(b, fk.Name))
	return w.String(), nil
}
