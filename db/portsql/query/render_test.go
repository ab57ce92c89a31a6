package query

import (
	"strings"
	"testing"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
)

func n(s string) iden.Iden { return iden.New(s) }

func TestSelectJoinAndIn(t *testing.T) {
	stmt := Select().
		Column(Col(n("character"))).
		Column(Tbl(n("font"), n("name"))).
		From(ref.Table(n("character"))).
		LeftJoin(ref.Table(n("font")), Tbl(n("character"), n("font_id")).Equals(n("font"), n("id"))).
		AndWhere(Col(n("size_w")).InTuple(value.Int(3), value.Int(4))).
		AndWhere(Col(n("character")).Like("A%"))

	got, err := stmt.ToString(dialect.PostgresQueryBuilder)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := `SELECT "character", "font"."name" FROM "character" LEFT JOIN "font" ON "character"."font_id" = "font"."id" WHERE "size_w" IN (3, 4) AND "character" LIKE 'A%'`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestInsertTwoRowsMySQL(t *testing.T) {
	ins := Insert().Into(ref.Table(n("glyph"))).Columns(n("aspect"), n("image"))
	ins, err := ins.Values(Val(value.Double(5.15)), Str("12A"))
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	ins, err = ins.Values(Val(value.Double(4.21)), Str("123"))
	if err != nil {
		t.Fatalf("Values: %v", err)
	}

	got, err := ins.ToString(dialect.MysqlQueryBuilder)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := "INSERT INTO `glyph` (`aspect`, `image`) VALUES (5.15, '12A'), (4.21, '123')"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestInsertEmptyValuesFails(t *testing.T) {
	ins := Insert().Into(ref.Table(n("glyph"))).Columns(n("aspect"))
	if _, _, err := ins.Build(dialect.MysqlQueryBuilder); err != ErrInsertValuesEmpty {
		t.Errorf("got err = %v, want ErrInsertValuesEmpty", err)
	}
}

func TestInsertArityMismatchFails(t *testing.T) {
	ins := Insert().Into(ref.Table(n("glyph"))).Columns(n("aspect"), n("image"))
	if _, err := ins.Values(Num(1)); err == nil {
		t.Error("expected an arity-mismatch error, got nil")
	}
}

func TestUpdateWithWhereSQLite(t *testing.T) {
	upd := Update().
		Table(ref.Table(n("glyph"))).
		Set(n("aspect"), Val(value.Double(1.23))).
		Set(n("image"), Str("123")).
		AndWhere(Col(n("id")).Eq(Num(1)))

	got, err := upd.ToString(dialect.SqliteQueryBuilder)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := "UPDATE `glyph` SET `aspect` = 1.23, `image` = '123' WHERE `id` = 1"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestDeleteOrChainPostgres(t *testing.T) {
	del := Delete().
		From(ref.Table(n("glyph"))).
		OrWhere(Col(n("id")).Lt(Num(1))).
		OrWhere(Col(n("id")).Gt(Num(10)))

	got, err := del.ToString(dialect.PostgresQueryBuilder)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := `DELETE FROM "glyph" WHERE ("id" < 1) OR ("id" > 10)`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestUpdateOrderLimitUnsupportedOutsideMySQL(t *testing.T) {
	upd := Update().Table(ref.Table(n("glyph"))).Set(n("aspect"), Num(1)).Limit(10)
	if _, _, err := upd.Build(dialect.PostgresQueryBuilder); err != dialect.ErrUnsupportedOnDialect {
		t.Errorf("got err = %v, want ErrUnsupportedOnDialect", err)
	}
	if _, _, err := upd.Build(dialect.MysqlQueryBuilder); err != nil {
		t.Errorf("MySQL build should succeed, got %v", err)
	}
}

// TestMixedChainParenthesization reproduces the WHERE-chain worked
// example that resolved the parenthesization rule: an arithmetic
// comparison, an IN-subquery, and a nested AND-of-LIKEs joined by
// AND, AND, OR.
func TestMixedChainParenthesization(t *testing.T) {
	sub := Select().Column(Cust("3 + 2 * 2"))

	stmt := Select().
		Column(Col(n("character"))).
		From(ref.Table(n("character"))).
		AndWhere(
			Col(n("size_w")).Add(Num(1)).Mul(Num(2)).
				Eq(Col(n("size_h")).Div(Num(2)).Sub(Num(1))),
		).
		AndWhere(Col(n("size_w")).InSubquery(sub)).
		OrWhere(Col(n("character")).Like("D").And(Col(n("character")).Like("E")))

	got, err := stmt.ToString(dialect.MysqlQueryBuilder)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := "SELECT `character` FROM `character` " +
		"WHERE ((`size_w` + 1) * 2 = (`size_h` / 2) - 1) " +
		"AND `size_w` IN (SELECT 3 + 2 * 2) " +
		"OR ((`character` LIKE 'D') AND (`character` LIKE 'E'))"
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

// TestFromSubqueryRendersPerDialectAndBindsValues exercises a FROM
// subquery that itself binds a value: the inner statement must
// re-render against the outer statement's own dialect (not a dialect
// frozen at construction time) and its bound value must land in the
// outer statement's returned value slice, in placeholder order.
func TestFromSubqueryRendersPerDialectAndBindsValues(t *testing.T) {
	inner := Select().
		Column(Col(n("id"))).
		From(ref.Table(n("glyph"))).
		AndWhere(Col(n("aspect")).Eq(Str("wide")))

	outer := Select().
		Column(Col(n("id"))).
		From(ref.SubQuery(inner, n("g"))).
		AndWhere(Col(n("id")).Eq(Num(7)))

	mysql, mysqlValues, err := outer.Build(dialect.MysqlQueryBuilder)
	if err != nil {
		t.Fatalf("mysql Build: %v", err)
	}
	wantMySQL := "SELECT `id` FROM " +
		"(SELECT `id` FROM `glyph` WHERE `aspect` = ?) AS `g` " +
		"WHERE `id` = ?"
	if mysql != wantMySQL {
		t.Errorf("mysql got  %s\nmysql want %s", mysql, wantMySQL)
	}
	if len(mysqlValues) != 2 {
		t.Fatalf("mysql: got %d values, want 2", len(mysqlValues))
	}
	if s, _ := mysqlValues[0].String(); s != "wide" {
		t.Errorf("mysql values[0] = %v, want String(wide)", mysqlValues[0])
	}
	if n, _ := mysqlValues[1].Int64(); n != 7 {
		t.Errorf("mysql values[1] = %v, want Int(7)", mysqlValues[1])
	}

	pg, pgValues, err := outer.Build(dialect.PostgresQueryBuilder)
	if err != nil {
		t.Fatalf("postgres Build: %v", err)
	}
	wantPG := `SELECT "id" FROM ` +
		`(SELECT "id" FROM "glyph" WHERE "aspect" = $1) AS "g" ` +
		`WHERE "id" = $2`
	if pg != wantPG {
		t.Errorf("postgres got  %s\npostgres want %s", pg, wantPG)
	}
	if len(pgValues) != 2 {
		t.Fatalf("postgres: got %d values, want 2", len(pgValues))
	}
}

// TestPlaceholderParity checks spec's "placeholder parity" property: the
// number of placeholders emitted equals the number of bound values, for
// each dialect's own placeholder syntax.
func TestPlaceholderParity(t *testing.T) {
	stmt := Select().
		Column(Col(n("id"))).
		From(ref.Table(n("widgets"))).
		AndWhere(Col(n("id")).Eq(Num(1))).
		AndWhere(Col(n("name")).Eq(Str("bob")))

	for _, qb := range []dialect.QueryBuilder{dialect.MysqlQueryBuilder, dialect.PostgresQueryBuilder, dialect.SqliteQueryBuilder} {
		sql, values, err := stmt.Build(qb)
		if err != nil {
			t.Fatalf("%s Build: %v", qb.Name(), err)
		}
		var placeholders int
		switch qb.Name() {
		case "postgres":
			placeholders = strings.Count(sql, "$")
		default:
			placeholders = strings.Count(sql, "?")
		}
		if placeholders != len(values) {
			t.Errorf("%s: %d placeholders, %d values", qb.Name(), placeholders, len(values))
		}
	}
}

// TestNoCrossDialectLeakage checks spec's dialect-purity property on a
// representative statement.
func TestNoCrossDialectLeakage(t *testing.T) {
	stmt := Select().Column(Col(n("id"))).From(ref.Table(n("widgets"))).AndWhere(Col(n("id")).Eq(Num(1)))

	mysql, _, err := stmt.Build(dialect.MysqlQueryBuilder)
	if err != nil {
		t.Fatalf("mysql Build: %v", err)
	}
	if strings.Contains(mysql, "$") {
		t.Errorf("mysql SQL leaked a postgres placeholder: %s", mysql)
	}

	pg, _, err := stmt.Build(dialect.PostgresQueryBuilder)
	if err != nil {
		t.Fatalf("postgres Build: %v", err)
	}
	if strings.Contains(pg, "`") {
		t.Errorf("postgres SQL leaked a backtick identifier quote: %s", pg)
	}
}
