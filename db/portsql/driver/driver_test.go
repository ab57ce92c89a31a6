//go:build integration

package driver_test

import (
	"testing"

	"github.com/shipq/sqlkit/db/portsql/ddl"
	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/driver"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/query"
	"github.com/shipq/sqlkit/db/portsql/ref"
)

func col(name string) iden.Iden { return iden.New(name) }

func createWidgetsTable(table ref.TableRef) *ddl.TableCreateStatement {
	return ddl.CreateTable(table).
		Column(ddl.Column(col("id"), ref.Integer()).NotNull().AutoIncrement().PrimaryKey()).
		Column(ddl.Column(col("name"), ref.VarString(255)).NotNull())
}

func TestOpenSQLiteAndSelectOne(t *testing.T) {
	db, err := driver.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	stmt := query.Select().Column(query.Num(1))
	sql, values, err := stmt.Build(dialect.SqliteQueryBuilder)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var got int
	if err := db.QueryRow(sql, driver.Bind(values)...).Scan(&got); err != nil {
		t.Fatalf("QueryRow(%q): %v", sql, err)
	}
	if got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestOpenSQLiteCreateAndInsert(t *testing.T) {
	db, err := driver.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	table := ref.Table(col("widgets"))
	create, _, err := createWidgetsTable(table).Build(dialect.SqliteQueryBuilder)
	if err != nil {
		t.Fatalf("create Build: %v", err)
	}
	if _, err := db.Exec(create); err != nil {
		t.Fatalf("Exec(%q): %v", create, err)
	}

	ins, err := query.Insert().Into(table).Columns(col("name")).Values(query.Str("sprocket"))
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	sql, values, err := ins.Build(dialect.SqliteQueryBuilder)
	if err != nil {
		t.Fatalf("insert Build: %v", err)
	}
	if _, err := db.Exec(sql, driver.Bind(values)...); err != nil {
		t.Fatalf("Exec(%q): %v", sql, err)
	}

	sel := query.Select().Column(query.Col(col("name"))).From(table)
	selSQL, selValues, err := sel.Build(dialect.SqliteQueryBuilder)
	if err != nil {
		t.Fatalf("select Build: %v", err)
	}
	var name string
	if err := db.QueryRow(selSQL, driver.Bind(selValues)...).Scan(&name); err != nil {
		t.Fatalf("QueryRow(%q): %v", selSQL, err)
	}
	if name != "sprocket" {
		t.Fatalf("got %q, want %q", name, "sprocket")
	}
}
