// Package driver is the thin database/sql boundary described by the
// core spec's driver contract: it opens a *sql.DB for each of the three
// first-class dialects and translates value.Value into the underlying
// client's native argument type. It does not convert scanned results
// back into value.Value. It never re-parses or re-orders the SQL a
// statement builder produced.
package driver

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/shipq/sqlkit/db/portsql/value"
)

// OpenMySQL opens a *sql.DB against dsn using the go-sql-driver/mysql
// driver.
func OpenMySQL(dsn string) (*sql.DB, error) {
	return sql.Open("mysql", dsn)
}

// OpenPostgres opens a *sql.DB against dsn using the pgx stdlib driver.
func OpenPostgres(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// OpenSQLite opens a *sql.DB against dsn using the modernc.org/sqlite
// pure-Go driver.
func OpenSQLite(dsn string) (*sql.DB, error) {
	return sql.Open("sqlite", dsn)
}

// Bind converts a statement's bound values, in order, into the native
// arguments database/sql expects, via Value.Native: every null, typed or
// untyped, is passed as a plain nil, so its declared type is not carried
// to the driver. Bind is the one place callers are meant to cross from
// value.Value into database/sql.
func Bind(values []value.Value) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v.Native()
	}
	return args
}
