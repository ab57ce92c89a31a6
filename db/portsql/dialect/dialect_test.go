package dialect

import (
	"errors"
	"testing"
	"time"

	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

func TestQuoteIdentPerDialect(t *testing.T) {
	name := iden.New("font")
	cases := []struct {
		qb   QueryBuilder
		want string
	}{
		{MysqlQueryBuilder, "`font`"},
		{PostgresQueryBuilder, `"font"`},
		{SqliteQueryBuilder, "`font`"},
	}
	for _, c := range cases {
		w := writer.New()
		c.qb.QuoteIdent(w, name)
		if got := w.String(); got != c.want {
			t.Errorf("%s: got %q, want %q", c.qb.Name(), got, c.want)
		}
	}
}

func TestPlaceholderPerDialect(t *testing.T) {
	if got := MysqlQueryBuilder.Placeholder(3); got != "?" {
		t.Errorf("mysql: got %q, want ?", got)
	}
	if got := SqliteQueryBuilder.Placeholder(3); got != "?" {
		t.Errorf("sqlite: got %q, want ?", got)
	}
	if got := PostgresQueryBuilder.Placeholder(3); got != "$3" {
		t.Errorf("postgres: got %q, want $3", got)
	}
}

func TestEscapeNullIsAlwaysNULL(t *testing.T) {
	if got := Escape(MysqlQueryBuilder, value.Null()); got != "NULL" {
		t.Errorf("got %q, want NULL", got)
	}
	if got := Escape(PostgresQueryBuilder, value.NullUuid()); got != "NULL" {
		t.Errorf("got %q, want NULL", got)
	}
}

func TestEscapeStringDoublesQuotes(t *testing.T) {
	got := Escape(MysqlQueryBuilder, value.String("it's"))
	want := "'it''s'"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEscapeBytesBlobLiteral(t *testing.T) {
	b := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	mysql := Escape(MysqlQueryBuilder, value.Bytes(b))
	if mysql != "X'DEADBEEF'" {
		t.Errorf("mysql: got %q, want X'DEADBEEF'", mysql)
	}

	pg := Escape(PostgresQueryBuilder, value.Bytes(b))
	if pg != `'\xdeadbeef'` {
		t.Errorf("postgres: got %q, want '\\xdeadbeef'", pg)
	}
}

func TestEscapeDateTimeVariants(t *testing.T) {
	ts := time.Date(2026, 7, 30, 9, 15, 0, 0, time.UTC)

	if got := Escape(MysqlQueryBuilder, value.Date(ts)); got != "'2026-07-30'" {
		t.Errorf("Date: got %q", got)
	}
	if got := Escape(MysqlQueryBuilder, value.Time(ts)); got != "'09:15:00'" {
		t.Errorf("Time: got %q", got)
	}
	if got := Escape(MysqlQueryBuilder, value.DateTime(ts)); got != "'2026-07-30T09:15:00'" {
		t.Errorf("DateTime: got %q", got)
	}
}

func TestToStringRoundTripMySQL(t *testing.T) {
	sql := "SELECT * FROM `t` WHERE `a` = ? AND `b` = ?"
	values := []value.Value{value.Int(1), value.String("x")}

	got, err := ToString(MysqlQueryBuilder, sql, values)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := "SELECT * FROM `t` WHERE `a` = 1 AND `b` = 'x'"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToStringRoundTripPostgres(t *testing.T) {
	sql := `SELECT * FROM "t" WHERE "a" = $1 AND "b" = $2`
	values := []value.Value{value.Int(1), value.String("x")}

	got, err := ToString(PostgresQueryBuilder, sql, values)
	if err != nil {
		t.Fatalf("ToString: %v", err)
	}
	want := `SELECT * FROM "t" WHERE "a" = 1 AND "b" = 'x'`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToStringMismatchedBindCountFails(t *testing.T) {
	if _, err := ToString(MysqlQueryBuilder, "SELECT ?", nil); !errors.Is(err, ErrBindMismatch) {
		t.Errorf("got err = %v, want ErrBindMismatch", err)
	}
	if _, err := ToString(PostgresQueryBuilder, "SELECT $1", nil); !errors.Is(err, ErrBindMismatch) {
		t.Errorf("got err = %v, want ErrBindMismatch", err)
	}
}

func TestBinderAssignsSequentialPlaceholders(t *testing.T) {
	var got []value.Value
	b := NewBinder(PostgresQueryBuilder, writer.SliceCollector(&got))

	w := writer.New()
	b.Bind(w, value.Int(1))
	b.Bind(w, value.Int(2))

	if want := "$1 $2"; w.String() != want {
		t.Errorf("got %q, want %q", w.String(), want)
	}
	if b.Count() != 2 {
		t.Errorf("Count() = %d, want 2", b.Count())
	}
}
