package query

import (
	"strings"
	"testing"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/proptest"
)

// randomWhereChain builds a random AndWhere/OrWhere chain of simple
// equality comparisons over random columns and values, for the property
// tests below.
func randomWhereChain(g *proptest.Generator, s *SelectStatement, links int) {
	cols := g.UniqueIdentifiers(links, 8)
	for i, col := range cols {
		cond := Col(n(col)).Eq(Num(int64(g.Intn(1000))))
		if i == 0 || g.Bool() {
			s.AndWhere(cond)
		} else {
			s.OrWhere(cond)
		}
	}
}

// TestProperty_PlaceholderParity exercises spec §8's "placeholder
// parity" property across random WHERE chains and all three dialects:
// the number of placeholders emitted must equal the number of bound
// values, every time.
func TestProperty_PlaceholderParity(t *testing.T) {
	gen := proptest.New(20260730)

	for i := 0; i < 100; i++ {
		s := Select().Column(Col(n("id"))).From(ref.Table(n("widgets")))
		randomWhereChain(gen, s, 1+gen.Intn(5))

		for _, qb := range []dialect.QueryBuilder{dialect.MysqlQueryBuilder, dialect.PostgresQueryBuilder, dialect.SqliteQueryBuilder} {
			sql, values, err := s.Build(qb)
			if err != nil {
				t.Fatalf("seed %d iteration %d: %s Build: %v", gen.Seed(), i, qb.Name(), err)
			}
			var placeholders int
			if qb.Name() == "postgres" {
				placeholders = strings.Count(sql, "$")
			} else {
				placeholders = strings.Count(sql, "?")
			}
			if placeholders != len(values) {
				t.Fatalf("seed %d iteration %d: %s: %d placeholders, %d values (sql=%q)",
					gen.Seed(), i, qb.Name(), placeholders, len(values), sql)
			}
		}
	}
}

// TestProperty_DialectPurity exercises spec §8's "dialect purity"
// property: rendering the same statement against the same dialect
// twice yields byte-identical SQL, and the no-cross-dialect-leakage
// property: MySQL/SQLite output never contains a Postgres placeholder
// and Postgres output never contains a backtick.
func TestProperty_DialectPurity(t *testing.T) {
	gen := proptest.New(777)

	for i := 0; i < 100; i++ {
		s := Select().Column(Col(n("id"))).From(ref.Table(n("widgets")))
		randomWhereChain(gen, s, 1+gen.Intn(5))

		for _, qb := range []dialect.QueryBuilder{dialect.MysqlQueryBuilder, dialect.PostgresQueryBuilder, dialect.SqliteQueryBuilder} {
			first, _, err := s.Build(qb)
			if err != nil {
				t.Fatalf("seed %d iteration %d: %s Build: %v", gen.Seed(), i, qb.Name(), err)
			}
			second, _, err := s.Build(qb)
			if err != nil {
				t.Fatalf("seed %d iteration %d: %s Build (2nd): %v", gen.Seed(), i, qb.Name(), err)
			}
			if first != second {
				t.Fatalf("seed %d iteration %d: %s: not idempotent: %q != %q", gen.Seed(), i, qb.Name(), first, second)
			}
			if qb.Name() != "postgres" && strings.Contains(first, "$") {
				t.Fatalf("seed %d iteration %d: %s leaked a postgres placeholder: %q", gen.Seed(), i, qb.Name(), first)
			}
			if qb.Name() == "postgres" && strings.Contains(first, "`") {
				t.Fatalf("seed %d iteration %d: postgres leaked a backtick: %q", gen.Seed(), i, first)
			}
		}
	}
}

// TestProperty_RoundTripInlining exercises spec §8's "round-trip
// inlining" property: ToString's output, when you strip the knowledge
// of which values were bound, is exactly what dialect.ToString would
// produce from Build's (sql, values) pair — i.e. ToString is not an
// independent rendering path that could drift from Build's.
func TestProperty_RoundTripInlining(t *testing.T) {
	gen := proptest.New(55)

	for i := 0; i < 50; i++ {
		s := Select().Column(Col(n("id"))).From(ref.Table(n("widgets")))
		randomWhereChain(gen, s, 1+gen.Intn(4))

		qb := proptest.OneOf(gen, dialect.MysqlQueryBuilder, dialect.PostgresQueryBuilder, dialect.SqliteQueryBuilder)

		sql, values, err := s.Build(qb)
		if err != nil {
			t.Fatalf("seed %d iteration %d: Build: %v", gen.Seed(), i, err)
		}
		viaToString, err := s.ToString(qb)
		if err != nil {
			t.Fatalf("seed %d iteration %d: ToString: %v", gen.Seed(), i, err)
		}
		viaDialect, err := dialect.ToString(qb, sql, values)
		if err != nil {
			t.Fatalf("seed %d iteration %d: dialect.ToString: %v", gen.Seed(), i, err)
		}
		if viaToString != viaDialect {
			t.Fatalf("seed %d iteration %d: %s: ToString() = %q, dialect.ToString(Build()) = %q",
				gen.Seed(), i, qb.Name(), viaToString, viaDialect)
		}
	}
}
