package query

import (
	"fmt"
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// InsertStatement is the INSERT statement AST.
type InsertStatement struct {
	table     ref.TableRef
	columns   []iden.Iden
	rows      [][]SimpleExpr
	returning []iden.Iden
}

// Insert constructs an empty INSERT statement builder.
func Insert() *InsertStatement { return &InsertStatement{} }

// Into sets the target table.
func (s *InsertStatement) Into(t ref.TableRef) *InsertStatement {
	s.table = t
	return s
}

// Columns sets the column list. Later Values calls must supply rows of
// this exact arity.
func (s *InsertStatement) Columns(cols ...iden.Iden) *InsertStatement {
	s.columns = cols
	return s
}

// Values appends one row. It fails ErrColumnsNotEqual if the row's
// arity does not match the column list.
func (s *InsertStatement) Values(row ...Expr) (*InsertStatement, error) {
	if len(row) != len(s.columns) {
		return s, fmt.Errorf("%w: row has %d values, columns has %d", ErrColumnsNotEqual, len(row), len(s.columns))
	}
	inner := make([]SimpleExpr, len(row))
	for i, e := range row {
		inner[i] = e.inner
	}
	s.rows = append(s.rows, inner)
	return s, nil
}

// ValuesPanic is Values, panicking on an arity mismatch instead of
// returning an error — for call sites that already know the row matches
// (spec §7 permits panics only for programmer errors flagged by a
// _panic suffix).
func (s *InsertStatement) ValuesPanic(row ...Expr) *InsertStatement {
	s, err := s.Values(row...)
	if err != nil {
		panic(err)
	}
	return s
}

// Returning sets the RETURNING column list (meaningful under Postgres
// only; silently omitted on other dialects, per spec §7's Open Question
// resolution preserving source compatibility).
func (s *InsertStatement) Returning(cols ...iden.Iden) *InsertStatement {
	s.returning = cols
	return s
}

// Build renders s against qb and returns the SQL and its bound values.
func (s *InsertStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	var values []value.Value
	sql, err := s.BuildCollect(qb, writer.SliceCollector(&values))
	return sql, values, err
}

// BuildCollect renders s against qb, streaming bound values through
// collector in left-to-right placeholder order.
func (s *InsertStatement) BuildCollect(qb dialect.QueryBuilder, collector writer.Collector) (string, error) {
	if len(s.rows) == 0 {
		return "", ErrInsertValuesEmpty
	}
	w := writer.New()
	b := dialect.NewBinder(qb, collector)

	w.Token("INSERT INTO")
	tableSQL, err := renderTableRefString(b, s.table)
	if err != nil {
		return "", err
	}
	w.Token(tableSQL)

	cols := make([]string, len(s.columns))
	for i, c := range s.columns {
		cw := writer.New()
		qb.QuoteIdent(cw, c)
		cols[i] = cw.String()
	}
	w.Token("(" + strings.Join(cols, ", ") + ")")

	w.Token("VALUES")
	rowParts := make([]string, len(s.rows))
	for i, row := range s.rows {
		cellParts := make([]string, len(row))
		for j, cell := range row {
			sql, err := renderToString(b, cell)
			if err != nil {
				return "", err
			}
			cellParts[j] = sql
		}
		rowParts[i] = "(" + strings.Join(cellParts, ", ") + ")"
	}
	w.Token(strings.Join(rowParts, ", "))

	if len(s.returning) > 0 && qb.SupportsReturning() {
		retCols := make([]string, len(s.returning))
		for i, c := range s.returning {
			cw := writer.New()
			qb.QuoteIdent(cw, c)
			retCols[i] = cw.String()
		}
		w.Token("RETURNING")
		w.Token(strings.Join(retCols, ", "))
	}

	return w.String(), nil
}

// ToString renders s against qb with every bound value inlined as an
// escaped literal.
func (s *InsertStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	sql, values, err := s.Build(qb)
	if err != nil {
		return "", err
	}
	return dialect.ToString(qb, sql, values)
}
