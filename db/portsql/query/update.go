package query

import (
	"strconv"
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

type assignment struct {
	Column iden.Iden
	Expr   SimpleExpr
}

// UpdateStatement is the UPDATE statement AST. ORDER BY/LIMIT are
// MySQL-specific; rendering them against another dialect fails
// ErrUnsupportedOnDialect.
type UpdateStatement struct {
	table   ref.TableRef
	values  []assignment
	wheres  []whereLink
	orders  []orderItem
	limit   *uint64
}

// Update constructs an empty UPDATE statement builder.
func Update() *UpdateStatement { return &UpdateStatement{} }

// Table sets the target table.
func (s *UpdateStatement) Table(t ref.TableRef) *UpdateStatement {
	s.table = t
	return s
}

// Set appends an assignment, preserving insertion order.
func (s *UpdateStatement) Set(col iden.Iden, e Expr) *UpdateStatement {
	s.values = append(s.values, assignment{Column: col, Expr: e.inner})
	return s
}

// AndWhere appends a WHERE link joined to the previous one by AND.
func (s *UpdateStatement) AndWhere(e Expr) *UpdateStatement {
	s.wheres = append(s.wheres, whereLink{Expr: e.inner, Join: And})
	return s
}

// OrWhere appends a WHERE link joined to the previous one by OR.
func (s *UpdateStatement) OrWhere(e Expr) *UpdateStatement {
	s.wheres = append(s.wheres, whereLink{Expr: e.inner, Join: Or})
	return s
}

// OrderBy appends an ascending ORDER BY expression (MySQL only).
func (s *UpdateStatement) OrderBy(e Expr) *UpdateStatement {
	s.orders = append(s.orders, orderItem{Expr: e.inner})
	return s
}

// OrderByDesc appends a descending ORDER BY expression (MySQL only).
func (s *UpdateStatement) OrderByDesc(e Expr) *UpdateStatement {
	s.orders = append(s.orders, orderItem{Expr: e.inner, Desc: true})
	return s
}

// Limit overwrites the LIMIT clause (MySQL only).
func (s *UpdateStatement) Limit(n uint64) *UpdateStatement {
	s.limit = &n
	return s
}

// Build renders s against qb and returns the SQL and its bound values.
func (s *UpdateStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	var values []value.Value
	sql, err := s.BuildCollect(qb, writer.SliceCollector(&values))
	return sql, values, err
}

// BuildCollect renders s against qb, streaming bound values through
// collector in left-to-right placeholder order.
func (s *UpdateStatement) BuildCollect(qb dialect.QueryBuilder, collector writer.Collector) (string, error) {
	if (len(s.orders) > 0 || s.limit != nil) && !qb.SupportsUpdateOrderLimit() {
		return "", dialect.ErrUnsupportedOnDialect
	}

	w := writer.New()
	b := dialect.NewBinder(qb, collector)

	w.Token("UPDATE")
	tableSQL, err := renderTableRefString(b, s.table)
	if err != nil {
		return "", err
	}
	w.Token(tableSQL)
	w.Token("SET")

	parts := make([]string, len(s.values))
	for i, a := range s.values {
		cw := writer.New()
		qb.QuoteIdent(cw, a.Column)
		sql, err := renderToString(b, a.Expr)
		if err != nil {
			return "", err
		}
		parts[i] = cw.String() + " = " + sql
	}
	w.Token(strings.Join(parts, ", "))

	if len(s.wheres) > 0 {
		w.Token("WHERE")
		if err := renderChain(w, b, s.wheres); err != nil {
			return "", err
		}
	}

	if len(s.orders) > 0 {
		w.Token("ORDER BY")
		orderParts := make([]string, len(s.orders))
		for i, o := range s.orders {
			sql, err := renderToString(b, o.Expr)
			if err != nil {
				return "", err
			}
			if o.Desc {
				sql += " DESC"
			}
			orderParts[i] = sql
		}
		w.Token(strings.Join(orderParts, ", "))
	}

	if s.limit != nil {
		w.Token("LIMIT")
		w.Token(strconv.FormatUint(*s.limit, 10))
	}

	return w.String(), nil
}

// ToString renders s against qb with every bound value inlined as an
// escaped literal.
func (s *UpdateStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	sql, values, err := s.Build(qb)
	if err != nil {
		return "", err
	}
	return dialect.ToString(qb, sql, values)
}
