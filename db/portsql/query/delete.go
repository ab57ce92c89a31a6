package query

import (
	"strconv"
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// DeleteStatement is the DELETE statement AST. ORDER BY/LIMIT are
// MySQL-specific; rendering them against another dialect fails
// ErrUnsupportedOnDialect.
type DeleteStatement struct {
	table  ref.TableRef
	wheres []whereLink
	orders []orderItem
	limit  *uint64
}

// Delete constructs an empty DELETE statement builder.
func Delete() *DeleteStatement { return &DeleteStatement{} }

// From sets the target table.
func (s *DeleteStatement) From(t ref.TableRef) *DeleteStatement {
	s.table = t
	return s
}

// AndWhere appends a WHERE link joined to the previous one by AND.
func (s *DeleteStatement) AndWhere(e Expr) *DeleteStatement {
	s.wheres = append(s.wheres, whereLink{Expr: e.inner, Join: And})
	return s
}

// OrWhere appends a WHERE link joined to the previous one by OR.
func (s *DeleteStatement) OrWhere(e Expr) *DeleteStatement {
	s.wheres = append(s.wheres, whereLink{Expr: e.inner, Join: Or})
	return s
}

// OrderBy appends an ascending ORDER BY expression (MySQL only).
func (s *DeleteStatement) OrderBy(e Expr) *DeleteStatement {
	s.orders = append(s.orders, orderItem{Expr: e.inner})
	return s
}

// OrderByDesc appends a descending ORDER BY expression (MySQL only).
func (s *DeleteStatement) OrderByDesc(e Expr) *DeleteStatement {
	s.orders = append(s.orders, orderItem{Expr: e.inner, Desc: true})
	return s
}

// Limit overwrites the LIMIT clause (MySQL only).
func (s *DeleteStatement) Limit(n uint64) *DeleteStatement {
	s.limit = &n
	return s
}

// Build renders s against qb and returns the SQL and its bound values.
func (s *DeleteStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	var values []value.Value
	sql, err := s.BuildCollect(qb, writer.SliceCollector(&values))
	return sql, values, err
}

// BuildCollect renders s against qb, streaming bound values through
// collector in left-to-right placeholder order.
func (s *DeleteStatement) BuildCollect(qb dialect.QueryBuilder, collector writer.Collector) (string, error) {
	if (len(s.orders) > 0 || s.limit != nil) && !qb.SupportsUpdateOrderLimit() {
		return "", dialect.ErrUnsupportedOnDialect
	}

	w := writer.New()
	b := dialect.NewBinder(qb, collector)

	w.Token("DELETE FROM")
	tableSQL, err := renderTableRefString(b, s.table)
	if err != nil {
		return "", err
	}
	w.Token(tableSQL)

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
func (s *DeleteStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	sql, values, err := s.Build(qb)
	if err != nil {
		return "", err
	}
	return dialect.ToString(qb, sql, values)
}
