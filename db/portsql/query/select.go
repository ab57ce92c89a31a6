package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// JoinKind enumerates the SELECT JOIN variants.
type JoinKind int

const (
	JoinPlain JoinKind = iota
	JoinInner
	JoinLeft
	JoinRight
)

func (k JoinKind) sql() string {
	switch k {
	case JoinInner:
		return "INNER JOIN"
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	default:
		return "JOIN"
	}
}

type selectItem struct {
	Expr  SimpleExpr
	Alias iden.Iden
}

type joinExpr struct {
	Kind   JoinKind
	Target ref.TableRef
	On     SimpleExpr  // nil when Using is set
	Using  []iden.Iden // nil when On is set
}

type orderItem struct {
	Expr SimpleExpr
	Desc bool
}

// SelectStatement is the SELECT statement AST. Every list-appending
// method is additive; Limit/Offset/Distinct overwrite.
type SelectStatement struct {
	distinct bool
	selects  []selectItem
	from     []ref.TableRef
	joins    []joinExpr
	wheres   []whereLink
	groups   []SimpleExpr
	havings  []whereLink
	orders   []orderItem
	limit    *uint64
	offset   *uint64
}

// Select constructs an empty SELECT statement builder.
func Select() *SelectStatement { return &SelectStatement{} }

// Distinct sets the DISTINCT flag.
func (s *SelectStatement) Distinct() *SelectStatement {
	s.distinct = true
	return s
}

// Column appends an unaliased projection expression.
func (s *SelectStatement) Column(e Expr) *SelectStatement {
	s.selects = append(s.selects, selectItem{Expr: e.inner})
	return s
}

// ColumnAs appends a projection expression under an alias.
func (s *SelectStatement) ColumnAs(e Expr, alias iden.Iden) *SelectStatement {
	s.selects = append(s.selects, selectItem{Expr: e.inner, Alias: alias})
	return s
}

// From appends a FROM table reference.
func (s *SelectStatement) From(t ref.TableRef) *SelectStatement {
	s.from = append(s.from, t)
	return s
}

// Join appends a JOIN clause with a boolean ON condition.
func (s *SelectStatement) Join(kind JoinKind, target ref.TableRef, on Expr) *SelectStatement {
	s.joins = append(s.joins, joinExpr{Kind: kind, Target: target, On: on.inner})
	return s
}

// LeftJoin is sugar for Join(JoinLeft, ...).
func (s *SelectStatement) LeftJoin(target ref.TableRef, on Expr) *SelectStatement {
	return s.Join(JoinLeft, target, on)
}

// InnerJoin is sugar for Join(JoinInner, ...).
func (s *SelectStatement) InnerJoin(target ref.TableRef, on Expr) *SelectStatement {
	return s.Join(JoinInner, target, on)
}

// JoinUsing appends a JOIN clause with a USING column list.
func (s *SelectStatement) JoinUsing(kind JoinKind, target ref.TableRef, cols ...iden.Iden) *SelectStatement {
	s.joins = append(s.joins, joinExpr{Kind: kind, Target: target, Using: cols})
	return s
}

// AndWhere appends a WHERE link joined to the previous one by AND.
func (s *SelectStatement) AndWhere(e Expr) *SelectStatement {
	s.wheres = append(s.wheres, whereLink{Expr: e.inner, Join: And})
	return s
}

// OrWhere appends a WHERE link joined to the previous one by OR.
func (s *SelectStatement) OrWhere(e Expr) *SelectStatement {
	s.wheres = append(s.wheres, whereLink{Expr: e.inner, Join: Or})
	return s
}

// GroupBy appends a GROUP BY expression.
func (s *SelectStatement) GroupBy(e Expr) *SelectStatement {
	s.groups = append(s.groups, e.inner)
	return s
}

// AndHaving appends a HAVING link joined to the previous one by AND.
func (s *SelectStatement) AndHaving(e Expr) *SelectStatement {
	s.havings = append(s.havings, whereLink{Expr: e.inner, Join: And})
	return s
}

// OrHaving appends a HAVING link joined to the previous one by OR.
func (s *SelectStatement) OrHaving(e Expr) *SelectStatement {
	s.havings = append(s.havings, whereLink{Expr: e.inner, Join: Or})
	return s
}

// OrderBy appends an ascending ORDER BY expression.
func (s *SelectStatement) OrderBy(e Expr) *SelectStatement {
	s.orders = append(s.orders, orderItem{Expr: e.inner})
	return s
}

// OrderByDesc appends a descending ORDER BY expression.
func (s *SelectStatement) OrderByDesc(e Expr) *SelectStatement {
	s.orders = append(s.orders, orderItem{Expr: e.inner, Desc: true})
	return s
}

// Limit overwrites the LIMIT clause.
func (s *SelectStatement) Limit(n uint64) *SelectStatement {
	s.limit = &n
	return s
}

// Offset overwrites the OFFSET clause.
func (s *SelectStatement) Offset(n uint64) *SelectStatement {
	s.offset = &n
	return s
}

// Build renders s against qb and returns the SQL and its bound values.
func (s *SelectStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	var values []value.Value
	sql, err := s.BuildCollect(qb, writer.SliceCollector(&values))
	return sql, values, err
}

// BuildCollect renders s against qb, streaming bound values through
// collector in left-to-right placeholder order.
func (s *SelectStatement) BuildCollect(qb dialect.QueryBuilder, collector writer.Collector) (string, error) {
	w := writer.New()
	b := dialect.NewBinder(qb, collector)
	if err := renderSelect(w, b, s); err != nil {
		return "", err
	}
	return w.String(), nil
}

// ToString renders s against qb with every bound value inlined as an
// escaped literal.
func (s *SelectStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	sql, values, err := s.Build(qb)
	if err != nil {
		return "", err
	}
	return dialect.ToString(qb, sql, values)
}

func renderSelect(w *writer.Writer, b *dialect.Binder, s *SelectStatement) error {
	w.Token("SELECT")
	if s.distinct {
		w.Token("DISTINCT")
	}
	if len(s.selects) == 0 {
		w.Token("*")
	} else {
		parts := make([]string, len(s.selects))
		for i, item := range s.selects {
			sql, err := renderToString(b, item.Expr)
			if err != nil {
				return err
			}
			if item.Alias != nil {
				aliasW := writer.New()
				b.QB.QuoteIdent(aliasW, item.Alias)
				sql = sql + " AS " + aliasW.String()
			}
			parts[i] = sql
		}
		w.Token(strings.Join(parts, ", "))
	}

	if len(s.from) > 0 {
		w.Token("FROM")
		parts := make([]string, len(s.from))
		for i, t := range s.from {
			sql, err := renderTableRefString(b, t)
			if err != nil {
				return err
			}
			parts[i] = sql
		}
		w.Token(strings.Join(parts, ", "))
	}

	for _, j := range s.joins {
		w.Token(j.Kind.sql())
		targetSQL, err := renderTableRefString(b, j.Target)
		if err != nil {
			return err
		}
		w.Token(targetSQL)
		if j.Using != nil {
			cols := make([]string, len(j.Using))
			for i, c := range j.Using {
				cw := writer.New()
				b.QB.QuoteIdent(cw, c)
				cols[i] = cw.String()
			}
			w.Token("USING (" + strings.Join(cols, ", ") + ")")
		} else if j.On != nil {
			w.Token("ON")
			if err := renderExpr(w, b, j.On); err != nil {
				return err
			}
		}
	}

	if len(s.wheres) > 0 {
		w.Token("WHERE")
		if err := renderChain(w, b, s.wheres); err != nil {
			return err
		}
	}

	if len(s.groups) > 0 {
		w.Token("GROUP BY")
		parts := make([]string, len(s.groups))
		for i, g := range s.groups {
			sql, err := renderToString(b, g)
			if err != nil {
				return err
			}
			parts[i] = sql
		}
		w.Token(strings.Join(parts, ", "))
	}

	if len(s.havings) > 0 {
		w.Token("HAVING")
		if err := renderChain(w, b, s.havings); err != nil {
			return err
		}
	}

	if len(s.orders) > 0 {
		w.Token("ORDER BY")
		parts := make([]string, len(s.orders))
		for i, o := range s.orders {
			sql, err := renderToString(b, o.Expr)
			if err != nil {
				return err
			}
			if o.Desc {
				sql += " DESC"
			}
			parts[i] = sql
		}
		w.Token(strings.Join(parts, ", "))
	}

	if s.limit != nil {
		w.Token("LIMIT")
		w.Token(strconv.FormatUint(*s.limit, 10))
	}
	if s.offset != nil {
		w.Token("OFFSET")
		w.Token(strconv.FormatUint(*s.offset, 10))
	}
	return nil
}

// renderTableRefString renders t as it appears after FROM or inside a
// JOIN. The SubQuery variant re-renders its inner statement against b's
// dialect on every call (never a frozen string) and binds the inner
// statement's values through b, so they take their place in the outer
// statement's placeholder/value sequence.
func renderTableRefString(b *dialect.Binder, t ref.TableRef) (string, error) {
	kind, schema, table, alias, sub := t.Parts()
	w := writer.New()
	switch kind {
	case ref.KindTable:
		b.QB.QuoteIdent(w, table)
	case ref.KindSchemaTable:
		b.QB.QuoteIdent(w, schema)
		w.WriteByte('.')
		b.QB.QuoteIdent(w, table)
	case ref.KindTableAlias:
		b.QB.QuoteIdent(w, table)
		w.WriteString(" AS ")
		b.QB.QuoteIdent(w, alias)
	case ref.KindSchemaTableAlias:
		b.QB.QuoteIdent(w, schema)
		w.WriteByte('.')
		b.QB.QuoteIdent(w, table)
		w.WriteString(" AS ")
		b.QB.QuoteIdent(w, alias)
	case ref.KindSubQuery:
		stmt, ok := sub.(*SelectStatement)
		if !ok {
			return "", fmt.Errorf("query: ref.SubQuery was not built from a *query.SelectStatement (got %T)", sub)
		}
		subW := writer.New()
		if err := renderSelect(subW, b, stmt); err != nil {
			return "", err
		}
		w.WriteString("(" + subW.String() + ")")
		w.WriteString(" AS ")
		b.QB.QuoteIdent(w, alias)
	}
	return w.String(), nil
}
