// Package query implements the expression AST (SimpleExpr/Expr), the
// statement builders (SelectStatement, InsertStatement, UpdateStatement,
// DeleteStatement), and the dialect-parameterized rendering algorithm
// that walks them.
package query

import (
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/value"
)

// SimpleExpr is the expression AST node type. The variants are fixed to
// the set below; renderExpr type-switches over all of them exhaustively.
type SimpleExpr interface {
	isSimpleExpr()
}

type columnExpr struct{ Ref ref.ColumnRef }
type unaryExpr struct {
	Op   UnOper
	Expr SimpleExpr
}
type functionCallExpr struct {
	Fn   Function
	Args []SimpleExpr
}
type binaryExpr struct {
	Left  SimpleExpr
	Op    BinOper
	Right SimpleExpr
}
type subQueryExpr struct{ Stmt *SelectStatement }
type valueExpr struct{ Val value.Value }
type valuesExpr struct{ Vals []value.Value }
type customExpr struct{ SQL string }
type customWithValuesExpr struct {
	SQL  string
	Vals []value.Value
}
type keywordExpr struct{ KW Keyword }

func (columnExpr) isSimpleExpr()            {}
func (unaryExpr) isSimpleExpr()             {}
func (functionCallExpr) isSimpleExpr()      {}
func (binaryExpr) isSimpleExpr()            {}
func (subQueryExpr) isSimpleExpr()          {}
func (valueExpr) isSimpleExpr()             {}
func (valuesExpr) isSimpleExpr()            {}
func (customExpr) isSimpleExpr()            {}
func (customWithValuesExpr) isSimpleExpr()  {}
func (keywordExpr) isSimpleExpr()           {}

// Expr is the fluent builder facade over SimpleExpr. Every combinator
// method is total: it returns a new Expr and never mutates the
// receiver.
type Expr struct {
	inner SimpleExpr
}

// Inner exposes the underlying SimpleExpr, e.g. for use as a raw
// projection or a JOIN condition.
func (e Expr) Inner() SimpleExpr { return e.inner }

// Wrap lifts a raw SimpleExpr into the Expr fluent facade, mirroring the
// core spec's Expr::expr(e) — useful when an expression was built
// through a path that only produced a SimpleExpr (e.g. Func).
func Wrap(e SimpleExpr) Expr { return Expr{inner: e} }

// Col constructs an unqualified column reference expression.
func Col(name iden.Iden) Expr { return Expr{inner: columnExpr{Ref: ref.Column(name)}} }

// Tbl constructs a table-qualified column reference expression.
func Tbl(table, col iden.Iden) Expr {
	return Expr{inner: columnExpr{Ref: ref.TableColumn(table, col)}}
}

// Val constructs a literal value expression.
func Val(v value.Value) Expr { return Expr{inner: valueExpr{Val: v}} }

// Str is a convenience over Val(value.String(s)), the most common
// literal shape in WHERE/HAVING construction.
func Str(s string) Expr { return Val(value.String(s)) }

// Num is a convenience over Val(value.BigInt(n)).
func Num(n int64) Expr { return Val(value.BigInt(n)) }

// Cust constructs a raw SQL fragment expression, emitted verbatim with
// no escaping. Caller-trusted: the text is neither validated nor escaped.
func Cust(sql string) Expr { return Expr{inner: customExpr{SQL: sql}} }

// CustWithValues constructs a raw SQL fragment with `?`-placeholders
// substituted positionally by vs.
func CustWithValues(sql string, vs ...value.Value) Expr {
	return Expr{inner: customWithValuesExpr{SQL: sql, Vals: vs}}
}

// Asterisk constructs the bare `*` projection expression.
func Asterisk() Expr { return Cust("*") }

// Null constructs the NULL keyword expression.
func Null() Expr { return Expr{inner: keywordExpr{KW: NullKeyword()}} }

// Subquery constructs a scalar/IN subquery expression from a SELECT
// statement.
func Subquery(s *SelectStatement) Expr { return Expr{inner: subQueryExpr{Stmt: s}} }

// Not negates e.
func Not(e Expr) Expr { return Expr{inner: unaryExpr{Op: OpNot, Expr: e.inner}} }

func binary(l Expr, op BinOper, r Expr) Expr {
	return Expr{inner: binaryExpr{Left: l.inner, Op: op, Right: r.inner}}
}

func (e Expr) Eq(rhs Expr) Expr          { return binary(e, Equal, rhs) }
func (e Expr) Ne(rhs Expr) Expr          { return binary(e, NotEqual, rhs) }
func (e Expr) Gt(rhs Expr) Expr          { return binary(e, Greater, rhs) }
func (e Expr) Lt(rhs Expr) Expr          { return binary(e, Smaller, rhs) }
func (e Expr) Gte(rhs Expr) Expr         { return binary(e, GreaterOrEq, rhs) }
func (e Expr) Lte(rhs Expr) Expr         { return binary(e, SmallerOrEq, rhs) }
func (e Expr) Add(rhs Expr) Expr         { return binary(e, Add, rhs) }
func (e Expr) Sub(rhs Expr) Expr         { return binary(e, Sub, rhs) }
func (e Expr) Mul(rhs Expr) Expr         { return binary(e, Mul, rhs) }
func (e Expr) Div(rhs Expr) Expr         { return binary(e, Div, rhs) }
func (e Expr) Is(rhs Expr) Expr          { return binary(e, Is, rhs) }
func (e Expr) IsNot(rhs Expr) Expr       { return binary(e, IsNot, rhs) }
func (e Expr) IsNull() Expr              { return e.Is(Null()) }
func (e Expr) IsNotNull() Expr           { return e.IsNot(Null()) }
func (e Expr) Like(pattern string) Expr  { return binary(e, Like, Str(pattern)) }
func (e Expr) NotLike(pattern string) Expr { return binary(e, NotLike, Str(pattern)) }
func (e Expr) And(rhs Expr) Expr         { return binary(e, And, rhs) }
func (e Expr) Or(rhs Expr) Expr          { return binary(e, Or, rhs) }

// Equals is sugar for e.Eq(Tbl(table, col)), the common JOIN ON shape.
func (e Expr) Equals(table, col iden.Iden) Expr { return e.Eq(Tbl(table, col)) }

// InTuple builds a BinOper.In comparison against a literal value list.
func (e Expr) InTuple(vs ...value.Value) Expr {
	return Expr{inner: binaryExpr{Left: e.inner, Op: In, Right: valuesExpr{Vals: vs}}}
}

// NotInTuple builds a BinOper.NotIn comparison against a literal value
// list.
func (e Expr) NotInTuple(vs ...value.Value) Expr {
	return Expr{inner: binaryExpr{Left: e.inner, Op: NotIn, Right: valuesExpr{Vals: vs}}}
}

// InSubquery builds a BinOper.In comparison against a subquery.
func (e Expr) InSubquery(s *SelectStatement) Expr {
	return Expr{inner: binaryExpr{Left: e.inner, Op: In, Right: subQueryExpr{Stmt: s}}}
}

// NotInSubquery builds a BinOper.NotIn comparison against a subquery.
func (e Expr) NotInSubquery(s *SelectStatement) Expr {
	return Expr{inner: binaryExpr{Left: e.inner, Op: NotIn, Right: subQueryExpr{Stmt: s}}}
}

// Between builds a BinOper.Between comparison against a literal pair.
func (e Expr) Between(lo, hi value.Value) Expr {
	return Expr{inner: binaryExpr{Left: e.inner, Op: Between, Right: valuesExpr{Vals: []value.Value{lo, hi}}}}
}

// NotBetween builds a BinOper.NotBetween comparison against a literal
// pair.
func (e Expr) NotBetween(lo, hi value.Value) Expr {
	return Expr{inner: binaryExpr{Left: e.inner, Op: NotBetween, Right: valuesExpr{Vals: []value.Value{lo, hi}}}}
}
