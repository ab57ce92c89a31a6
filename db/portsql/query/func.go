package query

import "github.com/shipq/sqlkit/db/portsql/iden"

func funcCall(kind FuncKind, args ...Expr) Expr {
	inner := make([]SimpleExpr, len(args))
	for i, a := range args {
		inner[i] = a.inner
	}
	return Expr{inner: functionCallExpr{Fn: Function{Kind: kind}, Args: inner}}
}

// Max builds a MAX(args...) function call expression.
func Max(args ...Expr) Expr { return funcCall(FuncMax, args...) }

// Min builds a MIN(args...) function call expression.
func Min(args ...Expr) Expr { return funcCall(FuncMin, args...) }

// Sum builds a SUM(args...) function call expression.
func Sum(args ...Expr) Expr { return funcCall(FuncSum, args...) }

// Avg builds an AVG(args...) function call expression.
func Avg(args ...Expr) Expr { return funcCall(FuncAvg, args...) }

// Count builds a COUNT(args...) function call expression. Called with
// no arguments it renders COUNT(*), the same as Count(Asterisk()).
func Count(args ...Expr) Expr {
	if len(args) == 0 {
		args = []Expr{Asterisk()}
	}
	return funcCall(FuncCount, args...)
}

// IfNull builds a dialect-mapped IFNULL/COALESCE(a, b) function call.
func IfNull(a, b Expr) Expr { return funcCall(FuncIfNull, a, b) }

// CharLength builds a dialect-mapped CHAR_LENGTH/LENGTH(a) function
// call.
func CharLength(a Expr) Expr { return funcCall(FuncCharLength, a) }

// FuncCust builds a call to a user-named function.
func FuncCust(name iden.Iden, args ...Expr) Expr {
	inner := make([]SimpleExpr, len(args))
	for i, a := range args {
		inner[i] = a.inner
	}
	return Expr{inner: functionCallExpr{Fn: Function{Kind: FuncCustom, Name: name}, Args: inner}}
}
