package query

import (
	"fmt"
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/ref"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// whereLink is one element of a WHERE/HAVING chain: an expression and
// the boolean operator joining it to the previous link (ignored for the
// first link).
type whereLink struct {
	Expr SimpleExpr
	Join BinOper
}

// renderExpr renders e with no parenthesization decision of its own —
// callers (renderBinary's operand logic, renderChain's link logic)
// decide whether to wrap the result.
func renderExpr(w *writer.Writer, b *dialect.Binder, e SimpleExpr) error {
	switch v := e.(type) {
	case columnExpr:
		renderColumnRef(w, b.QB, v.Ref)
		return nil
	case unaryExpr:
		inner, err := renderToString(b, v.Expr)
		if err != nil {
			return err
		}
		w.Token("(NOT " + inner + ")")
		return nil
	case functionCallExpr:
		return renderFunctionCall(w, b, v)
	case binaryExpr:
		return renderBinary(w, b, v)
	case subQueryExpr:
		sub := writer.New()
		if err := renderSelect(sub, b, v.Stmt); err != nil {
			return err
		}
		w.Token("(" + sub.String() + ")")
		return nil
	case valueExpr:
		b.Bind(w, v.Val)
		return nil
	case valuesExpr:
		parts := make([]string, len(v.Vals))
		for i, val := range v.Vals {
			sub := writer.New()
			b.Bind(sub, val)
			parts[i] = sub.String()
		}
		w.Token("(" + strings.Join(parts, ", ") + ")")
		return nil
	case customExpr:
		w.Token(v.SQL)
		return nil
	case customWithValuesExpr:
		return renderCustomWithValues(w, b, v)
	case keywordExpr:
		renderKeyword(w, v.KW)
		return nil
	default:
		return fmt.Errorf("query: unrenderable expression %T", e)
	}
}

// renderToString renders e into a fresh Writer and returns the result,
// for callers that need the text as a string before deciding whether to
// wrap it (parenthesization, function-call argument lists).
func renderToString(b *dialect.Binder, e SimpleExpr) (string, error) {
	sub := writer.New()
	if err := renderExpr(sub, b, e); err != nil {
		return "", err
	}
	return sub.String(), nil
}

func renderColumnRef(w *writer.Writer, qb dialect.QueryBuilder, c ref.ColumnRef) {
	sub := writer.New()
	if c.Qualified() {
		qb.QuoteIdent(sub, c.Table)
		sub.WriteByte('.')
		qb.QuoteIdent(sub, c.Name)
	} else {
		qb.QuoteIdent(sub, c.Name)
	}
	w.Token(sub.String())
}

func renderKeyword(w *writer.Writer, kw Keyword) {
	switch kw.Kind {
	case KeywordNull:
		w.Token("NULL")
	case KeywordCustom:
		w.Token(iden.Text(kw.Name))
	}
}

func renderFunctionCall(w *writer.Writer, b *dialect.Binder, v functionCallExpr) error {
	name, err := functionName(b.QB, v.Fn)
	if err != nil {
		return err
	}
	parts := make([]string, len(v.Args))
	for i, a := range v.Args {
		s, err := renderToString(b, a)
		if err != nil {
			return err
		}
		parts[i] = s
	}
	w.Token(name + "(" + strings.Join(parts, ", ") + ")")
	return nil
}

func functionName(qb dialect.QueryBuilder, fn Function) (string, error) {
	switch fn.Kind {
	case FuncMax:
		return "MAX", nil
	case FuncMin:
		return "MIN", nil
	case FuncSum:
		return "SUM", nil
	case FuncAvg:
		return "AVG", nil
	case FuncCount:
		return "COUNT", nil
	case FuncIfNull:
		return qb.MapFunc(dialect.FuncIfNull), nil
	case FuncCharLength:
		return qb.MapFunc(dialect.FuncCharLength), nil
	case FuncCustom:
		return iden.Text(fn.Name), nil
	default:
		return "", fmt.Errorf("query: unknown function kind %d", fn.Kind)
	}
}

// renderCustomWithValues scans raw for `?` occurrences in order,
// pushing the paired value and emitting a placeholder for each. A
// placeholder-count/value-count mismatch fails ErrCustomArgsMismatch.
func renderCustomWithValues(w *writer.Writer, b *dialect.Binder, v customWithValuesExpr) error {
	parts := strings.Split(v.SQL, "?")
	if len(parts)-1 != len(v.Vals) {
		return fmt.Errorf("%w: %d placeholders, %d values", dialect.ErrCustomArgsMismatch, len(parts)-1, len(v.Vals))
	}
	var sub strings.Builder
	for i, part := range parts {
		sub.WriteString(part)
		if i < len(v.Vals) {
			tmp := writer.New()
			b.Bind(tmp, v.Vals[i])
			sub.WriteString(tmp.String())
		}
	}
	w.Token(sub.String())
	return nil
}

// renderBinary implements spec §4.3 point 3: IN/NOT IN/BETWEEN/NOT
// BETWEEN are special forms with their own right-hand rendering; every
// other binary operator renders as `left op right` with each operand
// individually wrapped in parens by operandString when it needs it.
func renderBinary(w *writer.Writer, b *dialect.Binder, e binaryExpr) error {
	switch e.Op {
	case In, NotIn:
		left, err := operandString(b, e.Left, e.Op)
		if err != nil {
			return err
		}
		right, err := renderInRight(b, e.Right)
		if err != nil {
			return err
		}
		kw := "IN"
		if e.Op == NotIn {
			kw = "NOT IN"
		}
		w.Token(left)
		w.Token(kw)
		w.Token(right)
		return nil
	case Between, NotBetween:
		left, err := operandString(b, e.Left, e.Op)
		if err != nil {
			return err
		}
		vs, ok := e.Right.(valuesExpr)
		if !ok || len(vs.Vals) != 2 {
			return fmt.Errorf("query: BETWEEN requires exactly two values")
		}
		loW, hiW := writer.New(), writer.New()
		b.Bind(loW, vs.Vals[0])
		b.Bind(hiW, vs.Vals[1])
		kw := "BETWEEN"
		if e.Op == NotBetween {
			kw = "NOT BETWEEN"
		}
		w.Token(left)
		w.Token(kw)
		w.Token(loW.String())
		w.Token("AND")
		w.Token(hiW.String())
		return nil
	default:
		left, err := operandString(b, e.Left, e.Op)
		if err != nil {
			return err
		}
		right, err := operandString(b, e.Right, e.Op)
		if err != nil {
			return err
		}
		w.Token(left)
		w.Token(binOperSQL(e.Op))
		w.Token(right)
		return nil
	}
}

// operandString renders expr as an operand of a binaryExpr whose
// operator is parentOp, wrapping it in parens when expr is itself a
// non-special-form Binary and parentOp is a combining operator
// (And/Or/Add/Sub/Mul/Div). See DESIGN.md for how this rule was
// recovered from the teacher's own worked doctest example.
func operandString(b *dialect.Binder, expr SimpleExpr, parentOp BinOper) (string, error) {
	if be, ok := expr.(binaryExpr); ok && isCombiningOp(parentOp) && !isSpecialForm(be.Op) {
		sub := writer.New()
		if err := renderBinary(sub, b, be); err != nil {
			return "", err
		}
		return "(" + sub.String() + ")", nil
	}
	return renderToString(b, expr)
}

func renderInRight(b *dialect.Binder, right SimpleExpr) (string, error) {
	switch r := right.(type) {
	case valuesExpr:
		parts := make([]string, len(r.Vals))
		for i, v := range r.Vals {
			sub := writer.New()
			b.Bind(sub, v)
			parts[i] = sub.String()
		}
		return "(" + strings.Join(parts, ", ") + ")", nil
	case subQueryExpr:
		sub := writer.New()
		if err := renderSelect(sub, b, r.Stmt); err != nil {
			return "", err
		}
		return "(" + sub.String() + ")", nil
	default:
		return "", fmt.Errorf("query: IN/NOT IN right operand must be a value list or subquery")
	}
}

// chainExempt reports whether e is one of the special forms that a
// mixed-boolean chain never wraps: IN/NOT IN already carry their own
// `(...)` from the value-list/subquery rendering, and BETWEEN/NOT
// BETWEEN are left bare as `x BETWEEN lo AND hi`.
func chainExempt(e SimpleExpr) bool {
	be, ok := e.(binaryExpr)
	if !ok {
		return false
	}
	return isSpecialForm(be.Op)
}

// renderChain renders a WHERE/HAVING chain: each link's SQL concatenated
// with its boolean operator inserted before all but the first. When the
// chain contains at least one OR join, every non-exempt link is
// individually parenthesized; a pure-AND chain never wraps. See
// DESIGN.md for how this rule was recovered.
func renderChain(w *writer.Writer, b *dialect.Binder, links []whereLink) error {
	if len(links) == 0 {
		return nil
	}
	hasOr := false
	for _, l := range links[1:] {
		if l.Join == Or {
			hasOr = true
		}
	}
	for i, l := range links {
		if i > 0 {
			w.Token(binOperSQL(l.Join))
		}
		if hasOr && !chainExempt(l.Expr) {
			sub := writer.New()
			if err := renderExpr(sub, b, l.Expr); err != nil {
				return err
			}
			w.Token("(" + sub.String() + ")")
		} else {
			if err := renderExpr(w, b, l.Expr); err != nil {
				return err
			}
		}
	}
	return nil
}
