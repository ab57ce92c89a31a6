package query

import "github.com/shipq/sqlkit/db/portsql/iden"

// UnOper enumerates the unary expression operators.
type UnOper int

const (
	OpNot UnOper = iota
)

// BinOper enumerates the binary expression operators. Precedence
// mirrors standard SQL; the renderer decides parenthesization (see
// render.go), it is not encoded here.
type BinOper int

const (
	And BinOper = iota
	Or
	Like
	NotLike
	Is
	IsNot
	In
	NotIn
	Between
	NotBetween
	Equal
	NotEqual
	Smaller
	Greater
	SmallerOrEq
	GreaterOrEq
	Add
	Sub
	Mul
	Div
)

func isCombiningOp(op BinOper) bool {
	switch op {
	case And, Or, Add, Sub, Mul, Div:
		return true
	default:
		return false
	}
}

func isSpecialForm(op BinOper) bool {
	switch op {
	case In, NotIn, Between, NotBetween:
		return true
	default:
		return false
	}
}

func binOperSQL(op BinOper) string {
	switch op {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Like:
		return "LIKE"
	case NotLike:
		return "NOT LIKE"
	case Is:
		return "IS"
	case IsNot:
		return "IS NOT"
	case Equal:
		return "="
	case NotEqual:
		return "<>"
	case Smaller:
		return "<"
	case Greater:
		return ">"
	case SmallerOrEq:
		return "<="
	case GreaterOrEq:
		return ">="
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return ""
	}
}

// FuncKind enumerates the portable function vocabulary a FunctionCall
// expression can carry.
type FuncKind int

const (
	FuncMax FuncKind = iota
	FuncMin
	FuncSum
	FuncAvg
	FuncCount
	FuncIfNull
	FuncCharLength
	FuncCustom
)

// Function is the payload of a FunctionCall expression: a portable
// function kind, or a dialect-opaque custom name.
type Function struct {
	Kind FuncKind
	Name iden.Iden // only meaningful when Kind == FuncCustom
}
