package query

import "github.com/shipq/sqlkit/db/portsql/iden"

// KeywordKind discriminates Keyword's variants.
type KeywordKind int

const (
	KeywordNull KeywordKind = iota
	KeywordCustom
)

// Keyword is a bare SQL keyword literal (NULL, DEFAULT, CURRENT_TIMESTAMP,
// ...) rendered unquoted.
type Keyword struct {
	Kind KeywordKind
	Name iden.Iden // only meaningful when Kind == KeywordCustom
}

// NullKeyword constructs the NULL keyword literal.
func NullKeyword() Keyword { return Keyword{Kind: KeywordNull} }

// CustomKeyword constructs an arbitrary keyword literal rendered as
// name's unquoted text.
func CustomKeyword(name iden.Iden) Keyword {
	return Keyword{Kind: KeywordCustom, Name: name}
}
