package ref

import (
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/value"
)

// ColumnTypeKind enumerates the portable column type vocabulary shared
// by every dialect's schema renderer.
type ColumnTypeKind int

const (
	TypeChar ColumnTypeKind = iota
	TypeString
	TypeText
	TypeTinyInteger
	TypeSmallInteger
	TypeInteger
	TypeBigInteger
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeDateTime
	TypeTimestamp
	TypeTime
	TypeDate
	TypeBinary
	TypeBoolean
	TypeMoney
	TypeJson
	TypeJsonBinary
	TypeUuid
	TypeCustom
)

// ColumnType is a column's storage type plus its optional size
// qualifiers. Length applies to Char/String/Binary; Precision/Scale
// apply to Decimal; CustomName carries the raw type text for TypeCustom.
type ColumnType struct {
	Kind       ColumnTypeKind
	Length     int
	Precision  int
	Scale      int
	CustomName string
}

func Char(length int) ColumnType       { return ColumnType{Kind: TypeChar, Length: length} }
func VarString(length int) ColumnType  { return ColumnType{Kind: TypeString, Length: length} }
func Text() ColumnType                 { return ColumnType{Kind: TypeText} }
func TinyInteger() ColumnType          { return ColumnType{Kind: TypeTinyInteger} }
func SmallInteger() ColumnType         { return ColumnType{Kind: TypeSmallInteger} }
func Integer() ColumnType              { return ColumnType{Kind: TypeInteger} }
func BigInteger() ColumnType           { return ColumnType{Kind: TypeBigInteger} }
func Float() ColumnType                { return ColumnType{Kind: TypeFloat} }
func Double() ColumnType               { return ColumnType{Kind: TypeDouble} }
func Decimal(precision, scale int) ColumnType {
	return ColumnType{Kind: TypeDecimal, Precision: precision, Scale: scale}
}
func DateTime() ColumnType  { return ColumnType{Kind: TypeDateTime} }
func Timestamp() ColumnType { return ColumnType{Kind: TypeTimestamp} }
func Time() ColumnType      { return ColumnType{Kind: TypeTime} }
func Date() ColumnType      { return ColumnType{Kind: TypeDate} }
func Binary(length int) ColumnType { return ColumnType{Kind: TypeBinary, Length: length} }
func Boolean() ColumnType   { return ColumnType{Kind: TypeBoolean} }
func Money() ColumnType     { return ColumnType{Kind: TypeMoney} }
func Json() ColumnType      { return ColumnType{Kind: TypeJson} }
func JsonBinary() ColumnType { return ColumnType{Kind: TypeJsonBinary} }
func Uuid() ColumnType      { return ColumnType{Kind: TypeUuid} }
func Custom(name string) ColumnType {
	return ColumnType{Kind: TypeCustom, CustomName: name}
}

// ColumnSpecKind enumerates the column modifier vocabulary.
type ColumnSpecKind int

const (
	SpecNotNull ColumnSpecKind = iota
	SpecDefault
	SpecAutoIncrement
	SpecUniqueKey
	SpecPrimaryKey
	SpecExtra
)

// ColumnSpec is one modifier attached to a ColumnDef; only SpecDefault
// and SpecExtra carry a payload.
type ColumnSpec struct {
	Kind    ColumnSpecKind
	Default value.Value
	Extra   string
}

func NotNull() ColumnSpec               { return ColumnSpec{Kind: SpecNotNull} }
func Default(v value.Value) ColumnSpec  { return ColumnSpec{Kind: SpecDefault, Default: v} }
func AutoIncrement() ColumnSpec         { return ColumnSpec{Kind: SpecAutoIncrement} }
func UniqueKey() ColumnSpec             { return ColumnSpec{Kind: SpecUniqueKey} }
func PrimaryKey() ColumnSpec            { return ColumnSpec{Kind: SpecPrimaryKey} }
func Extra(sql string) ColumnSpec       { return ColumnSpec{Kind: SpecExtra, Extra: sql} }

// ForeignKeyAction enumerates ON DELETE / ON UPDATE behaviors.
type ForeignKeyAction int

const (
	ActionRestrict ForeignKeyAction = iota
	ActionCascade
	ActionSetNull
	ActionNoAction
	ActionSetDefault
)

// ForeignKeyDef describes one foreign key constraint. It lives in ref
// (rather than ddl) so the dialect package can render it without
// importing ddl, which itself depends on dialect to render statements.
type ForeignKeyDef struct {
	Name       iden.Iden
	Columns    []iden.Iden
	RefTable   iden.Iden
	RefColumns []iden.Iden
	OnDelete   *ForeignKeyAction
	OnUpdate   *ForeignKeyAction
}

// IndexDef describes one index. Like ForeignKeyDef, it lives in ref to
// stay reachable from the dialect package.
type IndexDef struct {
	Name    iden.Iden
	Table   iden.Iden
	Columns []iden.Iden
	Unique  bool
}
