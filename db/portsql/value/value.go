// Package value defines the cross-dialect value domain bound into
// rendered SQL as positional parameters.
package value

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the variant carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindTinyInt
	KindSmallInt
	KindInt
	KindBigInt
	KindTinyUint
	KindSmallUint
	KindUint
	KindBigUint
	KindFloat
	KindDouble
	KindBytes
	KindString
	KindJSON
	KindDate
	KindTime
	KindDateTime
	KindUuid
)

// Value is a tagged sum over the value domain every dialect must be able
// to bind as a parameter. The zero Value is Null.
type Value struct {
	kind Kind

	b    bool
	i    int64
	u    uint64
	f32  float32
	f64  float64
	by   []byte
	s    string
	t    time.Time
	uid  uuid.UUID
	null bool // true when this variant itself carries no payload (typed Null)
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the untyped Null variant or a typed-null
// payload variant (e.g. a nil Json/Date/Time/DateTime/Uuid).
func (v Value) IsNull() bool { return v.kind == KindNull || v.null }

// Null constructs the untyped Null variant.
func Null() Value { return Value{kind: KindNull, null: true} }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// TinyInt constructs a TinyInt (int8) value.
func TinyInt(i int8) Value { return Value{kind: KindTinyInt, i: int64(i)} }

// SmallInt constructs a SmallInt (int16) value.
func SmallInt(i int16) Value { return Value{kind: KindSmallInt, i: int64(i)} }

// Int constructs an Int (int32) value.
func Int(i int32) Value { return Value{kind: KindInt, i: int64(i)} }

// BigInt constructs a BigInt (int64) value.
func BigInt(i int64) Value { return Value{kind: KindBigInt, i: i} }

// TinyUint constructs an unsigned TinyInt (uint8) value.
func TinyUint(u uint8) Value { return Value{kind: KindTinyUint, u: uint64(u)} }

// SmallUint constructs an unsigned SmallInt (uint16) value.
func SmallUint(u uint16) Value { return Value{kind: KindSmallUint, u: uint64(u)} }

// Uint constructs an unsigned Int (uint32) value.
func Uint(u uint32) Value { return Value{kind: KindUint, u: uint64(u)} }

// BigUint constructs an unsigned BigInt (uint64) value.
func BigUint(u uint64) Value { return Value{kind: KindBigUint, u: u} }

// Float constructs a 32-bit float value.
func Float(f float32) Value { return Value{kind: KindFloat, f32: f} }

// Double constructs a 64-bit float value.
func Double(f float64) Value { return Value{kind: KindDouble, f64: f} }

// Bytes constructs an owned byte-string value.
func Bytes(b []byte) Value {
	if b == nil {
		return Value{kind: KindBytes, null: true}
	}
	return Value{kind: KindBytes, by: b}
}

// String constructs an owned text value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// JSON constructs a JSON payload value from a raw encoded document.
// A nil payload is a typed Json null.
func JSON(raw []byte) Value {
	if raw == nil {
		return Value{kind: KindJSON, null: true}
	}
	return Value{kind: KindJSON, by: raw}
}

// Date constructs a date-only value (the time-of-day component is ignored
// on render).
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// NullDate constructs a typed-null Date.
func NullDate() Value { return Value{kind: KindDate, null: true} }

// Time constructs a time-of-day value (the date component is ignored on
// render).
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// NullTime constructs a typed-null Time.
func NullTime() Value { return Value{kind: KindTime, null: true} }

// DateTime constructs a combined date/time value.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// NullDateTime constructs a typed-null DateTime.
func NullDateTime() Value { return Value{kind: KindDateTime, null: true} }

// Uuid constructs a UUID value.
func Uuid(id uuid.UUID) Value { return Value{kind: KindUuid, uid: id} }

// NullUuid constructs a typed-null Uuid.
func NullUuid() Value { return Value{kind: KindUuid, null: true} }

// Bool returns the bool payload and whether v actually holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int64 returns the signed-integer payload (TinyInt/SmallInt/Int/BigInt)
// widened to int64, and whether v holds a signed-integer variant.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt:
		return v.i, true
	default:
		return 0, false
	}
}

// Uint64 returns the unsigned-integer payload widened to uint64, and
// whether v holds an unsigned-integer variant.
func (v Value) Uint64() (uint64, bool) {
	switch v.kind {
	case KindTinyUint, KindSmallUint, KindUint, KindBigUint:
		return v.u, true
	default:
		return 0, false
	}
}

// Float64 returns the float payload widened to float64, and whether v
// holds Float or Double.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return float64(v.f32), true
	case KindDouble:
		return v.f64, true
	default:
		return 0, false
	}
}

// Bytes returns the byte-string payload (Bytes or Json), and whether v
// holds one and is non-null.
func (v Value) Bytes() ([]byte, bool) {
	if (v.kind == KindBytes || v.kind == KindJSON) && !v.null {
		return v.by, true
	}
	return nil, false
}

// String returns the text payload, and whether v holds String.
func (v Value) String() (string, bool) { return v.s, v.kind == KindString }

// Time returns the time payload (Date/Time/DateTime), and whether v holds
// one and is non-null.
func (v Value) Time() (time.Time, bool) {
	switch v.kind {
	case KindDate, KindTime, KindDateTime:
		if v.null {
			return time.Time{}, false
		}
		return v.t, true
	default:
		return time.Time{}, false
	}
}

// Uuid returns the UUID payload, and whether v holds a non-null Uuid.
func (v Value) Uuid() (uuid.UUID, bool) {
	if v.kind == KindUuid && !v.null {
		return v.uid, true
	}
	return uuid.UUID{}, false
}

// Native returns v's payload as a Go native type suitable for handing to
// database/sql as a driver argument. Null (typed or untyped) yields nil.
func (v Value) Native() any {
	if v.IsNull() {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.b
	case KindTinyInt, KindSmallInt, KindInt, KindBigInt:
		return v.i
	case KindTinyUint, KindSmallUint, KindUint, KindBigUint:
		return v.u
	case KindFloat:
		return v.f32
	case KindDouble:
		return v.f64
	case KindBytes, KindJSON:
		return v.by
	case KindString:
		return v.s
	case KindDate, KindTime, KindDateTime:
		return v.t
	case KindUuid:
		return v.uid
	default:
		return nil
	}
}

// GoString implements fmt.GoStringer for debugging only; it is not the
// SQL literal form (see dialect.Escape for that).
func (v Value) GoString() string {
	return fmt.Sprintf("value.Value{kind=%v, native=%v}", v.kind, v.Native())
}
