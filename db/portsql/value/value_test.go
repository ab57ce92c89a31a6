package value

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNullIsNull(t *testing.T) {
	v := Null()
	if !v.IsNull() {
		t.Error("Null() should be IsNull")
	}
	if v.Native() != nil {
		t.Errorf("Native() = %v, want nil", v.Native())
	}
}

func TestTypedNullVariantsAreNull(t *testing.T) {
	for name, v := range map[string]Value{
		"Bytes(nil)":   Bytes(nil),
		"JSON(nil)":    JSON(nil),
		"NullDate":     NullDate(),
		"NullTime":     NullTime(),
		"NullDateTime": NullDateTime(),
		"NullUuid":     NullUuid(),
	} {
		if !v.IsNull() {
			t.Errorf("%s: want IsNull() true", name)
		}
		if v.Native() != nil {
			t.Errorf("%s: Native() = %v, want nil", name, v.Native())
		}
	}
}

func TestIntegerAccessorsWidenToInt64(t *testing.T) {
	cases := []Value{TinyInt(5), SmallInt(5), Int(5), BigInt(5)}
	for _, v := range cases {
		got, ok := v.Int64()
		if !ok || got != 5 {
			t.Errorf("Int64() = (%d, %v), want (5, true)", got, ok)
		}
	}
	if _, ok := String("x").Int64(); ok {
		t.Error("String value should not report an Int64")
	}
}

func TestUnsignedAccessorsWidenToUint64(t *testing.T) {
	cases := []Value{TinyUint(5), SmallUint(5), Uint(5), BigUint(5)}
	for _, v := range cases {
		got, ok := v.Uint64()
		if !ok || got != 5 {
			t.Errorf("Uint64() = (%d, %v), want (5, true)", got, ok)
		}
	}
}

func TestFloatAccessorsWidenToFloat64(t *testing.T) {
	if got, ok := Float(1.5).Float64(); !ok || got != 1.5 {
		t.Errorf("Float64() = (%v, %v), want (1.5, true)", got, ok)
	}
	if got, ok := Double(2.25).Float64(); !ok || got != 2.25 {
		t.Errorf("Float64() = (%v, %v), want (2.25, true)", got, ok)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	b := []byte{0xDE, 0xAD}
	got, ok := Bytes(b).Bytes()
	if !ok || string(got) != string(b) {
		t.Errorf("Bytes() = (%v, %v), want (%v, true)", got, ok, b)
	}
}

func TestStringRoundTrip(t *testing.T) {
	got, ok := String("hello").String()
	if !ok || got != "hello" {
		t.Errorf("String() = (%q, %v), want (\"hello\", true)", got, ok)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	got, ok := DateTime(now).Time()
	if !ok || !got.Equal(now) {
		t.Errorf("Time() = (%v, %v), want (%v, true)", got, ok, now)
	}
	if _, ok := NullDateTime().Time(); ok {
		t.Error("NullDateTime should not report a Time")
	}
}

func TestUuidRoundTrip(t *testing.T) {
	id := uuid.New()
	got, ok := Uuid(id).Uuid()
	if !ok || got != id {
		t.Errorf("Uuid() = (%v, %v), want (%v, true)", got, ok, id)
	}
	if _, ok := NullUuid().Uuid(); ok {
		t.Error("NullUuid should not report a Uuid")
	}
}

func TestNativeReturnsUnderlyingPayload(t *testing.T) {
	if got := String("x").Native(); got != "x" {
		t.Errorf("Native() = %v, want %q", got, "x")
	}
	if got := BigInt(42).Native(); got != int64(42) {
		t.Errorf("Native() = %v, want int64(42)", got)
	}
	if got := Bool(true).Native(); got != true {
		t.Errorf("Native() = %v, want true", got)
	}
}
