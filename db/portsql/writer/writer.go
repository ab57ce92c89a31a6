// Package writer provides the SQL writer sink and the value-collector
// primitive shared by the query, ddl, and dialect packages.
package writer

import (
	"strings"

	"github.com/shipq/sqlkit/db/portsql/value"
)

// Writer is a thin string-building sink. It tracks whether a separator
// is needed before the next token so callers don't have to thread that
// state through deeply recursive render calls by hand.
type Writer struct {
	b         strings.Builder
	needsSpace bool
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{}
}

// WriteString appends s verbatim, with no separator logic.
func (w *Writer) WriteString(s string) {
	w.b.WriteString(s)
}

// WriteByte appends a single byte verbatim.
func (w *Writer) WriteByte(c byte) {
	w.b.WriteByte(c)
}

// Token appends s, inserting a single space before it if the previous
// write left the writer expecting a separator.
func (w *Writer) Token(s string) {
	if w.needsSpace {
		w.b.WriteByte(' ')
	}
	w.b.WriteString(s)
	w.needsSpace = true
}

// NoSpace suppresses the separator that would otherwise precede the next
// Token call (used after writing an opening delimiter like `(`).
func (w *Writer) NoSpace() {
	w.needsSpace = false
}

// String returns the accumulated SQL text.
func (w *Writer) String() string {
	return w.b.String()
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return w.b.Len()
}

// Collector receives each bound value in left-to-right placeholder
// order as a statement is rendered. BuildCollect callers supply one
// directly; Build derives one that appends into a local slice.
type Collector func(v value.Value)

// SliceCollector returns a Collector that appends each value into *out;
// the caller reads the accumulated values from *out directly.
func SliceCollector(out *[]value.Value) Collector {
	return func(v value.Value) {
		*out = append(*out, v)
	}
}
