package dialect

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shipq/sqlkit/db/portsql/value"
)

// Escape renders v as a dialect-correct SQL literal, for use by the
// to_string inlining pass and by DDL default-value rendering (which is
// always literal — DDL has no bind parameters).
func Escape(qb QueryBuilder, v value.Value) string {
	if v.IsNull() {
		return "NULL"
	}
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.Bool()
		if b {
			return "TRUE"
		}
		return "FALSE"
	case value.KindTinyInt, value.KindSmallInt, value.KindInt, value.KindBigInt:
		i, _ := v.Int64()
		return strconv.FormatInt(i, 10)
	case value.KindTinyUint, value.KindSmallUint, value.KindUint, value.KindBigUint:
		u, _ := v.Uint64()
		return strconv.FormatUint(u, 10)
	case value.KindFloat, value.KindDouble:
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case value.KindString:
		s, _ := v.String()
		return quoteString(s)
	case value.KindJSON:
		b, _ := v.Bytes()
		return quoteString(string(b))
	case value.KindBytes:
		b, _ := v.Bytes()
		return blobLiteral(qb, b)
	case value.KindDate:
		t, _ := v.Time()
		return "'" + t.Format("2006-01-02") + "'"
	case value.KindTime:
		t, _ := v.Time()
		return "'" + t.Format("15:04:05") + "'"
	case value.KindDateTime:
		t, _ := v.Time()
		return "'" + t.Format("2006-01-02T15:04:05") + "'"
	case value.KindUuid:
		u, _ := v.Uuid()
		return quoteString(u.String())
	default:
		return "NULL"
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func blobLiteral(qb QueryBuilder, b []byte) string {
	h := hex.EncodeToString(b)
	if qb.Name() == "postgres" {
		return "'\\x" + h + "'"
	}
	return "X'" + strings.ToUpper(h) + "'"
}

var postgresPlaceholderRe = regexp.MustCompile(`\$(\d+)`)

// ToString performs the second rendering pass described by the core
// spec: it takes the (sql, values) pair already produced by a Build
// call and substitutes every placeholder with its escaped literal.
func ToString(qb QueryBuilder, sql string, values []value.Value) (string, error) {
	if qb.Name() == "postgres" {
		var failure error
		out := postgresPlaceholderRe.ReplaceAllStringFunc(sql, func(m string) string {
			n, _ := strconv.Atoi(m[1:])
			if n < 1 || n > len(values) {
				failure = fmt.Errorf("%w: placeholder %s has no matching value", ErrBindMismatch, m)
				return m
			}
			return Escape(qb, values[n-1])
		})
		if failure != nil {
			return "", failure
		}
		if placeholderCount(sql) != len(values) {
			return "", fmt.Errorf("%w: %d placeholders, %d values", ErrBindMismatch, placeholderCount(sql), len(values))
		}
		return out, nil
	}

	parts := strings.Split(sql, "?")
	if len(parts)-1 != len(values) {
		return "", fmt.Errorf("%w: %d placeholders, %d values", ErrBindMismatch, len(parts)-1, len(values))
	}
	var b strings.Builder
	for i, part := range parts {
		b.WriteString(part)
		if i < len(values) {
			b.WriteString(Escape(qb, values[i]))
		}
	}
	return b.String(), nil
}

func placeholderCount(sql string) int {
	return len(postgresPlaceholderRe.FindAllStringIndex(sql, -1))
}
