package dialect

import "errors"

// ErrUnsupportedOnDialect is returned when a construct that is only
// valid on certain dialects is rendered against one that doesn't
// support it (e.g. UPDATE/DELETE ORDER BY/LIMIT outside MySQL, FK DROP
// on SQLite, Postgres TYPE DDL on non-Postgres).
var ErrUnsupportedOnDialect = errors.New("dialect: construct unsupported on this dialect")

// ErrBindMismatch is returned by ToString when the rendered SQL carries
// a different number of placeholders than the collected values.
var ErrBindMismatch = errors.New("dialect: placeholder count does not match bound value count")

// ErrCustomArgsMismatch is returned when a CustomWithValues fragment's
// `?` placeholder count differs from the number of supplied values.
var ErrCustomArgsMismatch = errors.New("dialect: custom SQL fragment placeholder count does not match value count")
