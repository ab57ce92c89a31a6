package ref

import "errors"

// ErrUnexpectedTableRefAlias is returned by TableRef.Alias when called on
// an already-aliased TableRef or on the SubQuery variant.
var ErrUnexpectedTableRefAlias = errors.New("ref: alias only applies to Table or SchemaTable")
