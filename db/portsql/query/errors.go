package query

import "errors"

// ErrColumnsNotEqual is returned when an INSERT row's arity does not
// match the statement's column list, detected when the row is added.
var ErrColumnsNotEqual = errors.New("query: insert row arity does not match column list")

// ErrInsertValuesEmpty is returned when rendering an INSERT statement
// with no rows.
var ErrInsertValuesEmpty = errors.New("query: insert statement has no rows")
