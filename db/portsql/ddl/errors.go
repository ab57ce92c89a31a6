// Package ddl implements the schema statement ASTs — table
// create/alter/drop/rename/truncate, foreign key create/drop, index
// create/drop, and Postgres enum type create/alter/drop — and their
// dialect-parameterized rendering.
package ddl

import "errors"

// ErrAlterTableOptionEmpty is returned when a TableAlterStatement is
// rendered with no Add/Modify/Rename/Drop column option set.
var ErrAlterTableOptionEmpty = errors.New("ddl: alter table statement has no option")

// ErrTableDropEmpty is returned when a TableDropStatement names no
// tables.
var ErrTableDropEmpty = errors.New("ddl: drop table statement names no tables")

// ErrTypeDropEmpty is returned when a TypeDropStatement names no types.
var ErrTypeDropEmpty = errors.New("ddl: drop type statement names no types")
