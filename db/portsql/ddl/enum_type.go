package ddl

import (
	"strings"

	"github.com/shipq/sqlkit/db/portsql/dialect"
	"github.com/shipq/sqlkit/db/portsql/iden"
	"github.com/shipq/sqlkit/db/portsql/value"
	"github.com/shipq/sqlkit/db/portsql/writer"
)

// TypeCreateStatement is the Postgres CREATE TYPE ... AS ENUM statement
// AST. Rendering against a dialect that doesn't support enum types
// (MySQL, SQLite) fails dialect.ErrUnsupportedOnDialect.
type TypeCreateStatement struct {
	name   iden.Iden
	values []string
}

// CreateEnumType constructs a TypeCreateStatement naming name.
func CreateEnumType(name iden.Iden) *TypeCreateStatement {
	return &TypeCreateStatement{name: name}
}

// Values appends enumerated value literals, preserving insertion order.
func (s *TypeCreateStatement) Values(vs ...string) *TypeCreateStatement {
	s.values = append(s.values, vs...)
	return s
}

// Build renders s against qb.
func (s *TypeCreateStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *TypeCreateStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *TypeCreateStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TypeCreateStatement) render(qb dialect.QueryBuilder) (string, error) {
	if !qb.SupportsEnumType() {
		return "", dialect.ErrUnsupportedOnDialect
	}
	w := writer.New()
	w.Token("CREATE TYPE")
	w.Token(quotedIdent(qb, s.name))
	w.Token("AS ENUM")
	w.Token(enumValueList(qb, s.values))
	return w.String(), nil
}

type alterTypeOptionKind int

const (
	alterTypeAdd alterTypeOptionKind = iota
	alterTypeRename
	alterTypeRenameValue
)

type alterTypeOption struct {
	kind alterTypeOptionKind

	addValue  string
	before    string // set only if kind == alterTypeAdd
	after     string // set only if kind == alterTypeAdd

	renameTo iden.Iden // kind == alterTypeRename

	renameValueFrom string // kind == alterTypeRenameValue
	renameValueTo   string
}

// TypeAlterStatement is the Postgres ALTER TYPE statement AST. It holds
// a single option slot that transitions monotonically: AddValue sets
// the slot to Add; Before/After only take effect while the slot is
// still Add, and are silently ignored once RenameTo or RenameValue has
// replaced it (spec §4.6's state machine note).
type TypeAlterStatement struct {
	name   iden.Iden
	option *alterTypeOption
}

// AlterType constructs an empty ALTER TYPE statement builder for name.
func AlterType(name iden.Iden) *TypeAlterStatement {
	return &TypeAlterStatement{name: name}
}

// AddValue sets the ADD VALUE option.
func (s *TypeAlterStatement) AddValue(v string) *TypeAlterStatement {
	s.option = &alterTypeOption{kind: alterTypeAdd, addValue: v}
	return s
}

// Before qualifies a pending AddValue option with BEFORE v. It has no
// effect if the current option is not Add.
func (s *TypeAlterStatement) Before(v string) *TypeAlterStatement {
	if s.option != nil && s.option.kind == alterTypeAdd {
		s.option.before, s.option.after = v, ""
	}
	return s
}

// After qualifies a pending AddValue option with AFTER v. It has no
// effect if the current option is not Add.
func (s *TypeAlterStatement) After(v string) *TypeAlterStatement {
	if s.option != nil && s.option.kind == alterTypeAdd {
		s.option.after, s.option.before = v, ""
	}
	return s
}

// RenameTo sets the RENAME TO option, replacing any pending Add.
func (s *TypeAlterStatement) RenameTo(to iden.Iden) *TypeAlterStatement {
	s.option = &alterTypeOption{kind: alterTypeRename, renameTo: to}
	return s
}

// RenameValue sets the RENAME VALUE option, replacing any pending Add.
func (s *TypeAlterStatement) RenameValue(from, to string) *TypeAlterStatement {
	s.option = &alterTypeOption{kind: alterTypeRenameValue, renameValueFrom: from, renameValueTo: to}
	return s
}

// Build renders s against qb.
func (s *TypeAlterStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *TypeAlterStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *TypeAlterStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TypeAlterStatement) render(qb dialect.QueryBuilder) (string, error) {
	if !qb.SupportsEnumType() {
		return "", dialect.ErrUnsupportedOnDialect
	}
	if s.option == nil {
		return "", ErrAlterTableOptionEmpty
	}

	w := writer.New()
	w.Token("ALTER TYPE")
	w.Token(quotedIdent(qb, s.name))

	switch s.option.kind {
	case alterTypeAdd:
		w.Token("ADD VALUE")
		w.Token(dialect.Escape(qb, value.String(s.option.addValue)))
		if s.option.before != "" {
			w.Token("BEFORE")
			w.Token(dialect.Escape(qb, value.String(s.option.before)))
		} else if s.option.after != "" {
			w.Token("AFTER")
			w.Token(dialect.Escape(qb, value.String(s.option.after)))
		}
	case alterTypeRename:
		w.Token("RENAME TO")
		w.Token(quotedIdent(qb, s.option.renameTo))
	case alterTypeRenameValue:
		w.Token("RENAME VALUE")
		w.Token(dialect.Escape(qb, value.String(s.option.renameValueFrom)))
		w.Token("TO")
		w.Token(dialect.Escape(qb, value.String(s.option.renameValueTo)))
	}

	return w.String(), nil
}

// TypeDropStatement is the Postgres DROP TYPE statement AST.
type TypeDropStatement struct {
	names    []iden.Iden
	ifExists bool
	cascade  bool
	restrict bool
}

// DropType constructs a TypeDropStatement naming names.
func DropType(names ...iden.Iden) *TypeDropStatement {
	return &TypeDropStatement{names: names}
}

// IfExists sets the IF EXISTS flag.
func (s *TypeDropStatement) IfExists() *TypeDropStatement {
	s.ifExists = true
	return s
}

// Cascade sets the CASCADE flag.
func (s *TypeDropStatement) Cascade() *TypeDropStatement {
	s.cascade, s.restrict = true, false
	return s
}

// Restrict sets the RESTRICT flag.
func (s *TypeDropStatement) Restrict() *TypeDropStatement {
	s.restrict, s.cascade = true, false
	return s
}

// Build renders s against qb.
func (s *TypeDropStatement) Build(qb dialect.QueryBuilder) (string, []value.Value, error) {
	sql, err := s.render(qb)
	return sql, nil, err
}

// BuildCollect renders s; collector is accepted for interface uniformity
// but never invoked.
func (s *TypeDropStatement) BuildCollect(qb dialect.QueryBuilder, _ writer.Collector) (string, error) {
	return s.render(qb)
}

// ToString renders s. Identical to Build's SQL.
func (s *TypeDropStatement) ToString(qb dialect.QueryBuilder) (string, error) {
	return s.render(qb)
}

func (s *TypeDropStatement) render(qb dialect.QueryBuilder) (string, error) {
	if !qb.SupportsEnumType() {
		return "", dialect.ErrUnsupportedOnDialect
	}
	if len(s.names) == 0 {
		return "", ErrTypeDropEmpty
	}
	w := writer.New()
	w.Token("DROP TYPE")
	if s.ifExists {
		w.Token("IF EXISTS")
	}
	parts := make([]string, len(s.names))
	for i, n := range s.names {
		parts[i] = quotedIdent(qb, n)
	}
	w.Token(strings.Join(parts, ", "))
	if s.cascade {
		w.Token("CASCADE")
	} else if s.restrict {
		w.Token("RESTRICT")
	}
	return w.String(), nil
}

func enumValueList(qb dialect.QueryBuilder, vs []string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = dialect.Escape(qb, value.String(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
