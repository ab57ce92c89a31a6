package ref

import (
	"testing"

	"github.com/shipq/sqlkit/db/portsql/iden"
)

func TestColumnRefQualified(t *testing.T) {
	unqualified := Column(iden.New("id"))
	if unqualified.Qualified() {
		t.Error("Column() should be unqualified")
	}

	qualified := TableColumn(iden.New("font"), iden.New("id"))
	if !qualified.Qualified() {
		t.Error("TableColumn() should be qualified")
	}
}

func TestTableRefAlias(t *testing.T) {
	aliased, err := Table(iden.New("font")).Alias(iden.New("f"))
	if err != nil {
		t.Fatalf("Alias: %v", err)
	}
	kind, _, table, alias, _ := aliased.Parts()
	if kind != KindTableAlias {
		t.Errorf("kind = %v, want KindTableAlias", kind)
	}
	if iden.Text(table) != "font" || iden.Text(alias) != "f" {
		t.Errorf("table=%q alias=%q, want font/f", iden.Text(table), iden.Text(alias))
	}
}

func TestTableRefAliasOnSchemaTable(t *testing.T) {
	aliased, err := SchemaTable(iden.New("public"), iden.New("font")).Alias(iden.New("f"))
	if err != nil {
		t.Fatalf("Alias: %v", err)
	}
	kind, schema, table, alias, _ := aliased.Parts()
	if kind != KindSchemaTableAlias {
		t.Errorf("kind = %v, want KindSchemaTableAlias", kind)
	}
	if iden.Text(schema) != "public" || iden.Text(table) != "font" || iden.Text(alias) != "f" {
		t.Errorf("got schema=%q table=%q alias=%q", iden.Text(schema), iden.Text(table), iden.Text(alias))
	}
}

func TestTableRefAliasTwiceFails(t *testing.T) {
	once, err := Table(iden.New("font")).Alias(iden.New("f"))
	if err != nil {
		t.Fatalf("Alias: %v", err)
	}
	if _, err := once.Alias(iden.New("g")); err != ErrUnexpectedTableRefAlias {
		t.Errorf("got err = %v, want ErrUnexpectedTableRefAlias", err)
	}
}

func TestTableRefAliasOnSubQueryFails(t *testing.T) {
	sub := SubQuery("SELECT 1", iden.New("s"))
	if _, err := sub.Alias(iden.New("t")); err != ErrUnexpectedTableRefAlias {
		t.Errorf("got err = %v, want ErrUnexpectedTableRefAlias", err)
	}
}
