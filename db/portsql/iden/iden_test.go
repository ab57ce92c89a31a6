package iden

import "testing"

func TestNewAndUnquoted(t *testing.T) {
	got := New("character").Unquoted()
	if got != "character" {
		t.Errorf("got %q, want %q", got, "character")
	}
}

func TestTextNilIsEmpty(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestTextDelegates(t *testing.T) {
	if got := Text(New("font_id")); got != "font_id" {
		t.Errorf("got %q, want %q", got, "font_id")
	}
}
