package remap_test

import (
	"testing"

	"clremap/internal/diag"
	"clremap/internal/remap"
)

func mustPrefixMap(t *testing.T, rules []remap.PrefixRule) *remap.PrefixMap {
	t.Helper()
	m, err := remap.NewPrefixMap(rules)
	if err != nil {
		t.Fatalf("NewPrefixMap: %v", err)
	}
	return m
}

func TestPrefixMapLongestWins(t *testing.T) {
	m := mustPrefixMap(t, []remap.PrefixRule{
		{From: "/usr", To: "Z:/usr"},
		{From: "/usr/include", To: "Y:/include"},
	})
	got, err := m.Translate("/usr/include/stdio.h")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Y:/include/stdio.h" {
		t.Errorf("Translate = %q, want Y:/include/stdio.h", got)
	}
}

func TestPrefixMapExactMatch(t *testing.T) {
	m := mustPrefixMap(t, []remap.PrefixRule{{From: "/usr", To: "Z:/usr"}})
	got, err := m.Translate("/usr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Z:/usr" {
		t.Errorf("Translate = %q, want Z:/usr", got)
	}
}

func TestPrefixMapSegmentBoundary(t *testing.T) {
	m := mustPrefixMap(t, []remap.PrefixRule{{From: "/usr", To: "Z:/usr"}})
	if _, err := m.Translate("/usrlocal/lib"); err == nil {
		t.Error("expected /usrlocal to miss the /usr rule")
	}
}

func TestPrefixMapNoMatchIsTranslationFailure(t *testing.T) {
	m := mustPrefixMap(t, []remap.PrefixRule{{From: "/usr", To: "Z:/usr"}})
	_, err := m.Translate("/opt/thing")
	if err == nil {
		t.Fatal("expected error for unmatched path")
	}
	if code := diag.CodeOf(err); code != diag.RemapTranslationFailed {
		t.Errorf("error code = %v, want RemapTranslationFailed", code)
	}
}

func TestPrefixMapRejectsEmptyRules(t *testing.T) {
	if _, err := remap.NewPrefixMap(nil); err == nil {
		t.Error("expected error for empty rule table")
	}
	_, err := remap.NewPrefixMap([]remap.PrefixRule{{From: "", To: "Z:"}})
	if err == nil {
		t.Error("expected error for empty from")
	}
	if code := diag.CodeOf(err); code != diag.ConfigBadValue {
		t.Errorf("error code = %v, want ConfigBadValue", code)
	}
}
