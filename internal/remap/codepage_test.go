package remap_test

import (
	"testing"

	"clremap/internal/diag"
	"clremap/internal/remap"
)

func TestEncoderASCIIPassthrough(t *testing.T) {
	enc, err := remap.NewEncoder("windows-1252")
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	in := `Z:\build\out dir\foo.obj`
	if got := enc.EncodeLossy(in); got != in {
		t.Errorf("EncodeLossy(%q) = %q, want unchanged", in, got)
	}
}

func TestEncoderNarrowsSupportedRunes(t *testing.T) {
	enc, err := remap.NewEncoder("windows-1252")
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	got := enc.EncodeLossy("n\u00e9") // é exists in windows-1252
	if got != "n\xe9" {
		t.Errorf("EncodeLossy = %x, want 6ee9", got)
	}
}

func TestEncoderReplacesUnsupportedRunes(t *testing.T) {
	enc, err := remap.NewEncoder("windows-1252")
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	got := enc.EncodeLossy("a\u2192b") // rightwards arrow has no 1252 byte
	if len(got) != 3 || got[0] != 'a' || got[2] != 'b' {
		t.Fatalf("EncodeLossy = %x, want a, replacement byte, b", got)
	}
	if got[1] == 0xe2 {
		t.Error("unsupported rune leaked through as raw UTF-8")
	}
}

func TestEncoderEmptyNameIsIdentity(t *testing.T) {
	enc, err := remap.NewEncoder("")
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	in := "a\u2192b"
	if got := enc.EncodeLossy(in); got != in {
		t.Errorf("identity encoder changed %q to %q", in, got)
	}
}

func TestEncoderUnknownCodepage(t *testing.T) {
	_, err := remap.NewEncoder("definitely-not-a-codepage")
	if err == nil {
		t.Fatal("expected error for unknown codepage")
	}
	if code := diag.CodeOf(err); code != diag.ConfigBadValue {
		t.Errorf("error code = %v, want ConfigBadValue", code)
	}
}
