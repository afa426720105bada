package lexer

import (
	"testing"

	"clremap/internal/source"
)

func testFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("cursor.rsp", []byte(content)))
}

func TestCursorPeekBump(t *testing.T) {
	c := NewCursor(testFile("ab"))
	if c.Peek() != 'a' {
		t.Fatalf("Peek = %q, want a", c.Peek())
	}
	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Fatal("Bump did not return bytes in order")
	}
	if !c.EOF() {
		t.Error("expected EOF after consuming all bytes")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Error("Peek/Bump at EOF must return 0")
	}
}

func TestCursorEat(t *testing.T) {
	c := NewCursor(testFile(`"x`))
	if !c.Eat('"') {
		t.Error("Eat should consume a matching byte")
	}
	if c.Eat('"') {
		t.Error("Eat must not consume a non-matching byte")
	}
	if c.Off != 1 {
		t.Errorf("Off = %d, want 1", c.Off)
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := NewCursor(testFile("hello"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("span = %v, want 0..2", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Off after Reset = %d, want 0", c.Off)
	}
}

func TestCursorEmptyFile(t *testing.T) {
	c := NewCursor(testFile(""))
	if !c.EOF() {
		t.Error("empty file must start at EOF")
	}
}
