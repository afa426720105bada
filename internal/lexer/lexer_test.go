package lexer_test

import (
	"strings"
	"testing"

	"clremap/internal/diag"
	"clremap/internal/lexer"
	"clremap/internal/source"
	"clremap/internal/token"
)

// makeTestLexer builds a lexer over an in-memory file.
func makeTestLexer(t *testing.T, input string, opts lexer.Options) *lexer.Lexer {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rsp", []byte(input))
	return lexer.New(fs.Get(id), opts)
}

// collectAll drains the lexer, failing the test on any lex error.
func collectAll(t *testing.T, lx *lexer.Lexer) []token.Token {
	t.Helper()
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		if tok.IsEOF() {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func texts(tokens []token.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}

func TestBareTokens(t *testing.T) {
	lx := makeTestLexer(t, "-I/usr/include \t foo.c  /Fo/out", lexer.Options{})
	got := texts(collectAll(t, lx))
	want := []string{"-I/usr/include", "foo.c", "/Fo/out"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("tokens = %q, want %q", got, want)
	}
}

func TestWhitespaceOnlyYieldsEOF(t *testing.T) {
	lx := makeTestLexer(t, "   \t  ", lexer.Options{})
	if got := collectAll(t, lx); len(got) != 0 {
		t.Errorf("expected no tokens, got %q", texts(got))
	}
}

func TestNewlinesArePreservedVerbatim(t *testing.T) {
	lx := makeTestLexer(t, "a\r\nb\n", lexer.Options{})
	got := collectAll(t, lx)
	wantKinds := []token.Kind{token.Text, token.Newline, token.Newline, token.Text, token.Newline}
	wantTexts := []string{"a", "\r", "\n", "b", "\n"}
	if len(got) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %q", len(got), len(wantKinds), texts(got))
	}
	for i, tok := range got {
		if tok.Kind != wantKinds[i] || tok.Text != wantTexts[i] {
			t.Errorf("token %d = (%v, %q), want (%v, %q)", i, tok.Kind, tok.Text, wantKinds[i], wantTexts[i])
		}
	}
}

func TestQuotedTokenCarriesSpaces(t *testing.T) {
	lx := makeTestLexer(t, `"a b c" d`, lexer.Options{})
	got := texts(collectAll(t, lx))
	if len(got) != 2 || got[0] != "a b c" || got[1] != "d" {
		t.Errorf("tokens = %q, want [\"a b c\" \"d\"]", got)
	}
}

func TestUnterminatedQuoteConsumesToEOF(t *testing.T) {
	lx := makeTestLexer(t, `"abc def`, lexer.Options{})
	got := texts(collectAll(t, lx))
	if len(got) != 1 || got[0] != "abc def" {
		t.Errorf("tokens = %q, want [\"abc def\"]", got)
	}
}

func TestEmptyQuotedToken(t *testing.T) {
	lx := makeTestLexer(t, `""`, lexer.Options{})
	got := collectAll(t, lx)
	if len(got) != 1 || got[0].Kind != token.Text || got[0].Text != "" {
		t.Errorf("tokens = %+v, want one empty Text token", got)
	}
}

func TestTokenOverflowIsFatal(t *testing.T) {
	lx := makeTestLexer(t, "abcdefgh", lexer.Options{MaxTokenLen: 8})
	_, err := lx.Next()
	if err == nil {
		t.Fatal("expected overflow error, got none")
	}
	if code := diag.CodeOf(err); code != diag.LexTokenOverflow {
		t.Errorf("error code = %v, want LexTokenOverflow", code)
	}
}

func TestTokenBelowLimitIsFine(t *testing.T) {
	lx := makeTestLexer(t, "abcdefg", lexer.Options{MaxTokenLen: 8})
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Text != "abcdefg" {
		t.Errorf("token = %q, want abcdefg", tok.Text)
	}
}

// Re-joining bare tokens with single spaces, preserving newline tokens,
// must reproduce the input modulo whitespace collapsing.
func TestRoundTrip(t *testing.T) {
	input := "one  two\tthree\nfour five\r\nsix"
	lx := makeTestLexer(t, input, lexer.Options{})

	var sb strings.Builder
	needSep := false
	for _, tok := range collectAll(t, lx) {
		if tok.IsNewline() {
			sb.WriteString(tok.Text)
			needSep = false
			continue
		}
		if needSep {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
		needSep = true
	}

	want := "one two three\nfour five\r\nsix"
	if sb.String() != want {
		t.Errorf("round trip = %q, want %q", sb.String(), want)
	}
}

func TestResumeFromOffset(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rsp", []byte("first second"))
	file := fs.Get(id)

	lx := lexer.New(file, lexer.Options{})
	first, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text != "first" {
		t.Fatalf("token = %q, want first", first.Text)
	}

	resumed := lexer.NewAt(file, lx.Offset(), lexer.Options{})
	second, err := resumed.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Text != "second" {
		t.Errorf("resumed token = %q, want second", second.Text)
	}
}
