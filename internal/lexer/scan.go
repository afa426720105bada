package lexer

import (
	"clremap/internal/diag"
	"clremap/internal/source"
	"clremap/internal/token"
)

// scanQuoted consumes a double-quoted run. The quote bytes are not part of
// the token text, which is how quoted tokens carry embedded spaces. A
// missing closing quote consumes to end of input without error; that is
// what the native parser does too.
func (lx *Lexer) scanQuoted() (token.Token, error) {
	lx.cursor.Bump() // opening '"'
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '"' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.cursor.Eat('"')
	return lx.emit(sp)
}

// scanBare consumes a run up to the next space, tab, CR, LF or end of input.
func (lx *Lexer) scanBare() (token.Token, error) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(lx.cursor.SpanFrom(start))
}

func (lx *Lexer) emit(sp source.Span) (token.Token, error) {
	if int(sp.Len()) >= lx.opts.maxTokenLen() {
		return token.Token{}, diag.Errorf(diag.LexTokenOverflow,
			"%s: token of %d bytes at offset %d exceeds the %d byte limit",
			lx.file.Path, sp.Len(), sp.Start, lx.opts.maxTokenLen())
	}
	return token.Token{
		Kind: token.Text,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}, nil
}
