package lexer

import (
	"clremap/internal/source"
	"clremap/internal/token"
)

// Lexer splits a command file or header source into tokens following the
// rules of cl's command-file syntax: space and tab separate tokens, CR and
// LF are tokens of their own so line structure survives, and double quotes
// group a run that may contain spaces.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewAt creates a lexer resuming from a previously returned offset.
func NewAt(file *source.File, off uint32, opts Options) *Lexer {
	lx := New(file, opts)
	lx.cursor.Off = off
	return lx
}

// Next returns the next token. After the end of input it always returns
// an EOF token. The only error condition is a token whose decoded length
// reaches the configured limit; that is fatal to the whole run.
func (lx *Lexer) Next() (token.Token, error) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	b := lx.cursor.Peek()
	if b == '\r' || b == '\n' {
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return token.Token{
			Kind: token.Newline,
			Span: lx.cursor.SpanFrom(start),
			Text: string(b),
		}, nil
	}

	if b == '"' {
		return lx.scanQuoted()
	}
	return lx.scanBare()
}

// Offset returns the current cursor position; lexing can be resumed from
// it with NewAt.
func (lx *Lexer) Offset() uint32 {
	return lx.cursor.Off
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
