package token

import (
	"clremap/internal/source"
)

// Token represents a single lexical unit with its location.
// Text holds the decoded content: for quoted runs the surrounding quotes
// are already stripped, for newline tokens it is the single CR or LF byte.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsEOF reports whether the token marks the end of the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IsNewline reports whether the token is a verbatim line break byte.
func (t Token) IsNewline() bool { return t.Kind == Newline }
