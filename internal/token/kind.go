package token

// Kind classifies a lexical unit of a command file or header source.
type Kind uint8

const (
	// EOF marks the end of the token stream.
	EOF Kind = iota
	// Newline is a single verbatim '\r' or '\n' byte.
	Newline
	// Text is a bare or quoted run of printable characters.
	Text
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Newline:
		return "Newline"
	case Text:
		return "Text"
	}
	return "Unknown"
}
