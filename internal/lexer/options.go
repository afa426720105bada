package lexer

// DefaultMaxTokenLen matches the fixed token buffer of the native tool
// this lexer replaces: a decoded token of this length or longer is an
// input-size error, never a silent truncation.
const DefaultMaxTokenLen = 1024

type Options struct {
	// MaxTokenLen is the exclusive upper bound on decoded token length.
	// Zero selects DefaultMaxTokenLen.
	MaxTokenLen int
}

func (o Options) maxTokenLen() int {
	if o.MaxTokenLen <= 0 {
		return DefaultMaxTokenLen
	}
	return o.MaxTokenLen
}
