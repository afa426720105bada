// Package classify decides whether a token embeds an absolute path and
// where inside the token that path starts.
//
// The four pattern classes mirror the option shapes cl writes into command
// files. They are checked as an ordered list of predicates, first match
// wins: the option-prefixed shapes are more specific than the bare
// absolute-path shape and must win against it, otherwise a token like
// `-I/usr/include` would be remapped from offset 0 and the option letter
// would be swallowed into the path.
package classify

// Class names the pattern a token matched.
type Class uint8

const (
	None Class = iota
	// SinglePrefix is `[-/]<letter>/<path>`, e.g. -I/usr/include.
	SinglePrefix
	// DoublePrefix is `[-/]<letter><letter>/<path>`, e.g. -Fo/build/out.
	DoublePrefix
	// ColonPrefix is `[-/]<3+ letters>:/<path>`, e.g. -MANIFESTINPUT:/x/y.
	ColonPrefix
	// BarePath is an absolute path with no option prefix, e.g. /usr/lib/a.
	BarePath
)

func (c Class) String() string {
	switch c {
	case None:
		return "None"
	case SinglePrefix:
		return "SinglePrefix"
	case DoublePrefix:
		return "DoublePrefix"
	case ColonPrefix:
		return "ColonPrefix"
	case BarePath:
		return "BarePath"
	}
	return "Unknown"
}

// Match is the classification result. Offset is the index of the first
// byte of the embedded path; it is meaningful only when Class is not None.
// ForcedInclude marks /FI and /Fi tokens, whose referenced file needs a
// nested remap pass of its own.
type Match struct {
	Class         Class
	Offset        int
	ForcedInclude bool
}

func isOptionLead(b byte) bool {
	return b == '-' || b == '/'
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Classify evaluates the pattern classes in fixed precedence order:
// SinglePrefix, DoublePrefix, ColonPrefix, BarePath. Later classes are not
// considered once one matches, even if they would also match.
func Classify(text string) Match {
	if m, ok := singlePrefix(text); ok {
		return m
	}
	if m, ok := doublePrefix(text); ok {
		return m
	}
	if m, ok := colonPrefix(text); ok {
		return m
	}
	if m, ok := barePath(text); ok {
		return m
	}
	return Match{Class: None}
}

func singlePrefix(text string) (Match, bool) {
	if len(text) < 3 || !isOptionLead(text[0]) || !isLetter(text[1]) || text[2] != '/' {
		return Match{}, false
	}
	return Match{Class: SinglePrefix, Offset: 2}, true
}

func doublePrefix(text string) (Match, bool) {
	if len(text) < 4 || !isOptionLead(text[0]) || !isLetter(text[1]) || !isLetter(text[2]) || text[3] != '/' {
		return Match{}, false
	}
	forced := text[1] == 'F' && (text[2] == 'I' || text[2] == 'i')
	return Match{Class: DoublePrefix, Offset: 3, ForcedInclude: forced}, true
}

func colonPrefix(text string) (Match, bool) {
	if len(text) < 6 || !isOptionLead(text[0]) {
		return Match{}, false
	}
	i := 1
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	// at least three option letters, then ':' followed by '/'
	if i-1 < 3 || i+1 >= len(text) || text[i] != ':' || text[i+1] != '/' {
		return Match{}, false
	}
	return Match{Class: ColonPrefix, Offset: i + 1}, true
}

func barePath(text string) (Match, bool) {
	// `/<segment>/<segment>`: a slash-led token with a second slash that
	// has at least one byte on each side.
	if len(text) < 4 || text[0] != '/' {
		return Match{}, false
	}
	for i := 2; i < len(text)-1; i++ {
		if text[i] == '/' {
			return Match{Class: BarePath, Offset: 0}, true
		}
	}
	return Match{}, false
}
