package rewrite

// Mode selects the reserialization rules for one file pass. It is fixed
// for the duration of the pass; a nested forced-include pass always runs
// under PrecompiledHeader regardless of the caller's mode.
type Mode uint8

const (
	// CommandFile treats the input as a cl command file: every token is
	// re-emitted quoted, and path-shaped tokens are remapped first.
	CommandFile Mode = iota
	// PrecompiledHeader treats the input as a header source: only the
	// target of an `#include` directive is remapped.
	PrecompiledHeader
)

func (m Mode) String() string {
	switch m {
	case CommandFile:
		return "cmd"
	case PrecompiledHeader:
		return "pch"
	}
	return "unknown"
}
