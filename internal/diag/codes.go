package diag

import (
	"fmt"
)

type Code uint16

const (
	// Generic failure, also the fallback for uncoded errors.
	UnknownCode Code = 0

	// Lexical
	LexTokenOverflow Code = 1001

	// Remap
	RemapCapabilityUnavailable Code = 2001
	RemapTranslationFailed     Code = 2002
	RemapIncludeCycle          Code = 2003

	// I/O
	FileOpenFailed  Code = 3001
	FileWriteFailed Code = 3002

	// Config
	ConfigParseFailed Code = 4001
	ConfigBadValue    Code = 4002
)

// ID returns the stable printable identifier for the code.
func (c Code) ID() string {
	return fmt.Sprintf("CLR%04d", uint16(c))
}

// ExitCode maps the code onto the process exit contract:
// 0 success, 1 generic failure, 2 translation capability unavailable,
// 3 file open/write failure, 4 translation failure for a specific path.
func (c Code) ExitCode() int {
	switch c {
	case RemapCapabilityUnavailable:
		return 2
	case FileOpenFailed, FileWriteFailed:
		return 3
	case RemapTranslationFailed:
		return 4
	default:
		return 1
	}
}
