package diag

import (
	"errors"
	"fmt"
)

// Error is a coded failure. Every abort path of the remapper carries one,
// so the CLI can recover the exit code with errors.As without inspecting
// message text.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf constructs a coded error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the diagnostic code from an error chain.
// Uncoded errors map to UnknownCode.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return UnknownCode
}

// ExitCode converts an error chain into the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return CodeOf(err).ExitCode()
}
