package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errLabel   = color.New(color.FgRed, color.Bold)
	debugLabel = color.New(color.FgCyan)
)

// Fprint writes a one-line error report in the tool's stderr format.
// Color is controlled process-wide via color.NoColor.
func Fprint(w io.Writer, err error) {
	code := CodeOf(err)
	fmt.Fprintf(w, "%s %s %v\n", errLabel.Sprint("clremap:"), code.ID(), err)
}

// Fdebugf writes a debug trace line with the debug label.
func Fdebugf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", debugLabel.Sprint("debug:"), fmt.Sprintf(format, args...))
}
