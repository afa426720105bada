package remap

import (
	"os/exec"
	"strings"

	"clremap/internal/diag"
)

// ExecTranslator shells out to an external translation command, one
// invocation per path. The default command is `winepath -w`, which asks
// the wine layer for the DOS spelling of a unix path.
type ExecTranslator struct {
	path string
	args []string
}

// NewExec resolves the translation command at startup. A command that
// cannot be bound makes every later translation impossible, so failure
// here carries RemapCapabilityUnavailable.
func NewExec(argv []string) (*ExecTranslator, error) {
	if len(argv) == 0 {
		return nil, diag.Errorf(diag.RemapCapabilityUnavailable,
			"no translation command configured")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, diag.Wrap(diag.RemapCapabilityUnavailable, err,
			"cannot bind translation command %q", argv[0])
	}
	return &ExecTranslator{path: path, args: argv[1:]}, nil
}

func (t *ExecTranslator) Translate(path string) (string, error) {
	args := make([]string, 0, len(t.args)+1)
	args = append(args, t.args...)
	args = append(args, path)
	out, err := exec.Command(t.path, args...).Output()
	if err != nil {
		return "", diag.Wrap(diag.RemapTranslationFailed, err,
			"failed to remap path `%s`", path)
	}
	translated := strings.TrimRight(string(out), "\r\n")
	if translated == "" {
		return "", diag.Errorf(diag.RemapTranslationFailed,
			"failed to remap path `%s`: empty translation", path)
	}
	return translated, nil
}
