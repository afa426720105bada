package rewrite

import (
	"bytes"
	"os"

	"clremap/internal/diag"
	"clremap/internal/source"
)

// DebugSuffix is appended to destination paths in debug mode, so the
// originals stay untouched while the rewritten output can be inspected.
const DebugSuffix = ".out"

// Pipeline runs file passes to exhaustion. Forced includes do not recurse
// on the call stack: they enqueue a (path, mode) job that is drained after
// the current file completes, which keeps the depth bounded and makes
// cycles detectable.
type Pipeline struct {
	fs      *source.FileSet
	rw      *Rewriter
	debug   bool
	visited map[string]bool
}

func NewPipeline(fs *source.FileSet, rw *Rewriter, debug bool) *Pipeline {
	return &Pipeline{
		fs:      fs,
		rw:      rw,
		debug:   debug,
		visited: make(map[string]bool),
	}
}

// Run rewrites the file at path under the given mode, plus every file a
// forced include drags in. It returns the destination paths written.
// Output for a file is persisted only after its entire token stream has
// been processed; a failure anywhere aborts with nothing further written.
func (p *Pipeline) Run(path string, mode Mode) ([]string, error) {
	queue := []Job{{Path: path, Mode: mode}}
	var written []string

	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		if p.visited[job.Path] {
			return written, diag.Errorf(diag.RemapIncludeCycle,
				"forced-include cycle: `%s` reached twice in one run", job.Path)
		}
		p.visited[job.Path] = true

		id, err := p.fs.Load(job.Path)
		if err != nil {
			return written, diag.Wrap(diag.FileOpenFailed, err,
				"failed to remap response file `%s`", job.Path)
		}
		file := p.fs.Get(id)

		var out bytes.Buffer
		jobs, err := p.rw.ProcessFile(file, job.Mode, &out)
		if err != nil {
			return written, err
		}
		queue = append(queue, jobs...)

		dest := job.Path
		if p.debug {
			dest += DebugSuffix
		}
		if err := os.WriteFile(dest, out.Bytes(), 0o644); err != nil {
			return written, diag.Wrap(diag.FileWriteFailed, err,
				"failed to write remapped file `%s`", dest)
		}
		written = append(written, dest)
	}
	return written, nil
}
