// Package rewrite reserializes tokenized command files and header sources
// with their embedded paths translated into the host namespace.
package rewrite

import (
	"bytes"
	"io"

	"clremap/internal/classify"
	"clremap/internal/diag"
	"clremap/internal/lexer"
	"clremap/internal/remap"
	"clremap/internal/source"
	"clremap/internal/token"
)

// Options configure a Rewriter. They are constructed once at startup and
// read-only afterwards.
type Options struct {
	Translator  remap.Translator
	Encoder     *remap.Encoder
	MaxTokenLen int
	Debug       bool
	DebugW      io.Writer
}

// Rewriter drives one file pass: tokenize, classify, remap, re-emit.
type Rewriter struct {
	opts Options
}

func New(opts Options) *Rewriter {
	return &Rewriter{opts: opts}
}

// Job is a pending file pass produced by a forced-include token.
type Job struct {
	Path string
	Mode Mode
}

// ProcessFile rewrites one file's token stream into out and returns the
// nested passes that forced includes demand. Nothing is written to disk
// here: the pipeline persists out only after the whole stream succeeded.
func (r *Rewriter) ProcessFile(file *source.File, mode Mode, out *bytes.Buffer) ([]Job, error) {
	lx := lexer.New(file, lexer.Options{MaxTokenLen: r.opts.MaxTokenLen})

	var jobs []Job
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.IsEOF() {
			break
		}
		if tok.IsNewline() {
			// preserve the input's line structure byte-for-byte
			out.WriteString(tok.Text)
			continue
		}

		switch mode {
		case CommandFile:
			job, err := r.emitCommandToken(tok, out)
			if err != nil {
				return nil, err
			}
			if job != nil {
				jobs = append(jobs, *job)
			}
		case PrecompiledHeader:
			if err := r.emitHeaderToken(tok, lx, out); err != nil {
				return nil, err
			}
		}
	}
	return jobs, nil
}

// emitCommandToken handles one command-file token: remap the embedded
// path if any pattern class matches, then emit the whole token quoted
// with a trailing space. Quoting is mandatory even for tokens that were
// never quoted in the input, because a translated path may contain spaces.
func (r *Rewriter) emitCommandToken(tok token.Token, out *bytes.Buffer) (*Job, error) {
	text := tok.Text
	m := classify.Classify(text)

	var job *Job
	if m.Class != classify.None {
		translated, err := r.opts.Translator.Translate(text[m.Offset:])
		if err != nil {
			return nil, err
		}
		if m.ForcedInclude {
			// the nested pass reads the file at its host-namespace path
			job = &Job{Path: translated, Mode: PrecompiledHeader}
		}
		text = text[:m.Offset] + r.opts.Encoder.EncodeLossy(translated)
	}

	out.WriteByte('"')
	out.WriteString(text)
	out.WriteString(`" `)
	r.debugf(tok.Text, text)
	return job, nil
}

// emitHeaderToken handles one precompiled-header token. An `#include`
// directive consumes the following token unconditionally as its target
// and remaps it without re-classification; everything else is echoed.
func (r *Rewriter) emitHeaderToken(tok token.Token, lx *lexer.Lexer, out *bytes.Buffer) error {
	if tok.Text != "#include" {
		out.WriteString(tok.Text)
		out.WriteByte(' ')
		r.debugf(tok.Text, tok.Text)
		return nil
	}

	out.WriteString(tok.Text)
	target, err := lx.Next()
	if err != nil {
		return err
	}
	if target.IsEOF() {
		// `#include` as the very last token names nothing to remap
		return nil
	}
	translated, err := r.opts.Translator.Translate(target.Text)
	if err != nil {
		return err
	}
	encoded := r.opts.Encoder.EncodeLossy(translated)
	out.WriteString(` "`)
	out.WriteString(encoded)
	out.WriteByte('"')
	r.debugf(target.Text, encoded)
	return nil
}

func (r *Rewriter) debugf(in, outText string) {
	if !r.opts.Debug || r.opts.DebugW == nil {
		return
	}
	diag.Fdebugf(r.opts.DebugW, "token `%s` -> `%s`", in, outText)
}
