// Package driver wires the configured translation capability to the
// rewrite pipeline and runs it over the files named on the command line.
package driver

import (
	"io"

	"clremap/internal/config"
	"clremap/internal/remap"
	"clremap/internal/rewrite"
	"clremap/internal/source"
)

// Result reports what one invocation wrote.
type Result struct {
	// Written lists destination paths in completion order, nested
	// forced-include passes included.
	Written []string
}

// Remap processes each file sequentially under the given mode. The first
// failure aborts the whole run; files already written stay written, the
// failing file is never persisted.
func Remap(paths []string, mode rewrite.Mode, cfg config.Config, debugW io.Writer) (*Result, error) {
	translator, err := buildTranslator(cfg)
	if err != nil {
		return nil, err
	}
	enc, err := remap.NewEncoder(cfg.Codepage)
	if err != nil {
		return nil, err
	}
	rw := rewrite.New(rewrite.Options{
		Translator:  translator,
		Encoder:     enc,
		MaxTokenLen: cfg.MaxTokenLen,
		Debug:       cfg.Debug,
		DebugW:      debugW,
	})

	res := &Result{}
	for _, path := range paths {
		// each top-level file gets its own file set and visited state
		pipeline := rewrite.NewPipeline(source.NewFileSet(), rw, cfg.Debug)
		written, runErr := pipeline.Run(path, mode)
		res.Written = append(res.Written, written...)
		if runErr != nil {
			return res, runErr
		}
	}

	// persisting the memo is an optimization; its failure never turns a
	// successful run into a failed one
	_ = translator.Flush()
	return res, nil
}

func buildTranslator(cfg config.Config) (*remap.Cache, error) {
	var inner remap.Translator
	var err error
	switch cfg.Translator {
	case config.TranslatorPrefixMap:
		inner, err = remap.NewPrefixMap(cfg.Prefixes)
	default:
		inner, err = remap.NewExec(cfg.Command)
	}
	if err != nil {
		return nil, err
	}

	var disk *remap.DiskCache
	if cfg.CacheEnabled {
		// a broken cache dir degrades to the in-memory memo
		if d, err := remap.OpenDiskCache("clremap", cfg.CacheDir); err == nil {
			disk = d
		}
	}
	return remap.NewCache(inner, disk, remap.CacheKey(cfg.CacheIdentity()...)), nil
}
