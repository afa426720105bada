// Package config carries the run configuration: constructed once at
// startup from flags and an optional clremap.toml, read-only afterwards.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"clremap/internal/diag"
	"clremap/internal/lexer"
	"clremap/internal/remap"
)

// Translator backends selectable in [remap].translator.
const (
	TranslatorExec      = "exec"
	TranslatorPrefixMap = "prefix-map"
)

type Config struct {
	Quiet bool
	Debug bool

	Translator  string
	Command     []string
	Codepage    string
	MaxTokenLen int

	CacheEnabled bool
	CacheDir     string

	Prefixes []remap.PrefixRule
}

// Default returns the configuration the tool runs with when no file and
// no flags override it: the wine path translator, windows-1252 output,
// and the native tool's token limit.
func Default() Config {
	return Config{
		Translator:  TranslatorExec,
		Command:     []string{"winepath", "-w"},
		Codepage:    "windows-1252",
		MaxTokenLen: lexer.DefaultMaxTokenLen,
	}
}

type fileConfig struct {
	Remap struct {
		Translator string   `toml:"translator"`
		Command    []string `toml:"command"`
		Codepage   string   `toml:"codepage"`
		MaxToken   int      `toml:"max-token"`
		Cache      struct {
			Enabled bool   `toml:"enabled"`
			Dir     string `toml:"dir"`
		} `toml:"cache"`
	} `toml:"remap"`
	Prefix []struct {
		From string `toml:"from"`
		To   string `toml:"to"`
	} `toml:"prefix"`
}

// Load reads a clremap.toml and layers it over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return cfg, diag.Wrap(diag.ConfigParseFailed, err,
			"%s: failed to parse TOML", path)
	}
	if err := cfg.apply(&fc, meta); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) apply(fc *fileConfig, meta toml.MetaData) error {
	if fc.Remap.Translator != "" {
		c.Translator = fc.Remap.Translator
	}
	if len(fc.Remap.Command) > 0 {
		c.Command = fc.Remap.Command
	}
	if fc.Remap.Codepage != "" {
		c.Codepage = fc.Remap.Codepage
	}
	if fc.Remap.MaxToken > 0 {
		c.MaxTokenLen = fc.Remap.MaxToken
	}
	if meta.IsDefined("remap", "cache") {
		c.CacheEnabled = fc.Remap.Cache.Enabled
		c.CacheDir = fc.Remap.Cache.Dir
	}
	for _, p := range fc.Prefix {
		c.Prefixes = append(c.Prefixes, remap.PrefixRule{From: p.From, To: p.To})
	}
	return c.Validate()
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	switch c.Translator {
	case TranslatorExec, TranslatorPrefixMap:
	default:
		return diag.Errorf(diag.ConfigBadValue,
			"unknown translator %q (want %s or %s)",
			c.Translator, TranslatorExec, TranslatorPrefixMap)
	}
	if c.Translator == TranslatorExec && len(c.Command) == 0 {
		return diag.Errorf(diag.ConfigBadValue, "exec translator requires a command")
	}
	if c.MaxTokenLen <= 1 {
		return diag.Errorf(diag.ConfigBadValue,
			"max-token must be greater than 1, got %d", c.MaxTokenLen)
	}
	return nil
}

// CacheIdentity derives the disk-cache key parts from the translator
// settings, so a changed command or rule table never reuses stale entries.
func (c *Config) CacheIdentity() []string {
	parts := append([]string{c.Translator}, c.Command...)
	for _, p := range c.Prefixes {
		parts = append(parts, fmt.Sprintf("%s=%s", p.From, p.To))
	}
	return parts
}
