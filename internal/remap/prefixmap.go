package remap

import (
	"sort"
	"strings"

	"clremap/internal/diag"
)

// PrefixRule substitutes one path prefix for another.
type PrefixRule struct {
	From string
	To   string
}

// PrefixMap translates by longest-prefix substitution over a fixed rule
// table. It needs no external process, which makes it the translator of
// choice for deterministic setups and for tests.
type PrefixMap struct {
	rules []PrefixRule
}

// NewPrefixMap validates the rules and orders them longest-From first, so
// the most specific rule always wins.
func NewPrefixMap(rules []PrefixRule) (*PrefixMap, error) {
	if len(rules) == 0 {
		return nil, diag.Errorf(diag.ConfigBadValue,
			"prefix-map translator requires at least one [[prefix]] rule")
	}
	ordered := make([]PrefixRule, len(rules))
	copy(ordered, rules)
	for _, r := range ordered {
		if r.From == "" {
			return nil, diag.Errorf(diag.ConfigBadValue,
				"prefix rule with empty `from`")
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].From) > len(ordered[j].From)
	})
	return &PrefixMap{rules: ordered}, nil
}

func (m *PrefixMap) Translate(path string) (string, error) {
	for _, r := range m.rules {
		if !strings.HasPrefix(path, r.From) {
			continue
		}
		rest := path[len(r.From):]
		// only substitute on a segment boundary
		if rest != "" && rest[0] != '/' && !strings.HasSuffix(r.From, "/") {
			continue
		}
		return r.To + rest, nil
	}
	return "", diag.Errorf(diag.RemapTranslationFailed,
		"failed to remap path `%s`: no prefix rule matches", path)
}
