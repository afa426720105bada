package remap

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"clremap/internal/diag"
)

// Encoder re-encodes translated paths into the narrow codepage the native
// compiler reads its command files in. Runes the codepage cannot express
// degrade to its replacement byte; that is never fatal.
type Encoder struct {
	enc *encoding.Encoder
}

// NewEncoder resolves a codepage by IANA name (e.g. "windows-1252").
// An empty name disables re-encoding.
func NewEncoder(name string) (*Encoder, error) {
	if name == "" {
		return &Encoder{}, nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil || e == nil {
		return nil, diag.Errorf(diag.ConfigBadValue, "unknown codepage %q", name)
	}
	return &Encoder{enc: encoding.ReplaceUnsupported(e.NewEncoder())}, nil
}

// EncodeLossy converts s into the target codepage, substituting the
// codepage's replacement byte for anything it cannot represent.
func (e *Encoder) EncodeLossy(s string) string {
	if e == nil || e.enc == nil {
		return s
	}
	out, err := e.enc.String(s)
	if err != nil {
		// ReplaceUnsupported makes the encoder total; keep the original
		// text if the transform still refuses.
		return s
	}
	return out
}
