// Package remap binds the path-translation capability: given an absolute
// path written for one filesystem namespace, produce the equivalent path
// in the host namespace. Translation failure is fatal to the whole run; a
// command file with one wrong path is worse than no command file at all.
package remap

// Translator converts a path from the foreign namespace into the host
// namespace. Implementations must treat the path as an opaque string.
type Translator interface {
	Translate(path string) (string, error)
}
