package source

type (
	// FileID uniquely identifies a file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a loaded file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
)

// File captures metadata and content for a single input file.
// Content is the raw on-disk byte sequence: no BOM stripping and no
// newline normalization, because the rewriter must reproduce the input's
// line structure byte-for-byte.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags
}
