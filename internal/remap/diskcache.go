package remap

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when diskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists translation memos under the user cache directory,
// one msgpack file per translator identity. A nil *DiskCache is valid
// and does nothing.
type DiskCache struct {
	dir string
}

type diskPayload struct {
	Schema  uint16
	Entries map[string]string
}

// OpenDiskCache initializes a disk cache rooted at dir, or at the
// standard XDG location for app when dir is empty.
func OpenDiskCache(app, dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey derives a stable cache file key from the translator identity
// (command line or prefix rules), so incompatible configurations never
// share entries.
func CacheKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:8])
}

func (c *DiskCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".mp")
}

// Load reads the memo stored for key. A missing file, a decode error or
// a schema mismatch all yield nil: the cache is an optimization, never a
// source of failures.
func (c *DiskCache) Load(key string) map[string]string {
	if c == nil {
		return nil
	}
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil
	}
	defer f.Close()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil
	}
	return payload.Entries
}

// Store serializes and atomically replaces the memo for key.
func (c *DiskCache) Store(key string, entries map[string]string) error {
	if c == nil {
		return nil
	}
	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	// no-op once the rename below succeeds
	defer os.Remove(f.Name())

	payload := diskPayload{
		Schema:  diskCacheSchemaVersion,
		Entries: entries,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}
