package remap

// Cache memoizes translation results in front of another Translator. The
// exec translator spawns one process per path, and command files repeat
// the same include directories many times over, so the memo pays for
// itself within a single file. With a DiskCache attached the memo also
// survives across runs.
type Cache struct {
	inner   Translator
	entries map[string]string
	disk    *DiskCache
	key     string
	dirty   bool
}

// NewCache wraps a translator with an in-memory memo. disk may be nil;
// when set, previously stored entries for key are preloaded and new
// entries are written back on Flush.
func NewCache(inner Translator, disk *DiskCache, key string) *Cache {
	entries := disk.Load(key)
	if entries == nil {
		entries = make(map[string]string)
	}
	return &Cache{
		inner:   inner,
		entries: entries,
		disk:    disk,
		key:     key,
	}
}

func (c *Cache) Translate(path string) (string, error) {
	if translated, ok := c.entries[path]; ok {
		return translated, nil
	}
	translated, err := c.inner.Translate(path)
	if err != nil {
		return "", err
	}
	c.entries[path] = translated
	c.dirty = true
	return translated, nil
}

// Flush persists newly memoized entries to the disk cache, if one is
// attached. A run that translated nothing new writes nothing.
func (c *Cache) Flush() error {
	if c.disk == nil || !c.dirty {
		return nil
	}
	if err := c.disk.Store(c.key, c.entries); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
