package corpus

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dgallion1/docgraph/internal/analyze"
)

// cacheKey changes whenever the file is rewritten, so stale entries are never
// returned; they simply age out. docPath is part of the key because the same
// file scanned from a different root gets a different identifier.
type cacheKey struct {
	path    string
	docPath string
	modTime int64
	size    int64
}

// Cache holds analysis results for unchanged files across scans.
type Cache struct {
	entries *lru.Cache[cacheKey, analyze.FileMetadata]
}

// NewCache returns a cache holding at most size records. A size <= 0
// disables caching.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New[cacheKey, analyze.FileMetadata](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) Get(path, docPath string, modTime time.Time, size int64) (analyze.FileMetadata, bool) {
	if c == nil {
		return analyze.FileMetadata{}, false
	}
	return c.entries.Get(newCacheKey(path, docPath, modTime, size))
}

func (c *Cache) Add(path, docPath string, modTime time.Time, size int64, meta analyze.FileMetadata) {
	if c == nil {
		return
	}
	c.entries.Add(newCacheKey(path, docPath, modTime, size), meta)
}

func newCacheKey(path, docPath string, modTime time.Time, size int64) cacheKey {
	return cacheKey{path: path, docPath: docPath, modTime: modTime.UnixNano(), size: size}
}

// Len reports the number of cached records.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
