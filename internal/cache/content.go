// Package cache holds the two long-lived caches of the engine: file content
// and parsed syntax trees. Both key by path and use the file modification
// time as the sole staleness signal. They are safe for concurrent use with
// per-key granularity; an ambiguous staleness check is always treated as a
// miss, never a hit.
package cache

import (
	"os"
	"sync"
	"time"

	"github.com/standardbeagle/codescope/internal/cserr"
)

type contentEntry struct {
	data     []byte
	modified time.Time
}

// ContentCache caches file contents keyed by path. Repeated reads of an
// unchanged file return the same underlying buffer without touching the
// file's contents again.
type ContentCache struct {
	entries sync.Map // map[string]*contentEntry
}

// NewContentCache creates an empty content cache.
func NewContentCache() *ContentCache {
	return &ContentCache{}
}

// GetOrRead returns the content and modification time for path, reading the
// file only when no valid cached entry exists. The returned buffer is shared
// and must be treated as read-only.
//
// The modification time is captured before the bytes are read. If the file
// is edited mid-read, the captured mtime is stale relative to the bytes,
// which forces a miss on the next access instead of a false hit.
func (c *ContentCache) GetOrRead(path string) ([]byte, time.Time, error) {
	if v, ok := c.entries.Load(path); ok {
		entry := v.(*contentEntry)
		if info, err := os.Stat(path); err == nil && info.ModTime().Equal(entry.modified) {
			return entry.data, entry.modified, nil
		}
		// Stale or no longer stattable: evict now rather than letting
		// dead entries accumulate.
		c.entries.Delete(path)
	}

	var modified time.Time
	if info, err := os.Stat(path); err == nil {
		modified = info.ModTime()
	} else {
		modified = time.Now()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, cserr.NewReadError(path, err)
	}

	c.entries.Store(path, &contentEntry{data: data, modified: modified})
	return data, modified, nil
}

// Invalidate removes the entry for path, if any.
func (c *ContentCache) Invalidate(path string) {
	c.entries.Delete(path)
}

// Clear removes all entries.
func (c *ContentCache) Clear() {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
}

// Len reports the number of cached entries.
func (c *ContentCache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
