package cache

import (
	"sync"
	"time"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

type parseEntry struct {
	mu       sync.Mutex
	tree     *tree_sitter.Tree
	modified time.Time
	closed   bool
}

// ParseCache caches parsed syntax trees keyed by path. Unlike ContentCache
// it never stats the file itself: the caller supplies the modification time,
// which must originate from the same read as the content that was parsed.
// Two caches independently re-statting the same file could observe different
// instants and silently desynchronize content and tree.
type ParseCache struct {
	entries sync.Map // map[string]*parseEntry
}

// NewParseCache creates an empty parse cache.
func NewParseCache() *ParseCache {
	return &ParseCache{}
}

// Get returns a clone of the cached tree for path if it was built against
// exactly the given modification time, else nil. A mismatched entry is
// evicted immediately to prevent stale trees from accumulating.
//
// The caller owns the returned clone and must Close it.
func (c *ParseCache) Get(path string, modified time.Time) *tree_sitter.Tree {
	v, ok := c.entries.Load(path)
	if !ok {
		return nil
	}
	entry := v.(*parseEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return nil
	}
	if entry.modified.Equal(modified) {
		return entry.tree.Clone()
	}
	entry.tree.Close()
	entry.closed = true
	c.entries.Delete(path)
	return nil
}

// Insert stores tree for path, taking ownership of it. The modification
// time must come from the same read that produced the parsed content.
func (c *ParseCache) Insert(path string, tree *tree_sitter.Tree, modified time.Time) {
	entry := &parseEntry{tree: tree, modified: modified}
	if prev, loaded := c.entries.Swap(path, entry); loaded {
		closeEntry(prev.(*parseEntry))
	}
}

// Invalidate removes the entry for path, if any.
func (c *ParseCache) Invalidate(path string) {
	if v, loaded := c.entries.LoadAndDelete(path); loaded {
		closeEntry(v.(*parseEntry))
	}
}

// Clear removes all entries.
func (c *ParseCache) Clear() {
	c.entries.Range(func(key, value any) bool {
		if v, loaded := c.entries.LoadAndDelete(key); loaded {
			closeEntry(v.(*parseEntry))
		}
		return true
	})
}

// Len reports the number of cached entries.
func (c *ParseCache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func closeEntry(entry *parseEntry) {
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if !entry.closed {
		entry.tree.Close()
		entry.closed = true
	}
}
