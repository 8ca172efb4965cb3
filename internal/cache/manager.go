package cache

// Manager pairs the content and parse caches. It is owned by the top-level
// server or CLI session and handed into every pipeline run; tests construct
// isolated instances per case.
type Manager struct {
	Content *ContentCache
	Parse   *ParseCache
}

// NewManager creates a manager with fresh, empty caches.
func NewManager() *Manager {
	return &Manager{
		Content: NewContentCache(),
		Parse:   NewParseCache(),
	}
}

// InvalidateFile drops both cache entries for path. Call when a file is
// known to have changed externally.
func (m *Manager) InvalidateFile(path string) {
	m.Parse.Invalidate(path)
	m.Content.Invalidate(path)
}

// Clear drops every entry from both caches.
func (m *Manager) Clear() {
	m.Parse.Clear()
	m.Content.Clear()
}
