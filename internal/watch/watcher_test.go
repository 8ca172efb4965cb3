package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/codescope/internal/cache"
	"github.com/standardbeagle/codescope/internal/config"
	"github.com/standardbeagle/codescope/internal/language"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestWatcher(t *testing.T, root string) (*Watcher, *cache.Manager) {
	t.Helper()
	registry, err := language.NewRegistry()
	require.NoError(t, err)

	cfg := config.Default(root)
	cfg.Watch.DebounceMs = 20

	caches := cache.NewManager()
	w, err := New(cfg, caches, registry)
	require.NoError(t, err)
	return w, caches
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWatcherInvalidatesChangedFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.ts")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;\n"), 0o644))

	w, caches := newTestWatcher(t, root)
	require.NoError(t, w.Start(root))
	defer w.Stop()

	_, _, err := caches.Content.GetOrRead(path)
	require.NoError(t, err)
	require.Equal(t, 1, caches.Content.Len())

	require.NoError(t, os.WriteFile(path, []byte("let x = 2;\n"), 0o644))

	waitFor(t, 2*time.Second, func() bool {
		return caches.Content.Len() == 0
	})
}

func TestWatcherIgnoresUnsupportedFiles(t *testing.T) {
	root := t.TempDir()
	w, caches := newTestWatcher(t, root)
	require.NoError(t, w.Start(root))
	defer w.Stop()

	other := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))

	supported := filepath.Join(root, "app.ts")
	require.NoError(t, os.WriteFile(supported, []byte("let x = 1;\n"), 0o644))

	// Only the supported file ever reaches the pending set; after the
	// debounce the caches stay consistent (both were empty anyway).
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, caches.Content.Len())
}

func TestWatcherPicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()
	w, caches := newTestWatcher(t, root)
	require.NoError(t, w.Start(root))
	defer w.Stop()

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(sub, "app.ts")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;\n"), 0o644))
	_, _, err := caches.Content.GetOrRead(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("let x = 2;\n"), 0o644))
	waitFor(t, 2*time.Second, func() bool {
		return caches.Content.Len() == 0
	})
}

func TestWatcherStartStop(t *testing.T) {
	root := t.TempDir()
	w, _ := newTestWatcher(t, root)
	require.NoError(t, w.Start(root))
	w.Stop()
}

func TestWatcherSkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	excluded := filepath.Join(root, "node_modules")
	require.NoError(t, os.Mkdir(excluded, 0o755))

	w, caches := newTestWatcher(t, root)
	require.NoError(t, w.Start(root))
	defer w.Stop()

	path := filepath.Join(excluded, "lib.ts")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;\n"), 0o644))
	_, _, err := caches.Content.GetOrRead(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("let x = 2;\n"), 0o644))
	time.Sleep(150 * time.Millisecond)

	// The excluded directory was never watched, so the entry survives.
	assert.Equal(t, 1, caches.Content.Len())
}
