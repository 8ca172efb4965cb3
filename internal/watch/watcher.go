// Package watch invalidates cache entries when files change on disk. The
// caches self-heal through mtime checks anyway; watching just drops stale
// entries eagerly instead of on next access.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/codescope/internal/cache"
	"github.com/standardbeagle/codescope/internal/config"
	"github.com/standardbeagle/codescope/internal/language"
)

// Watcher monitors a workspace root and evicts cache entries for changed
// files after a debounce interval.
type Watcher struct {
	watcher  *fsnotify.Watcher
	cfg      *config.Config
	caches   *cache.Manager
	registry *language.Registry
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// New creates a watcher over the given caches. Call Start to begin watching.
func New(cfg *config.Config, caches *cache.Manager, registry *language.Registry) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		watcher:  fsw,
		cfg:      cfg,
		caches:   caches,
		registry: registry,
		debounce: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
		ctx:      ctx,
		cancel:   cancel,
		pending:  make(map[string]struct{}),
	}, nil
}

// Start adds watches for every non-excluded directory under root and begins
// processing events.
func (w *Watcher) Start(root string) error {
	if err := w.addWatches(root); err != nil {
		return fmt.Errorf("failed to add watches under %s: %w", root, err)
	}
	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop shuts the watcher down and waits for in-flight work.
func (w *Watcher) Stop() {
	w.cancel()
	if err := w.watcher.Close(); err != nil {
		log.Printf("Warning: closing watcher: %v", err)
	}
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) addWatches(root string) error {
	ignore := config.LoadGitignore(root)
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if rel, relErr := filepath.Rel(root, path); relErr == nil && rel != "." {
			if w.cfg.ShouldExclude(rel, nil) || ignore.Match(rel, true) {
				return filepath.SkipDir
			}
		}
		if addErr := w.watcher.Add(path); addErr != nil {
			log.Printf("Warning: failed to watch %s: %v", path, addErr)
		}
		return nil
	})
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// New directories need their own watch to see files inside them.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			base := filepath.Base(path)
			if !strings.HasPrefix(base, ".") && !w.cfg.ShouldExclude(base, nil) {
				if err := w.watcher.Add(path); err != nil {
					log.Printf("Warning: failed to watch new directory %s: %v", path, err)
				}
			}
			return
		}
	}

	if w.registry.ForPath(path) == nil {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = struct{}{}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
	} else {
		w.timer.Reset(w.debounce)
	}
}

// flush evicts the batched paths from both caches.
func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	for _, path := range paths {
		w.caches.InvalidateFile(path)
	}
}
