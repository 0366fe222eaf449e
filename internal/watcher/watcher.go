// Package watcher feeds newly created image files into the conversion
// pipeline, using a pool of workers bounded by configuration.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pixport/pixport/internal/format"
	"github.com/pixport/pixport/internal/hasher"
	"github.com/pixport/pixport/internal/pipeline"
)

// settleDelay is how long a new file must sit quietly before conversion,
// so half-copied files are not picked up mid-write.
const settleDelay = 500 * time.Millisecond

// Watcher watches a directory tree and converts image files as they appear.
type Watcher struct {
	conv     *pipeline.Converter
	settings pipeline.Settings
	workers  int
	log      *zap.Logger

	mu   sync.Mutex
	seen map[string]string // path -> content hash of last converted version
}

// New creates a watcher. workers bounds concurrent conversions; log may be
// nil.
func New(conv *pipeline.Converter, settings pipeline.Settings, workers int, log *zap.Logger) *Watcher {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		conv:     conv,
		settings: settings,
		workers:  workers,
		log:      log,
		seen:     make(map[string]string),
	}
}

// Run watches root and its subdirectories until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, root string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := addRecursive(fsw, root); err != nil {
		return err
	}
	w.log.Info("watching", zap.String("dir", root), zap.Int("workers", w.workers))

	paths := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				w.handle(path)
			}
		}()
	}
	defer wg.Wait()
	defer close(paths)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				// New subdirectory: watch it too.
				if ev.Op&fsnotify.Create != 0 {
					_ = addRecursive(fsw, ev.Name)
				}
				continue
			}
			if !format.IsImageFile(ev.Name) {
				continue
			}
			select {
			case paths <- ev.Name:
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// handle converts one file unless its content is unchanged since the last
// conversion.
func (w *Watcher) handle(path string) {
	time.Sleep(settleDelay)

	hash, err := hasher.HashFile(path)
	if err != nil {
		w.log.Warn("hash failed", zap.String("file", path), zap.Error(err))
		return
	}

	w.mu.Lock()
	if w.seen[path] == hash {
		w.mu.Unlock()
		return
	}
	w.seen[path] = hash
	w.mu.Unlock()

	out, err := w.conv.Convert(path, w.settings)
	if err != nil {
		w.log.Error("conversion failed", zap.String("file", path), zap.Error(err))
		return
	}

	// Remember the output so its own create event is not converted again
	// when it lands inside the watched tree.
	if outHash, err := hasher.HashFile(out); err == nil {
		w.mu.Lock()
		w.seen[out] = outHash
		w.mu.Unlock()
	}
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}
