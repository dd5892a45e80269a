package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/frrdocs/internal/config"
	"git.home.luguber.info/inful/frrdocs/internal/logfields"
)

// DefaultDebounce collapses editor save bursts into one rebuild.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc performs one build. It returns the configuration it used so the
// watcher can follow the status and lexer files named there; a nil config
// keeps the previous watch set.
type RunFunc func(ctx context.Context) (*config.Config, error)

// Watcher re-runs a build when the configuration, status or lexer file changes.
type Watcher struct {
	configPath string
	run        RunFunc
	watcher    *fsnotify.Watcher
	debounce   time.Duration

	mu    sync.Mutex
	files map[string]struct{}
	dirs  map[string]struct{}
}

// NewWatcher creates a watcher for the configuration at configPath.
func NewWatcher(configPath string, run RunFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return &Watcher{
		configPath: absPath,
		run:        run,
		watcher:    fw,
		debounce:   DefaultDebounce,
		files:      map[string]struct{}{},
		dirs:       map[string]struct{}{},
	}, nil
}

// SetDebounce changes the quiet period before a rebuild.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Watched lists the files currently followed.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Run builds once, then rebuilds on change until ctx is cancelled. Only the
// initial build's error is returned; later failures are logged.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	cfg, err := w.run(ctx)
	if err != nil {
		return err
	}
	w.track(cfg)
	slog.Info("Watching for changes", logfields.Config(w.configPath))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Input change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cfg, err := w.run(ctx)
			if err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
			w.track(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, configPath string, run RunFunc) error {
	w, err := NewWatcher(configPath, run)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[filepath.Clean(event.Name)]
	return ok
}

// track follows the inputs cfg names. Directories are watched rather than
// files so replacements by rename are seen.
func (w *Watcher) track(cfg *config.Config) {
	paths := []string{w.configPath}
	if cfg != nil {
		paths = append(paths, cfg.Path(cfg.Status.Path))
		if cfg.Lexer.File != "" {
			paths = append(paths, cfg.Path(cfg.Lexer.File))
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			slog.Debug("Cannot watch directory", logfields.Path(dir), logfields.Error(err))
			continue
		}
		w.dirs[dir] = struct{}{}
	}
}
