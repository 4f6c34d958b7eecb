package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches the burst of events an editor produces on save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls a reload function when a catalog document in a directory
// changes. Events are debounced so one save triggers one reload.
type Watcher struct {
	dir      string
	reload   func(context.Context) error
	logger   *slog.Logger
	debounce time.Duration

	watcher   *fsnotify.Watcher
	done      chan struct{}
	started   atomic.Bool
	closeOnce sync.Once
}

// NewWatcher creates a watcher for dir. debounce <= 0 uses DefaultDebounce.
func NewWatcher(dir string, reload func(context.Context) error, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	return &Watcher{
		dir:      dir,
		reload:   reload,
		logger:   logger.With(slog.String("component", "content.Watcher"), slog.String("dir", dir)),
		debounce: debounce,
		watcher:  fw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the directory is registered; events
// are handled in the background until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.started.Store(true)

	go w.run(ctx)

	w.logger.InfoContext(ctx, "watching catalog directory")

	return nil
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error

	w.closeOnce.Do(func() {
		err = w.watcher.Close()

		if w.started.Load() {
			<-w.done
		}
	})

	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !relevant(event) {
				continue
			}

			w.logger.DebugContext(ctx, "catalog document changed",
				slog.String("file", event.Name),
				slog.String("op", event.Op.String()),
			)

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.logger.WarnContext(ctx, "file watcher error", slog.Any("error", err))

		case <-fire:
			fire = nil

			if err := w.reload(ctx); err != nil {
				w.logger.WarnContext(ctx, "catalog reload failed", slog.Any("error", err))
				continue
			}

			w.logger.InfoContext(ctx, "catalog reloaded")
		}
	}
}

// relevant reports whether event touches one of the catalog documents.
func relevant(event fsnotify.Event) bool {
	switch filepath.Base(event.Name) {
	case FileCategoryQuotes, FileCatalogQuotes, FileAthletes:
	default:
		return false
	}

	return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
}
