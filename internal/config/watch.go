package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/podium/internal/logger"
)

const defaultReloadDebounce = 150 * time.Millisecond

// Watcher re-parses a catalogue file whenever it changes on disk.
type Watcher struct {
	path      string
	watcher   *fsnotify.Watcher
	log       *logger.Logger
	debounce  time.Duration
	closeOnce sync.Once
}

// NewWatcher starts watching the directory that holds path. Editors often
// save by replacing the file, so watching the file itself would lose track of it.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalogue path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create catalogue watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fsw,
		log:      log.With("catalogue", abs),
		debounce: defaultReloadDebounce,
	}, nil
}

// Run blocks until ctx is cancelled. After each burst of writes settles it
// calls onReload with the freshly parsed catalogue, or the parse error.
// The underlying watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onReload func(*Config, error)) error {
	defer w.Close()

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
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				w.log.Debug("catalogue removed or renamed, waiting for it to come back")
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WarnErr(err, "catalogue watcher error")

		case <-fire:
			fire = nil
			cfg, err := ParseConfig(w.path)
			if err != nil {
				w.log.WarnErr(err, "catalogue reload rejected")
			} else {
				w.log.Info("device catalogue reloaded", "devices", len(cfg.Devices))
			}
			onReload(cfg, err)
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
