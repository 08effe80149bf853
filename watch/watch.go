// Package watch reruns a build whenever files under a directory change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const DefaultDelay = 200 * time.Millisecond

// Watcher calls Build after a burst of changes below Root has settled for
// Delay. Builds never overlap; every build is a full build.
type Watcher struct {
	Root  string
	Delay time.Duration
	Build func() error

	Logger  zerolog.Logger
	OnReady func() // called once the initial watches are in place
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err = w.addTree(fw, w.Root); err != nil {
		return err
	}

	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	debounced := debounce.New(delay)

	var mu sync.Mutex
	rebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if err := w.Build(); err != nil {
			w.Logger.Error().Err(err).Msg("rebuild failed")
		}
	}

	w.Logger.Info().Str("path", w.Root).Msg("watching for changes")
	if w.OnReady != nil {
		w.OnReady()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.addTree(fw, ev.Name); err != nil {
						w.Logger.Warn().Err(err).Str("path", ev.Name).Msg("cannot watch new directory")
					}
				}
			}
			w.Logger.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("change")
			debounced(rebuild)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn().Err(err).Msg("watch error")
		}
	}
}

// addTree watches dir and all directories below it; fsnotify watches are
// not recursive.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(p)
		}
		return nil
	})
}
