package components

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

// Watch follows the component directory and refreshes the registry after
// changes settle. It blocks until ctx is cancelled and returns nil then.
// While the directory does not exist its nearest existing ancestor is
// watched, and the directory is picked up once it is created.
func (r *Registry) Watch(ctx context.Context) error {
	return r.watch(ctx, defaultDebounce, nil)
}

// watch is Watch with a configurable debounce and an optional callback
// invoked after every refresh attempt.
func (r *Registry) watch(ctx context.Context, debounce time.Duration, onRefresh func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := r.Dir()
	following, err := followDir(watcher, dir)
	if err != nil {
		return fmt.Errorf("watch component dir: %w", err)
	}

	if following {
		r.logger.Info().Str("dir", dir).Msg("watching component dir for changes")
	} else {
		r.logger.Info().Str("dir", dir).Msg("component dir does not exist yet, waiting for it")
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if strings.HasPrefix(filepath.Base(event.Name), ".") {
				continue
			}
			if !following {
				if !event.Has(fsnotify.Create) {
					continue
				}
				var followErr error
				if following, followErr = followDir(watcher, dir); followErr != nil {
					r.logger.Warn().Err(followErr).Str("dir", dir).Msg("watch component dir")
					continue
				}
				if following {
					r.logger.Info().Str("dir", dir).Msg("component dir created, watching for changes")
					timer.Reset(debounce)
				}
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						r.logger.Warn().Err(err).Str("dir", event.Name).Msg("watch new component dir")
					}
				}
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn().Err(err).Msg("component watcher error")

		case <-timer.C:
			err := r.Refresh()
			if err != nil {
				r.logger.Error().Err(err).Msg("component refresh failed")
			}
			if onRefresh != nil {
				onRefresh(err)
			}
		}
	}
}

// followDir watches the tree under dir when dir exists and reports true.
// Otherwise it watches the nearest existing ancestor of dir and reports false.
func followDir(watcher *fsnotify.Watcher, dir string) (bool, error) {
	for {
		parent := nearestExistingDir(dir)
		if parent == dir {
			return true, addTree(watcher, dir)
		}
		if err := watcher.Add(parent); err != nil {
			return false, err
		}
		// dir may have appeared before the ancestor watch was in place.
		if nearestExistingDir(dir) == parent {
			return false, nil
		}
	}
}

// nearestExistingDir returns dir or its closest ancestor that is an existing
// directory.
func nearestExistingDir(dir string) string {
	path := dir
	for {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// addTree adds dir and every non-hidden subdirectory to watcher; fsnotify
// watches are not recursive.
func addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}
