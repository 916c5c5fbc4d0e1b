// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before a re-run.
const DefaultDebounce = 150 * time.Millisecond

// =============================================================================
// SCRIPT WATCHER
// =============================================================================

// ScriptWatcher calls OnChange after its file is written, created or
// replaced. The parent directory is watched so editors that save by
// renaming a temp file are seen too.
type ScriptWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	onError  func(error)
}

// NewScriptWatcher creates a watcher for path.
func NewScriptWatcher(path string, debounce time.Duration, onChange func(), onError func(error)) *ScriptWatcher {
	if onError == nil {
		onError = func(error) {}
	}
	return &ScriptWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		onError:  onError,
	}
}

// Watch blocks until ctx is done.
func (sw *ScriptWatcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(sw.path)); err != nil {
		return fmt.Errorf("watch %s: %w", sw.path, err)
	}

	timer := time.NewTimer(sw.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(sw.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			sw.onError(err)

		case <-timer.C:
			sw.onChange()
		}
	}
}
