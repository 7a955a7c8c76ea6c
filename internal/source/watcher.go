// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// FILE WATCHER INTERFACE
// =============================================================================

// Watcher notifies when any of a fixed set of files changes.
type Watcher interface {
	// Watch starts watching for file changes
	Watch() error

	// Events delivers one value per debounced change burst
	Events() <-chan ChangeEvent

	// Close stops watching and releases resources
	Close() error
}

// ChangeEvent identifies the changed file.
type ChangeEvent struct {
	Path string
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// FsnotifyWatcher implements Watcher using fsnotify. It watches the parent
// directories of the target files rather than the files themselves:
// RELIABILITY: editors and log rotators replace files by rename, which
// silently detaches a direct file watch.
type FsnotifyWatcher struct {
	paths    map[string]bool // Absolute paths of watched files
	watcher  *fsnotify.Watcher
	debounce time.Duration
	events   chan ChangeEvent
	mu       sync.Mutex
	started  bool
	pending  map[string]time.Time // File path -> last change time
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewFsnotifyWatcher creates a new fsnotify-based watcher for the given files.
func NewFsnotifyWatcher(paths []string, debounce time.Duration) (*FsnotifyWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	fw := &FsnotifyWatcher{
		paths:    make(map[string]bool, len(paths)),
		watcher:  watcher,
		debounce: debounce,
		events:   make(chan ChangeEvent, 8),
		pending:  make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		fw.paths[abs] = true
	}

	return fw, nil
}

// Watch starts watching for file changes. Calling it on a watcher that is
// already running is a no-op, so the goroutines are never duplicated.
func (fw *FsnotifyWatcher) Watch() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.started {
		return nil
	}

	// Watch each distinct parent directory once
	dirs := make(map[string]bool)
	for p := range fw.paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return err
		}
	}
	fw.started = true

	// Start event processing goroutine
	go fw.processEvents()

	// Start debounce timer goroutine
	go fw.processPending()

	return nil
}

// Events delivers debounced change notifications
func (fw *FsnotifyWatcher) Events() <-chan ChangeEvent {
	return fw.events
}

// processEvents processes file system events
func (fw *FsnotifyWatcher) processEvents() {
	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil {
				abs = event.Name
			}
			if !fw.paths[abs] {
				continue
			}

			// Write, Create (rename-replace), and Remove all mean the
			// file content the caller last read is stale.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				fw.mu.Lock()
				fw.pending[abs] = time.Now()
				fw.mu.Unlock()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Non-fatal
			_ = err
		}
	}
}

// processPending flushes pending changes once they have been quiet for the
// debounce interval, collapsing rapid write bursts into one event.
func (fw *FsnotifyWatcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			now := time.Now()

			fw.mu.Lock()
			var toNotify []string
			for path, changeTime := range fw.pending {
				if now.Sub(changeTime) >= fw.debounce {
					toNotify = append(toNotify, path)
					delete(fw.pending, path)
				}
			}
			fw.mu.Unlock()

			for _, path := range toNotify {
				select {
				case fw.events <- ChangeEvent{Path: path}:
				case <-fw.ctx.Done():
					return
				}
			}
		}
	}
}

// Close stops watching and releases resources
func (fw *FsnotifyWatcher) Close() error {
	fw.cancel()
	if fw.watcher != nil {
		return fw.watcher.Close()
	}
	return nil
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// PollingWatcher implements Watcher by comparing modification times at a
// fixed interval. Used where fsnotify is unavailable (some network and
// container filesystems).
type PollingWatcher struct {
	paths    []string
	interval time.Duration
	events   chan ChangeEvent
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	started  bool
	modTimes map[string]time.Time // File path -> mod time
}

// NewPollingWatcher creates a new polling-based watcher
func NewPollingWatcher(paths []string, interval time.Duration) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &PollingWatcher{
		paths:    append([]string(nil), paths...),
		interval: interval,
		events:   make(chan ChangeEvent, 8),
		ctx:      ctx,
		cancel:   cancel,
		modTimes: make(map[string]time.Time),
	}
}

// Watch starts watching for file changes. Calling it on a watcher that is
// already running is a no-op, so the poll goroutine is never duplicated.
func (pw *PollingWatcher) Watch() error {
	pw.mu.Lock()
	if pw.started {
		pw.mu.Unlock()
		return nil
	}
	pw.started = true
	pw.mu.Unlock()

	// Record the baseline so only subsequent changes notify
	pw.scan(nil)

	go pw.poll()

	return nil
}

// Events delivers change notifications
func (pw *PollingWatcher) Events() <-chan ChangeEvent {
	return pw.events
}

// scan stats every watched path; changed paths are appended via notify.
// A missing file is recorded with the zero time, so deletion and
// recreation both register as changes.
func (pw *PollingWatcher) scan(notify func(string)) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	for _, path := range pw.paths {
		var mod time.Time
		if info, err := os.Stat(path); err == nil {
			mod = info.ModTime()
		}
		if prev, seen := pw.modTimes[path]; seen && !prev.Equal(mod) && notify != nil {
			notify(path)
		}
		pw.modTimes[path] = mod
	}
}

// poll periodically checks for file changes
func (pw *PollingWatcher) poll() {
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			var changed []string
			pw.scan(func(path string) {
				changed = append(changed, path)
			})
			for _, path := range changed {
				select {
				case pw.events <- ChangeEvent{Path: path}:
				case <-pw.ctx.Done():
					return
				}
			}
		}
	}
}

// Close stops watching
func (pw *PollingWatcher) Close() error {
	pw.cancel()
	return nil
}

// =============================================================================
// WATCHER FACTORY
// =============================================================================

// NewWatcher returns a running watcher for the given files: fsnotify when
// the platform supports it, polling otherwise. The returned watcher is
// already started; callers only consume Events and Close.
func NewWatcher(paths []string, debounce time.Duration) (Watcher, error) {
	fw, err := NewFsnotifyWatcher(paths, debounce)
	if err == nil {
		if err := fw.Watch(); err == nil {
			return fw, nil
		}
		fw.Close()
	}

	pw := NewPollingWatcher(paths, 2*time.Second)
	if err := pw.Watch(); err != nil {
		return nil, err
	}
	return pw, nil
}
