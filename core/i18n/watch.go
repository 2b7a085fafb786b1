// File: watch.go
// Title: Locale File Watching Implementation
// Description: Reloads catalogs when files in the locales directory change,
//              driven by fsnotify events.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale file watching
// - 2026-10-18 v0.2.0: Replaced polling with fsnotify

package i18n

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/log"
)

type watcher struct {
	fs     *fsnotify.Watcher
	stopCh chan struct{}
	doneCh chan struct{}
}

// startWatching starts monitoring the locales directory
func (m *Manager) startWatching() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watcher != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return chronoerr.Wrap(err, "failed to create locale watcher").
			WithCode(chronoerr.CodeInternal).
			WithOperation("i18n.startWatching")
	}
	if err := fsw.Add(m.localesDir); err != nil {
		fsw.Close()
		return chronoerr.Wrap(err, "failed to watch locales directory").
			WithCode(chronoerr.CodeNotFound).
			WithOperation("i18n.startWatching").
			WithDetail("directory", m.localesDir)
	}

	w := &watcher{fs: fsw, stopCh: make(chan struct{}), doneCh: make(chan struct{})}
	m.watcher = w
	go m.watchLoop(w)

	m.logger.Debug("Watching locale files", log.String("directory", m.localesDir))
	return nil
}

func (m *Manager) watchLoop(w *watcher) {
	defer func() {
		w.fs.Close()
		close(w.doneCh)
	}()

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			ext := strings.ToLower(filepath.Ext(event.Name))
			if !supported(m.format, ext) {
				continue
			}
			locale := strings.TrimSuffix(filepath.Base(event.Name), filepath.Ext(event.Name))
			m.reloadLocale(locale)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			m.logger.ErrorWithErr("Locale watcher error", err)
		}
	}
}

// reloadLocale reloads all catalogs and notifies handlers about locale.
// A failed reload keeps the previous catalogs.
func (m *Manager) reloadLocale(locale string) {
	if err := m.reload(); err != nil {
		m.logger.LogError(chronoerr.Wrap(err, "failed to reload locale").
			WithOperation("i18n.reloadLocale").
			WithDetail("locale", locale))
		return
	}
	m.logger.Info("Reloaded locale", log.String("locale", locale))

	m.mu.RLock()
	handlers := append([]LocaleChangeHandler(nil), m.handlers...)
	m.mu.RUnlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(locale)
		}
	}
}

// StopWatching stops file monitoring and waits for the watch loop to exit
func (m *Manager) StopWatching() {
	m.mu.Lock()
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if w == nil {
		return
	}
	close(w.stopCh)
	<-w.doneCh
}

// IsWatching returns whether file monitoring is active
func (m *Manager) IsWatching() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.watcher != nil
}

// ReloadAll reloads all locale files
func (m *Manager) ReloadAll() error {
	return m.reload()
}
