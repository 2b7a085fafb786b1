// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Reloads the configuration file when it changes, driven by
//              fsnotify events on its directory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-18 v0.2.0: Replaced polling with fsnotify

package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	chronoerr "github.com/msto63/chrono/core/error"
	"github.com/msto63/chrono/core/log"
)

// startWatching starts monitoring the configuration file. The directory is
// watched so that files replaced by rename are picked up.
func (c *Config) startWatching() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		return nil
	}
	if c.filePath == "" {
		return chronoerr.New("file path required for watching").
			WithCode(chronoerr.CodeMissingConfig).
			WithOperation("config.startWatching")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return chronoerr.Wrap(err, "failed to create config watcher").
			WithCode(chronoerr.CodeInternal).
			WithOperation("config.startWatching")
	}
	dir := filepath.Dir(c.filePath)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return chronoerr.Wrap(err, "failed to watch config directory").
			WithCode(chronoerr.CodeConfigError).
			WithOperation("config.startWatching").
			WithDetail("directory", dir)
	}

	c.watcher = fsw
	c.stopCh = make(chan struct{})
	c.doneCh = make(chan struct{})
	go c.watchLoop(fsw, c.stopCh, c.doneCh)

	c.logger.Debug("Watching configuration file", log.String("filePath", c.filePath))
	return nil
}

func (c *Config) watchLoop(fsw *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer func() {
		fsw.Close()
		close(doneCh)
	}()

	target := filepath.Clean(c.filePath)
	for {
		select {
		case <-stopCh:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if err := c.reload(); err != nil {
				c.logger.LogError(err)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			c.logger.ErrorWithErr("Config watcher error", err)
		}
	}
}

// reload reloads the configuration from the file and notifies handlers.
// A file that fails to parse keeps the previous data.
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return chronoerr.Wrap(err, "failed to read config file during reload").
			WithCode(chronoerr.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return chronoerr.Wrap(err, "failed to parse config file during reload").
			WithCode(chronoerr.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	c.mu.Lock()
	oldConfig := &Config{data: c.data, format: c.format, envPrefix: c.envPrefix, logger: c.logger}
	c.data = newData
	newConfig := &Config{data: deepCopyMap(newData), format: c.format, envPrefix: c.envPrefix, logger: c.logger}
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	c.logger.Info("Reloaded configuration", log.String("filePath", c.filePath))
	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}
	return nil
}

// StopWatching stops file monitoring and waits for the watch loop to exit
func (c *Config) StopWatching() {
	c.mu.Lock()
	fsw, stopCh, doneCh := c.watcher, c.stopCh, c.doneCh
	c.watcher = nil
	c.mu.Unlock()

	if fsw == nil {
		return
	}
	close(stopCh)
	<-doneCh
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}
