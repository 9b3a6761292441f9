// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - signals changes to a configuration file
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

// NewWatcher - create a watcher for an existing file
func NewWatcher(log *logger.L, fileName string) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		log.Errorf("parse file %s error: %s", fileName, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		log.Errorf("watch file %s error: %s", filePath, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Changes - receives after the file is written
//
// events arriving while one is pending are merged
func (w *Watcher) Changes() <-chan struct{} {
	return w.change
}

// Removed - receives once when the file is removed, watching stops
func (w *Watcher) Removed() <-chan struct{} {
	return w.remove
}

// Start - begin watching in the background
//
// the directory is watched so that editors which replace the file
// are still seen
func (w *Watcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go w.run()
	return nil
}

// Close - stop watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if event.Op&fsnotify.Remove == fsnotify.Remove {
				w.log.Warnf("file %s removed, stop", w.filePath)
				send(w.remove)
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod) != 0 {
				send(w.change)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// non-blocking, a pending signal already covers this one
func send(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
