// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/wordtree/fault"
)

const (
	fileWatcherLoggerPrefix = "watcher"
)

// FileWatcher - report changes to a single file
type FileWatcher interface {
	Start() error
	Stop()
}

type FileWatcherData struct {
	log      *logger.L
	channels WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	started  bool
	done     chan struct{}
}

// WatcherChannel - a change or a removal is signalled by a value,
// events arriving while a signal is pending are merged into it
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrSourceNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &FileWatcherData{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin forwarding events for the file
func (w *FileWatcherData) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	w.started = true
	go w.loop()
	return nil
}

// Stop - release the watcher, no more events are sent
func (w *FileWatcherData) Stop() {
	w.watcher.Close()
	if w.started {
		<-w.done
	}
}

func (w *FileWatcherData) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.log.Debug("sending file change event…")
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
