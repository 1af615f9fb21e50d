// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package scene

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/obelisk3d/obelisk/base/errors"
)

// WatchShader hot-reloads the pyramid shader from the given WGSL file
// whenever it changes on disk, rebuilding the pipelines at the next
// frame boundary. The watcher stops at Release.
func (py *Pyramid) WatchShader(filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Log(err)
	}
	if err := watcher.Add(filename); err != nil {
		watcher.Close()
		return errors.Log(err)
	}
	sr := py.reload
	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				src, err := os.ReadFile(filename)
				if err != nil {
					errors.Log(err)
					continue
				}
				sr.offer(string(src))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			case <-sr.stopped:
				return
			}
		}
	}()
	return nil
}
