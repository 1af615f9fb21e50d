// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "sync"

// shaderReload stages replacement shader source from the file watcher
// goroutine; the render goroutine picks it up at the start of a frame,
// so pipelines are only rebuilt at a frame boundary.
type shaderReload struct {
	mu      sync.Mutex
	src     string
	staged  bool
	stopped chan struct{}
}

func newShaderReload() *shaderReload {
	return &shaderReload{stopped: make(chan struct{})}
}

// offer stages new shader source for the next frame.
func (sr *shaderReload) offer(src string) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.src = src
	sr.staged = true
}

// pending returns staged source once, clearing the stage.
func (sr *shaderReload) pending() (string, bool) {
	if sr == nil {
		return "", false
	}
	sr.mu.Lock()
	defer sr.mu.Unlock()
	if !sr.staged {
		return "", false
	}
	sr.staged = false
	return sr.src, true
}

// stop ends the watcher goroutine, if one is running.
func (sr *shaderReload) stop() {
	if sr == nil {
		return
	}
	sr.mu.Lock()
	defer sr.mu.Unlock()
	select {
	case <-sr.stopped:
	default:
		close(sr.stopped)
	}
}
