// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package scene

// WatchShader is a no-op on web: there is no local filesystem to
// watch.
func (py *Pyramid) WatchShader(filename string) error {
	return nil
}
