// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"strings"

	"github.com/obelisk3d/obelisk/base/errors"
)

// Sentinel errors for surface frame acquisition and use.
var (
	// ErrSurfaceOutdated reports that the surface configuration no
	// longer matches the window (e.g., after a resize the platform
	// applied before we reconfigured). Recoverable: reconfigure and
	// retry once within the same tick.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrSurfaceLost reports that the surface was lost and must be
	// reconfigured. Recoverable like [ErrSurfaceOutdated].
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrSurfaceOutOfMemory reports that the platform could not
	// allocate a presentable image. Fatal: terminates the session.
	ErrSurfaceOutOfMemory = errors.New("gpu: surface out of memory")

	// ErrSurfaceReleased reports use of a surface after Release:
	// a programming error, failed fast rather than rendering against
	// a destroyed target.
	ErrSurfaceReleased = errors.New("gpu: surface already released")

	// ErrFramePresented reports a second Present or Drop of a [Frame]:
	// frame handles are one-shot and must never be retained.
	ErrFramePresented = errors.New("gpu: frame already presented")

	// ErrFrameOutstanding reports an acquire while the previous frame
	// has not been presented or dropped: a programming error, since a
	// tick acquires and presents exactly one frame.
	ErrFrameOutstanding = errors.New("gpu: previous frame not yet presented")
)

// Recoverable reports whether the given frame acquisition error can be
// resolved by reconfiguring the surface and retrying, per the surface
// error taxonomy: Outdated and Lost (including acquisition timeouts)
// are recoverable; out of memory and anything unclassified are fatal.
func Recoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSurfaceOutdated) || errors.Is(err, ErrSurfaceLost) {
		return true
	}
	return false
}

// classifyAcquire converts an error from the underlying
// GetCurrentTexture into one of the surface sentinel errors, keyed on
// the status text wgpu-native and the browser binding report.
func classifyAcquire(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outdated"), strings.Contains(msg, "suboptimal"):
		return errors.Newf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"), strings.Contains(msg, "timeout"):
		return errors.Newf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "out of memory"), strings.Contains(msg, "outofmemory"):
		return errors.Newf("%w: %v", ErrSurfaceOutOfMemory, err)
	default:
		return err
	}
}
