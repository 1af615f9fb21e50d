// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image"

// Renderer is a rendering target that frames can be acquired from and
// presented to: either a window-backed [Surface] or an offscreen
// [RenderTexture].
type Renderer interface {
	// Render returns the render pass manager for this target.
	Render() *Render

	// Device returns the logical device for this target.
	Device() *Device

	// Format returns the current size and format of the target.
	Format() *TextureFormat

	// AcquireFrame returns a one-shot [Frame] for the current
	// presentable image. Errors are classified per the surface error
	// taxonomy; see [Recoverable].
	AcquireFrame() (*Frame, error)

	// SetSize requests the given target size. For a surface, the new
	// configuration is applied before the next AcquireFrame.
	SetSize(size image.Point)

	// Reconfigure forces the target to reconfigure immediately, used
	// after a recoverable acquisition failure.
	Reconfigure()

	// Release releases all resources owned by this target.
	Release()
}
