// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Frame is a one-shot handle on the current presentable image of a
// [Renderer]. It is valid only for the duration of one frame's
// recording and submission: it must be presented or dropped exactly
// once, and never retained across frames. Reuse fails with
// [ErrFramePresented].
type Frame struct {
	view    *wgpu.TextureView
	size    image.Point
	present func() error
	drop    func()
	done    bool
}

// NewFrame returns a new frame handle over the given texture view.
// present is called by [Frame.Present]; drop releases the underlying
// resources without presenting and may be nil. Renderer
// implementations (and tests, with nil view) construct frames;
// application code only consumes them.
func NewFrame(view *wgpu.TextureView, size image.Point, present func() error, drop func()) *Frame {
	return &Frame{view: view, size: size, present: present, drop: drop}
}

// View returns the texture view to render into.
func (fr *Frame) View() *wgpu.TextureView {
	return fr.view
}

// Size returns the frame's dimensions in pixels.
func (fr *Frame) Size() image.Point {
	return fr.size
}

// Present presents this frame to its target and consumes the handle.
// A second Present (or a Present after Drop) fails with
// [ErrFramePresented].
func (fr *Frame) Present() error {
	if fr.done {
		return ErrFramePresented
	}
	fr.done = true
	if fr.present == nil {
		return nil
	}
	return fr.present()
}

// Drop consumes the handle without presenting, releasing the
// underlying resources. Used when rendering fails mid-frame so the
// swapchain image is not leaked.
func (fr *Frame) Drop() error {
	if fr.done {
		return ErrFramePresented
	}
	fr.done = true
	if fr.drop != nil {
		fr.drop()
	}
	return nil
}

// Consumed reports whether this frame has been presented or dropped.
func (fr *Frame) Consumed() bool {
	return fr.done
}
