// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a texture or
// render target.
type TextureFormat struct {
	// Size of the texture in pixels.
	Size image.Point

	// Format is the WebGPU texture format.
	// RGBA8UnormSrgb is the default.
	Format wgpu.TextureFormat

	// Samples is the number of samples for multisampled rendering;
	// 1 (no multisampling) otherwise.
	Samples int
}

// NewTextureFormat returns a new TextureFormat with the default format
// and the given size.
func NewTextureFormat(width, height int) *TextureFormat {
	fm := &TextureFormat{}
	fm.Defaults()
	fm.Size = image.Point{width, height}
	return fm
}

func (fm *TextureFormat) Defaults() {
	fm.Format = wgpu.TextureFormatRGBA8UnormSrgb
	fm.Samples = 1
}

// String returns a human-readable description of the format.
func (fm *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %d  Samples: %d", fm.Size, fm.Format, fm.Samples)
}

// Set sets the width, height and format.
func (fm *TextureFormat) Set(w, h int, ft wgpu.TextureFormat) {
	fm.Size = image.Point{X: w, Y: h}
	fm.Format = ft
}

// SetMultisample sets the number of samples for multisampled
// anti-aliasing. WebGPU supports only 1 (no multisampling) and 4;
// any other value falls back to 1.
func (fm *TextureFormat) SetMultisample(samples int) {
	if samples != 4 {
		samples = 1
	}
	fm.Samples = samples
}

// Size32 returns the size as uint32 values.
func (fm *TextureFormat) Size32() (width, height uint32) {
	return uint32(fm.Size.X), uint32(fm.Size.Y)
}

// Aspect returns the aspect ratio X / Y.
func (fm *TextureFormat) Aspect() float32 {
	if fm.Size.Y == 0 {
		return 1
	}
	return float32(fm.Size.X) / float32(fm.Size.Y)
}

// Bounds returns the rectangle for the format size.
func (fm *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: fm.Size}
}

// Extent3D returns the WebGPU Extent3D for this format.
func (fm *TextureFormat) Extent3D() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(fm.Size.X),
		Height:             uint32(fm.Size.Y),
		DepthOrArrayLayers: 1,
	}
}
