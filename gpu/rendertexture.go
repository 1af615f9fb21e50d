// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
)

// RenderTexture is a [Renderer] that renders to an offscreen texture
// instead of a window surface, for headless rendering and image
// capture. Present is a no-op; use [RenderTexture.ReadImage] after
// presenting to read the rendered frame back to the CPU.
type RenderTexture struct {
	// GPU is the gpu device owning this render target.
	GPU *GPU

	render Render

	format TextureFormat

	device *Device

	// target is the texture rendered into.
	target Texture

	frame *Frame

	released bool

	sync.Mutex
}

// NewRenderTexture creates an offscreen render target of the given
// size, number of multisamples, and depth buffer format
// (wgpu.TextureFormatUndefined for no depth buffer), using the given
// device (e.g., from [NoDisplayGPU]).
func NewRenderTexture(gp *GPU, dev *Device, size image.Point, samples int, depthFmt wgpu.TextureFormat) *RenderTexture {
	rt := &RenderTexture{GPU: gp, device: dev}
	rt.format.Defaults()
	rt.format.Size = size
	rt.format.SetMultisample(samples)
	errors.Log(rt.target.ConfigRenderTexture(dev, &rt.format))
	rt.render.Config(dev, &rt.format, depthFmt)
	return rt
}

// Device returns the device this render target uses.
func (rt *RenderTexture) Device() *Device { return rt.device }

// Render returns the render pass manager for this target.
func (rt *RenderTexture) Render() *Render { return &rt.render }

// Format returns the texture format and size of the target.
func (rt *RenderTexture) Format() *TextureFormat { return &rt.format }

// SetSize reallocates the target texture at the given size. Zero or
// negative dimensions are ignored.
func (rt *RenderTexture) SetSize(size image.Point) {
	rt.Lock()
	defer rt.Unlock()
	if size.X <= 0 || size.Y <= 0 || size == rt.format.Size {
		return
	}
	rt.format.Size = size
	rt.target.ReleaseTexture()
	errors.Log(rt.target.ConfigRenderTexture(rt.device, &rt.format))
	rt.render.SetSize(size)
}

// Reconfigure is a no-op for an offscreen target, which has no
// swapchain to recreate.
func (rt *RenderTexture) Reconfigure() {}

// AcquireFrame returns a one-shot [Frame] for the offscreen target
// texture. Present is a no-op that just consumes the frame.
func (rt *RenderTexture) AcquireFrame() (*Frame, error) {
	rt.Lock()
	defer rt.Unlock()
	if rt.released {
		return nil, ErrSurfaceReleased
	}
	if rt.frame != nil && !rt.frame.Consumed() {
		return nil, ErrFrameOutstanding
	}
	fr := NewFrame(rt.target.View(), rt.format.Size,
		func() error { return nil },
		func() {})
	rt.frame = fr
	return fr, nil
}

// ReadImage reads the current contents of the target texture back to
// the CPU as an image. Call after the frame has been rendered and
// submitted.
func (rt *RenderTexture) ReadImage() (*image.NRGBA, error) {
	rt.Lock()
	defer rt.Unlock()
	if rt.released {
		return nil, ErrSurfaceReleased
	}
	cmd, err := rt.device.Device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, err
	}
	defer cmd.Release()
	if err := rt.target.CopyToReadBuffer(cmd); err != nil {
		return nil, err
	}
	cmdBuffer, err := cmd.Finish(nil)
	if err != nil {
		return nil, err
	}
	defer cmdBuffer.Release()
	rt.device.Queue.Submit(cmdBuffer)
	return rt.target.ReadGoImage()
}

// Release releases the target texture, render textures, and device.
func (rt *RenderTexture) Release() {
	rt.Lock()
	defer rt.Unlock()
	if rt.released {
		return
	}
	rt.released = true
	if rt.frame != nil && !rt.frame.Consumed() {
		rt.frame.Drop()
	}
	rt.render.Release()
	rt.target.Release()
	rt.device.Release()
}
