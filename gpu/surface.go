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

// Surface is a [Renderer] that renders to a window surface: the
// swapchain textures belonging to an OS window or a browser canvas.
// It owns the surface configuration and reapplies it lazily before the
// next acquire whenever the size or present mode changes.
type Surface struct {
	// GPU is the gpu device owning this surface.
	GPU *GPU

	// render manages the clear color, depth buffer, and multisampling
	// for passes against this surface.
	render Render

	// format describes the swapchain texture format and size.
	format TextureFormat

	// device for this surface, which must be the one used for all
	// rendering to it.
	device *Device

	surface *wgpu.Surface
	config  wgpu.SurfaceConfiguration

	// needsConfig is set when the configuration changed and must be
	// reapplied before the next acquire.
	needsConfig bool

	// frame is the outstanding acquired frame, nil when none is live.
	frame *Frame

	released bool

	sync.Mutex
}

// NewSurface creates a Surface for the given WebGPU surface, of the
// given initial size, number of multisamples (1 for no multisampling),
// and depth buffer format (wgpu.TextureFormatUndefined for no depth
// buffer). It creates a new device on the gpu for the surface.
func NewSurface(gp *GPU, wsurf *wgpu.Surface, size image.Point, samples int, depthFmt wgpu.TextureFormat) (*Surface, error) {
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, err
	}
	sf := &Surface{GPU: gp, device: dev, surface: wsurf}

	caps := wsurf.GetCapabilities(gp.GPU)
	if len(caps.Formats) == 0 {
		return nil, errors.New("gpu.NewSurface: surface reports no supported texture formats")
	}
	sf.format.Defaults()
	sf.format.Format = caps.Formats[0]
	sf.format.Size = size
	sf.format.SetMultisample(samples)

	sf.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.format.Format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	sf.surface.Configure(sf.GPU.GPU, sf.device.Device, &sf.config)
	sf.render.Config(sf.device, &sf.format, depthFmt)
	return sf, nil
}

// Device returns the device this surface renders with.
func (sf *Surface) Device() *Device { return sf.device }

// Render returns the render pass manager for this surface.
func (sf *Surface) Render() *Render { return &sf.render }

// Format returns the texture format and size of the surface.
func (sf *Surface) Format() *TextureFormat { return &sf.format }

// SetSize records a new surface size, to be applied before the next
// frame is acquired. Zero or negative dimensions are ignored, as they
// arise transiently during window minimization.
func (sf *Surface) SetSize(size image.Point) {
	sf.Lock()
	defer sf.Unlock()
	if size.X <= 0 || size.Y <= 0 || size == sf.format.Size {
		return
	}
	sf.format.Size = size
	sf.config.Width = uint32(size.X)
	sf.config.Height = uint32(size.Y)
	sf.needsConfig = true
}

// SetPresentMode sets the presentation mode (vsync behavior), applied
// before the next frame is acquired.
func (sf *Surface) SetPresentMode(mode wgpu.PresentMode) {
	sf.Lock()
	defer sf.Unlock()
	if sf.config.PresentMode == mode {
		return
	}
	sf.config.PresentMode = mode
	sf.needsConfig = true
}

// Reconfigure forces the surface configuration to be reapplied before
// the next acquire, which recreates the swapchain. It is the recovery
// action after an outdated or lost frame acquire.
func (sf *Surface) Reconfigure() {
	sf.Lock()
	defer sf.Unlock()
	sf.needsConfig = true
}

// AcquireFrame acquires the next swapchain texture as a one-shot
// [Frame]. Only one frame may be outstanding at a time:
// [ErrFrameOutstanding] is returned until the previous frame is
// presented or dropped. Acquire failures are classified: a result
// matching [Recoverable] can be retried after [Surface.Reconfigure].
func (sf *Surface) AcquireFrame() (*Frame, error) {
	sf.Lock()
	defer sf.Unlock()
	if sf.released {
		return nil, ErrSurfaceReleased
	}
	if sf.frame != nil && !sf.frame.Consumed() {
		return nil, ErrFrameOutstanding
	}
	if sf.needsConfig {
		sf.surface.Configure(sf.GPU.GPU, sf.device.Device, &sf.config)
		sf.render.SetSize(sf.format.Size)
		sf.needsConfig = false
	}
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifyAcquire(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, classifyAcquire(err)
	}
	fr := NewFrame(view, sf.format.Size,
		func() error {
			sf.surface.Present()
			view.Release()
			tex.Release()
			return nil
		},
		func() {
			view.Release()
			tex.Release()
		})
	sf.frame = fr
	return fr, nil
}

// Release releases the surface, its render textures, and its device.
// Any subsequent AcquireFrame returns [ErrSurfaceReleased].
func (sf *Surface) Release() {
	sf.Lock()
	defer sf.Unlock()
	if sf.released {
		return
	}
	sf.released = true
	if sf.frame != nil && !sf.frame.Consumed() {
		sf.frame.Drop()
	}
	sf.render.Release()
	sf.surface.Release()
	sf.device.Release()
}
