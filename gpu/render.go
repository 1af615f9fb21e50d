// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
)

// Render manages the elements needed for a render pass against a
// [Renderer] target: the clear color, the depth buffer if one is
// configured, and the multisampled image when multisampling is on.
// The Render lives on the Surface or RenderTexture and is reconfigured
// on resize.
type Render struct {
	// Format of the target framebuffer we render to.
	Format TextureFormat

	// ClearColor is the color used to clear the frame at the start of
	// a clearing render pass.
	ClearColor color.Color

	// ClearDepth is the depth value set when starting a render pass.
	ClearDepth float32

	// depth buffer, active if depthFormat is not Undefined.
	depth       Texture
	depthFormat wgpu.TextureFormat

	// multisampled render target, active if Format.Samples > 1.
	multi Texture

	device *Device
}

// Config configures the render pass manager for the given device and
// target format, with the given depth buffer format
// (wgpu.TextureFormatUndefined for no depth buffer).
func (rd *Render) Config(dev *Device, fm *TextureFormat, depthFmt wgpu.TextureFormat) {
	rd.device = dev
	rd.Format = *fm
	rd.ClearColor = color.Black
	rd.ClearDepth = 1
	rd.depthFormat = depthFmt
	rd.config()
}

func (rd *Render) config() {
	if rd.depthFormat != wgpu.TextureFormatUndefined {
		errors.Log(rd.depth.ConfigDepth(rd.device, rd.depthFormat, &rd.Format))
	}
	if rd.Format.Samples > 1 {
		errors.Log(rd.multi.ConfigMulti(rd.device, &rd.Format))
	}
}

// SetSize reallocates the depth and multisample textures for the given
// size, called on resize before the next frame is acquired.
func (rd *Render) SetSize(size image.Point) {
	if rd.Format.Size == size {
		return
	}
	rd.Format.Size = size
	rd.config()
}

// DepthFormat returns the depth buffer format,
// wgpu.TextureFormatUndefined when no depth buffer is configured.
func (rd *Render) DepthFormat() wgpu.TextureFormat { return rd.depthFormat }

// DepthView returns the depth buffer view, or nil if no depth buffer
// is configured.
func (rd *Render) DepthView() *wgpu.TextureView {
	if rd.depthFormat == wgpu.TextureFormatUndefined {
		return nil
	}
	return rd.depth.View()
}

// ClearRenderPass returns a render pass descriptor that clears the
// framebuffer to the ClearColor.
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return rd.renderPass(view, wgpu.LoadOpClear)
}

// LoadRenderPass returns a render pass descriptor that loads the
// previous framebuffer contents.
func (rd *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return rd.renderPass(view, wgpu.LoadOpLoad)
}

func (rd *Render) renderPass(view *wgpu.TextureView, load wgpu.LoadOp) *wgpu.RenderPassDescriptor {
	ca := wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     load,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: clearValue(rd.ClearColor),
	}
	if rd.Format.Samples > 1 {
		// render into the multisampled image, resolving into the frame
		ca.View = rd.multi.View()
		ca.ResolveTarget = view
	}
	rpd := &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{ca},
	}
	if dv := rd.DepthView(); dv != nil {
		rpd.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            dv,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: rd.ClearDepth,
		}
	}
	return rpd
}

// BeginRenderPass starts a clearing render pass on the given command
// encoder, rendering to the given frame view.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}

// BeginRenderPassNoClear starts a render pass that loads the prior
// frame contents instead of clearing.
func (rd *Render) BeginRenderPassNoClear(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.LoadRenderPass(view))
}

// Release releases the depth and multisample textures.
func (rd *Render) Release() {
	rd.depth.Release()
	rd.multi.Release()
}

// clearValue converts a Go color into a WebGPU clear color.
func clearValue(c color.Color) wgpu.Color {
	if c == nil {
		return wgpu.Color{A: 1}
	}
	r, g, b, a := c.RGBA()
	return wgpu.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}
