// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the WebGPU context for the engine: the adapter and
// logical device, the presentable [Surface] with its swapchain
// configuration, the offscreen [RenderTexture], and slim helpers for
// pipelines, buffers, and render passes. It runs on wgpu-native on
// desktop platforms and on the browser WebGPU API under wasm, through
// github.com/cogentcore/webgpu.
package gpu

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
)

// Debug enables extra logging of GPU configuration steps.
var Debug = false

var theInstance *wgpu.Instance

// Instance returns the global WebGPU instance, creating it on first use.
// On the web platform this wraps the browser's navigator.gpu.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU represents the physical GPU selection: the WebGPU instance and the
// adapter requested from it, with the adapter's limits. It is created
// once at startup and released at session end.
type GPU struct {
	// Instance is the global WebGPU instance.
	Instance *wgpu.Instance

	// GPU is the adapter, representing the physical GPU
	// (or the browser's chosen GPU on the web platform).
	GPU *wgpu.Adapter

	// Limits are the adapter's supported limits, used as the
	// requested limits for devices created on this adapter.
	Limits wgpu.SupportedLimits
}

// NewGPU returns a new GPU with an adapter compatible with the given
// surface, which may be nil for headless use. A nil return from the
// platform (no compatible adapter) is a fatal initialization error:
// the session cannot start without one.
func NewGPU(sf *wgpu.Surface) (*GPU, error) {
	gp := &GPU{Instance: Instance()}
	opts := &wgpu.RequestAdapterOptions{
		CompatibleSurface: sf,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	}
	ad, err := gp.Instance.RequestAdapter(opts)
	if err != nil {
		return nil, errors.Log(errors.Newf("gpu: no WebGPU adapter available: %w", err))
	}
	gp.GPU = ad
	gp.Limits = ad.GetLimits()
	if Debug {
		info := ad.GetInfo()
		slog.Info("gpu: adapter acquired", "vendor", info.VendorName, "adapter", info.Name)
	}
	return gp, nil
}

// NoDisplayGPU returns a GPU and Device for headless (offscreen)
// rendering, with no surface attached.
func NoDisplayGPU() (*GPU, *Device, error) {
	gp, err := NewGPU(nil)
	if err != nil {
		return nil, nil, err
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, nil, err
	}
	return gp, dev, nil
}

// Release releases the adapter. Surfaces and devices created from this
// GPU must be released first.
func (gp *GPU) Release() {
	if gp.GPU == nil {
		return
	}
	gp.GPU.Release()
	gp.GPU = nil
}
