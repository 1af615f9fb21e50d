// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/obelisk3d/obelisk/base/errors"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// other platforms (web, offscreen) provide their own Init() and Terminate().

// Init initializes the windowing system for display-enabled use,
// using glfw. Must be called before any window or surface creation.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the windowing system. Call as the last thing
// before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// WindowSurface creates a WebGPU surface for the given glfw window,
// returning the surface and the framebuffer size in pixels, which can
// differ from the requested window size on high-DPI displays.
func WindowSurface(window *glfw.Window) (*wgpu.Surface, image.Point) {
	inst := Instance()
	surface := inst.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	width, height := window.GetFramebufferSize()
	return surface, image.Point{width, height}
}

// GLFWCreateWindow is a helper for simple examples and tests that
// makes a new glfw window with WebGPU-compatible hints.
// Call [Init] first.
func GLFWCreateWindow(size image.Point, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, errors.Log(err)
	}
	return window, nil
}
