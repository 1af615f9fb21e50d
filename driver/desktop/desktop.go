// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package desktop is the native scheduling shell: a glfw window whose
// callbacks feed the engine's event queue, driven by a blocking loop
// with explicit sleep pacing. It shares the per-tick contract with the
// web and offscreen shells; only the scheduling differs.
package desktop

import (
	"image"
	"runtime"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/obelisk3d/obelisk/engine"
	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/gpu"
	"github.com/obelisk3d/obelisk/math32"
)

func init() {
	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()
}

// suspendPoll is how long the loop sleeps between event polls while
// rendering is suspended.
const suspendPoll = 50 * time.Millisecond

// Run opens a window per the config and drives the engine loop with
// the given renderer until the session terminates. It blocks the
// calling goroutine, which must be the main one, and returns the fatal
// error if the session ended on one.
func Run(cf *engine.Config, r engine.Renderer) error {
	if err := gpu.Init(); err != nil {
		return err
	}
	defer gpu.Terminate()

	window, err := gpu.GLFWCreateWindow(cf.Size(), cf.Title)
	if err != nil {
		return err
	}
	defer window.Destroy()

	wsurf, fbSize := gpu.WindowSurface(window)
	gp, err := gpu.NewGPU(wsurf)
	if err != nil {
		return err
	}
	defer gp.Release()

	sf, err := gpu.NewSurface(gp, wsurf, fbSize, cf.Samples, wgpu.TextureFormatDepth32Float)
	if err != nil {
		return err
	}
	if !cf.VSync {
		sf.SetPresentMode(wgpu.PresentModeImmediate)
	}
	rd := sf.Render()
	rd.ClearColor = cf.Clear()

	eng := engine.NewEngine(sf)
	eng.Clock.FPSLimit = cf.FPSLimit

	wn := &winEvents{eng: eng, window: window}
	wn.connectCallbacks()

	if err := eng.Init(r); err != nil {
		eng.Shutdown()
		return err
	}
	for eng.Stage() != engine.Terminated {
		if window.ShouldClose() {
			eng.Events.Send(events.Window(events.WindowClose))
		}
		glfw.PollEvents()
		if err := eng.Tick(); err != nil {
			break
		}
		if eng.Stage() == engine.Suspended {
			time.Sleep(suspendPoll)
		} else if pace := eng.Clock.Pace(); pace > 0 {
			time.Sleep(pace)
		}
	}
	eng.Shutdown()
	return eng.Err()
}

// winEvents holds the glfw callback state: the cursor tracking needed to
// produce pointer deltas and the cursor lock for mouse-look.
type winEvents struct {
	eng    *engine.Engine
	window *glfw.Window

	// lastPos is the previous cursor position, for deltas.
	lastPos math32.Vector2
	havePos bool

	// locked is whether the cursor is captured for mouse-look:
	// engaged on click, released on escape.
	locked bool
}

func (wn *winEvents) connectCallbacks() {
	w := wn.window
	w.SetFramebufferSizeCallback(wn.fbResized)
	w.SetFocusCallback(wn.focused)
	w.SetIconifyCallback(wn.iconified)
	w.SetKeyCallback(wn.keyEvent)
	w.SetMouseButtonCallback(wn.mouseButtonEvent)
	w.SetCursorPosCallback(wn.cursorPosEvent)
	w.SetScrollCallback(wn.scrollEvent)
}

func (wn *winEvents) fbResized(gw *glfw.Window, width, height int) {
	wn.eng.Events.Send(events.Resize(image.Point{width, height}))
}

func (wn *winEvents) focused(gw *glfw.Window, focused bool) {
	if focused {
		wn.eng.Events.Send(events.Window(events.WindowFocus))
	} else {
		wn.eng.Events.Send(events.Window(events.WindowBlur))
	}
}

func (wn *winEvents) iconified(gw *glfw.Window, iconified bool) {
	if iconified {
		wn.eng.Events.Send(events.Window(events.WindowBlur))
	} else {
		wn.eng.Events.Send(events.Window(events.WindowFocus))
	}
}

func (wn *winEvents) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	code := glfwKeyCode(ky)
	if code == events.CodeUnknown {
		return
	}
	switch action {
	case glfw.Press:
		if code == events.CodeEscape {
			wn.setCursorLock(false)
		}
		wn.eng.Events.Send(events.Key(events.KeyDown, code))
	case glfw.Release:
		wn.eng.Events.Send(events.Key(events.KeyUp, code))
	}
}

func (wn *winEvents) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	if action == glfw.Press && !wn.locked {
		wn.setCursorLock(true)
	}
	but := events.Left
	switch button {
	case glfw.MouseButtonMiddle:
		but = events.Middle
	case glfw.MouseButtonRight:
		but = events.Right
	}
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
	}
	wn.eng.Events.Send(events.MouseButton(typ, but, wn.lastPos))
}

func (wn *winEvents) cursorPosEvent(gw *glfw.Window, x, y float64) {
	pos := math32.Vec2(float32(x), float32(y))
	var delta math32.Vector2
	if wn.havePos {
		delta = pos.Sub(wn.lastPos)
	}
	wn.lastPos = pos
	wn.havePos = true
	wn.eng.Events.Send(events.MouseMoved(pos, delta))
}

func (wn *winEvents) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	wn.eng.Events.Send(events.Scrolled(wn.lastPos, math32.Vec2(float32(xoff), float32(yoff))))
}

// setCursorLock captures or releases the cursor for mouse-look.
func (wn *winEvents) setCursorLock(lock bool) {
	wn.locked = lock
	if lock {
		wn.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		wn.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
