// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package web is the browser scheduling shell: a canvas-backed surface
// driven by a requestAnimationFrame callback chain, with GPU context
// creation running asynchronously in a goroutine while the callbacks
// idle, and a DOM control overlay bound to the engine's control state.
// It shares the per-tick contract with the desktop and offscreen
// shells; only the scheduling differs.
package web

import (
	"image"
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
	"github.com/obelisk3d/obelisk/engine"
	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/gpu"
	"github.com/obelisk3d/obelisk/math32"
)

// Run mounts the engine on the page canvas and drives it with the
// given renderer until the session terminates. It blocks the calling
// goroutine and returns the fatal error if the session ended on one.
func Run(cf *engine.Config, r engine.Renderer) error {
	js.Global().Get("document").Set("title", cf.Title)

	wsurf := gpu.Instance().CreateSurface(&wgpu.SurfaceDescriptor{})
	canvas := wsurf.CanvasContext().Get("canvas")

	eng := engine.NewEngine(nil)
	sh := &shell{eng: eng, canvas: canvas}
	size := sh.resizeCanvas()
	sh.addListeners()

	done := make(chan struct{})

	// adapter and device grants suspend on browser promises, so init
	// runs off the callback chain; the engine stays in Initializing
	// and the frame callbacks idle until Running.
	go func() {
		gp, err := gpu.NewGPU(wsurf)
		if err != nil {
			errors.Log(err)
			eng.Terminate()
			return
		}
		sf, err := gpu.NewSurface(gp, wsurf, size, cf.Samples, wgpu.TextureFormatDepth32Float)
		if err != nil {
			errors.Log(err)
			eng.Terminate()
			return
		}
		sf.Render().ClearColor = cf.Clear()
		eng.Target = sf
		if err := eng.Init(r); err != nil {
			return
		}
		mountOverlay(eng)
	}()

	// requestAnimationFrame chain: one engine tick per browser frame;
	// the chain ends by not rescheduling itself once Terminated.
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		if eng.Stage() == engine.Terminated {
			f.Release()
			close(done)
			return nil
		}
		eng.Tick()
		js.Global().Call("requestAnimationFrame", f)
		return nil
	})
	js.Global().Call("requestAnimationFrame", f)

	<-done
	eng.Shutdown()
	return eng.Err()
}

// shell holds the DOM listener state feeding the engine's event queue.
type shell struct {
	eng    *engine.Engine
	canvas js.Value

	// dpr is the device pixel ratio applied to CSS pixel coordinates.
	dpr float32

	lastPos math32.Vector2
}

// resizeCanvas sizes the canvas backing store to the window in device
// pixels, with CSS size in logical pixels, and returns the pixel size.
func (sh *shell) resizeCanvas() image.Point {
	g := js.Global()
	sh.dpr = float32(g.Get("devicePixelRatio").Float())
	w, h := g.Get("innerWidth").Int(), g.Get("innerHeight").Int()
	sz := image.Point{
		X: int(math32.Ceil(float32(w) * sh.dpr)),
		Y: int(math32.Ceil(float32(h) * sh.dpr)),
	}
	sh.canvas.Set("width", sz.X)
	sh.canvas.Set("height", sz.Y)
	// style size in CSS pixels derived back from the device pixels,
	// avoiding blur on fractional device pixel ratios
	cstyle := sh.canvas.Get("style")
	cstyle.Set("width", jsPx(float32(sz.X)/sh.dpr))
	cstyle.Set("height", jsPx(float32(sz.Y)/sh.dpr))
	return sz
}

func (sh *shell) addListeners() {
	g := js.Global()
	g.Call("addEventListener", "resize", js.FuncOf(sh.onResize))
	g.Call("addEventListener", "keydown", js.FuncOf(sh.onKeyDown))
	g.Call("addEventListener", "keyup", js.FuncOf(sh.onKeyUp))
	g.Call("addEventListener", "mousedown", js.FuncOf(sh.onMouseDown))
	g.Call("addEventListener", "mouseup", js.FuncOf(sh.onMouseUp))
	g.Call("addEventListener", "mousemove", js.FuncOf(sh.onMouseMove))
	g.Call("addEventListener", "wheel", js.FuncOf(sh.onWheel))
	g.Call("addEventListener", "contextmenu", js.FuncOf(sh.onContextMenu))
	g.Get("document").Call("addEventListener", "visibilitychange", js.FuncOf(sh.onVisibilityChange))
}

func (sh *shell) onResize(this js.Value, args []js.Value) any {
	sz := sh.resizeCanvas()
	sh.eng.Events.Send(events.Resize(sz))
	return nil
}

func (sh *shell) onKeyDown(this js.Value, args []js.Value) any {
	e := args[0]
	code := domKeyCode(e.Get("code").String())
	if code == events.CodeUnknown {
		return nil
	}
	if !e.Get("repeat").Bool() {
		sh.eng.Events.Send(events.Key(events.KeyDown, code))
	}
	e.Call("preventDefault")
	return nil
}

func (sh *shell) onKeyUp(this js.Value, args []js.Value) any {
	e := args[0]
	code := domKeyCode(e.Get("code").String())
	if code == events.CodeUnknown {
		return nil
	}
	sh.eng.Events.Send(events.Key(events.KeyUp, code))
	e.Call("preventDefault")
	return nil
}

// eventPos converts CSS client coordinates to canvas device pixels.
func (sh *shell) eventPos(e js.Value) math32.Vector2 {
	x := float32(e.Get("clientX").Float()) * sh.dpr
	y := float32(e.Get("clientY").Float()) * sh.dpr
	return math32.Vec2(x, y)
}

func domButton(e js.Value) events.Buttons {
	switch e.Get("button").Int() {
	case 1:
		return events.Middle
	case 2:
		return events.Right
	}
	return events.Left
}

func (sh *shell) onMouseDown(this js.Value, args []js.Value) any {
	e := args[0]
	// capture the pointer for mouse-look
	if sh.canvas.Get("requestPointerLock").Truthy() {
		sh.canvas.Call("requestPointerLock")
	}
	sh.eng.Events.Send(events.MouseButton(events.MouseDown, domButton(e), sh.eventPos(e)))
	e.Call("preventDefault")
	return nil
}

func (sh *shell) onMouseUp(this js.Value, args []js.Value) any {
	e := args[0]
	sh.eng.Events.Send(events.MouseButton(events.MouseUp, domButton(e), sh.eventPos(e)))
	e.Call("preventDefault")
	return nil
}

func (sh *shell) onMouseMove(this js.Value, args []js.Value) any {
	e := args[0]
	pos := sh.eventPos(e)
	// movementX/Y keep reporting under pointer lock, when clientX/Y
	// freeze
	delta := math32.Vec2(
		float32(e.Get("movementX").Float())*sh.dpr,
		float32(e.Get("movementY").Float())*sh.dpr,
	)
	sh.lastPos = pos
	sh.eng.Events.Send(events.MouseMoved(pos, delta))
	return nil
}

func (sh *shell) onWheel(this js.Value, args []js.Value) any {
	e := args[0]
	delta := math32.Vec2(float32(e.Get("deltaX").Float()), float32(e.Get("deltaY").Float()))
	sh.eng.Events.Send(events.Scrolled(sh.eventPos(e), delta))
	e.Call("preventDefault")
	return nil
}

func (sh *shell) onContextMenu(this js.Value, args []js.Value) any {
	args[0].Call("preventDefault")
	return nil
}

func (sh *shell) onVisibilityChange(this js.Value, args []js.Value) any {
	if js.Global().Get("document").Get("hidden").Bool() {
		sh.eng.Events.Send(events.Window(events.WindowBlur))
	} else {
		sh.eng.Events.Send(events.Window(events.WindowFocus))
	}
	return nil
}
