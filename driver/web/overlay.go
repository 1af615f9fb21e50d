// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/obelisk3d/obelisk/engine"
)

// mountOverlay builds the DOM control panel from the engine's declared
// controls. Inputs write into the control staging area on their own
// schedule; the engine applies them at its next frame boundary, so the
// overlay never blocks on frame timing.
func mountOverlay(eng *engine.Engine) {
	decls := eng.Controls.Declared()
	if len(decls) == 0 {
		return
	}
	doc := js.Global().Get("document")
	panel := doc.Call("createElement", "div")
	panel.Set("id", "controls")
	style := panel.Get("style")
	style.Set("position", "fixed")
	style.Set("top", "8px")
	style.Set("right", "8px")
	style.Set("padding", "8px")
	style.Set("background", "rgba(0, 0, 0, 0.6)")
	style.Set("color", "#fff")
	style.Set("font", "12px sans-serif")
	style.Set("zIndex", "10")

	for _, v := range decls {
		panel.Call("appendChild", controlRow(doc, eng, v))
	}
	doc.Get("body").Call("appendChild", panel)
}

func controlRow(doc js.Value, eng *engine.Engine, v engine.Value) js.Value {
	row := doc.Call("createElement", "label")
	rstyle := row.Get("style")
	rstyle.Set("display", "block")
	rstyle.Set("margin", "4px 0")
	row.Set("textContent", v.Name+" ")

	input := doc.Call("createElement", inputTag(v))
	name := v.Name

	switch v.Kind {
	case engine.Float:
		input.Set("type", "range")
		input.Set("min", fmt.Sprintf("%g", v.Min))
		input.Set("max", fmt.Sprintf("%g", v.Max))
		input.Set("step", fmt.Sprintf("%g", v.Step))
		input.Set("value", fmt.Sprintf("%g", v.Float))
		input.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
			if f, err := strconv.ParseFloat(this.Get("value").String(), 32); err == nil {
				eng.Controls.SetFloat(name, float32(f))
			}
			return nil
		}))
	case engine.Bool:
		input.Set("type", "checkbox")
		input.Set("checked", v.Bool)
		input.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
			eng.Controls.SetBool(name, this.Get("checked").Bool())
			return nil
		}))
	case engine.Int:
		input.Set("type", "number")
		input.Set("min", fmt.Sprintf("%g", v.Min))
		input.Set("max", fmt.Sprintf("%g", v.Max))
		input.Set("step", "1")
		input.Set("value", strconv.Itoa(v.Int))
		input.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
			if n, err := strconv.Atoi(this.Get("value").String()); err == nil {
				eng.Controls.SetInt(name, n)
			}
			return nil
		}))
	case engine.Choice:
		for _, opt := range v.Options {
			el := doc.Call("createElement", "option")
			el.Set("value", opt)
			el.Set("textContent", opt)
			if opt == v.Choice {
				el.Set("selected", true)
			}
			input.Call("appendChild", el)
		}
		input.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
			eng.Controls.SetChoice(name, this.Get("value").String())
			return nil
		}))
	}
	row.Call("appendChild", input)
	return row
}

func inputTag(v engine.Value) string {
	if v.Kind == engine.Choice {
		return "select"
	}
	return "input"
}
