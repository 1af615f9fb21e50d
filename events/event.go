// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the platform-neutral event model for the engine:
// the [Event] value type produced by the platform drivers, the lock-free
// [Queue] that carries events from the driver to the engine, and the
// [State] accumulator that turns raw events into a per-frame [Snapshot].
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/obelisk3d/obelisk/math32"
)

// Types is the type of an [Event]. It covers the input and window
// lifecycle events the engine core reacts to; anything else a platform
// produces is dropped at the driver level.
type Types int32

const (
	// UnknownType is the zero value, not a valid event.
	UnknownType Types = iota

	// KeyDown happens when a key is pressed. Repeats while held are
	// delivered as additional KeyDown events on some platforms and are
	// absorbed by the held-key set.
	KeyDown

	// KeyUp happens when a key is released.
	KeyUp

	// MouseDown happens when a mouse button is pressed. See Button.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button.
	MouseUp

	// MouseMove reports pointer motion. Pos is the new position and
	// Delta the motion since the last event. Not unique: multiple moves
	// within one tick coalesce into a single accumulated delta.
	MouseMove

	// Scroll reports scroll wheel motion in Delta. Coalesces like MouseMove.
	Scroll

	// WindowResize reports a new window/canvas size in Size.
	WindowResize

	// WindowFocus happens when the window gains focus or becomes visible.
	WindowFocus

	// WindowBlur happens when the window loses focus or is hidden.
	WindowBlur

	// WindowClose reports a close request from the platform.
	WindowClose
)

var typeNames = map[Types]string{
	KeyDown:      "KeyDown",
	KeyUp:        "KeyUp",
	MouseDown:    "MouseDown",
	MouseUp:      "MouseUp",
	MouseMove:    "MouseMove",
	Scroll:       "Scroll",
	WindowResize: "WindowResize",
	WindowFocus:  "WindowFocus",
	WindowBlur:   "WindowBlur",
	WindowClose:  "WindowClose",
}

func (t Types) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Types(%d)", int32(t))
}

// Buttons identifies a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Event is a single platform event, as a plain value.
// Only the fields relevant for the given Type are set.
type Event struct {
	// Type of event.
	Type Types

	// Code is the physical key, for KeyDown / KeyUp.
	Code Code

	// Button is the mouse button, for MouseDown / MouseUp.
	Button Buttons

	// Pos is the pointer position in surface pixels.
	Pos math32.Vector2

	// Delta is the pointer motion for MouseMove, or the scroll
	// amount for Scroll.
	Delta math32.Vector2

	// Size is the new window size, for WindowResize.
	Size image.Point

	// Time the event was recorded by the driver.
	Time time.Time
}

// Key returns a key event of the given type.
func Key(typ Types, code Code) Event {
	return Event{Type: typ, Code: code, Time: time.Now()}
}

// MouseButton returns a mouse button event at the given position.
func MouseButton(typ Types, button Buttons, pos math32.Vector2) Event {
	return Event{Type: typ, Button: button, Pos: pos, Time: time.Now()}
}

// MouseMoved returns a pointer motion event.
func MouseMoved(pos, delta math32.Vector2) Event {
	return Event{Type: MouseMove, Pos: pos, Delta: delta, Time: time.Now()}
}

// Scrolled returns a scroll event.
func Scrolled(pos, delta math32.Vector2) Event {
	return Event{Type: Scroll, Pos: pos, Delta: delta, Time: time.Now()}
}

// Resize returns a window resize event for the given new size.
func Resize(size image.Point) Event {
	return Event{Type: WindowResize, Size: size, Time: time.Now()}
}

// Window returns a window lifecycle event (focus, blur, close).
func Window(typ Types) Event {
	return Event{Type: typ, Time: time.Now()}
}
