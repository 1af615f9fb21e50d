// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"maps"

	"github.com/obelisk3d/obelisk/math32"
)

// State accumulates raw platform events into per-frame input state.
// The engine records each drained event with [State.Record] and then
// calls [State.Poll] exactly once per tick to obtain the [Snapshot]
// consumed by the frame pipeline. State is owned by the engine's render
// goroutine and is not safe for concurrent use.
type State struct {
	held    map[Code]bool
	pointer math32.Vector2
	delta   math32.Vector2
	scroll  math32.Vector2
	resized bool
	size    image.Point
}

// NewState returns a new input [State].
func NewState() *State {
	st := &State{}
	st.Init()
	return st
}

// Init initializes the state, required before first use when not made
// by [NewState].
func (st *State) Init() {
	st.held = make(map[Code]bool)
}

// Record accumulates the given event. Multiple events of the same kind
// within one tick coalesce: pointer and scroll deltas add up, and only
// the most recent resize size is retained.
func (st *State) Record(e Event) {
	switch e.Type {
	case KeyDown:
		st.held[e.Code] = true
	case KeyUp:
		delete(st.held, e.Code)
	case MouseMove:
		st.pointer = e.Pos
		st.delta = st.delta.Add(e.Delta)
	case Scroll:
		st.scroll = st.scroll.Add(e.Delta)
	case WindowResize:
		st.resized = true
		st.size = e.Size
	case WindowBlur:
		// keys released while unfocused produce no KeyUp, so drop
		// the held set rather than leave keys stuck down.
		clear(st.held)
	}
}

// Poll returns a snapshot reflecting all events recorded since the
// previous Poll, and resets the delta fields (pointer delta, scroll
// delta, resized flag). The held-key set and pointer position carry
// over from tick to tick.
func (st *State) Poll() Snapshot {
	snap := Snapshot{
		held:         maps.Clone(st.held),
		Pointer:      st.pointer,
		PointerDelta: st.delta,
		ScrollDelta:  st.scroll,
		Resized:      st.resized,
		Size:         st.size,
	}
	st.delta = math32.Vector2{}
	st.scroll = math32.Vector2{}
	st.resized = false
	return snap
}

// Snapshot is the input state for one frame, returned by [State.Poll].
// It is a plain value owned by the engine core; the frame pipeline reads
// it during one render call and must not retain it across frames.
type Snapshot struct {
	// Pointer is the current pointer position in surface pixels.
	Pointer math32.Vector2

	// PointerDelta is the accumulated pointer motion since the last poll.
	PointerDelta math32.Vector2

	// ScrollDelta is the accumulated scroll motion since the last poll.
	ScrollDelta math32.Vector2

	// Resized reports whether a window resize happened since the last
	// poll, with Size holding the most recent size.
	Resized bool

	// Size is the window size from the most recent resize event.
	Size image.Point

	held map[Code]bool
}

// Held returns whether the given key is currently held down.
func (sn *Snapshot) Held(code Code) bool {
	return sn.held[code]
}

// AnyHeld returns whether any key is currently held down.
func (sn *Snapshot) AnyHeld() bool {
	return len(sn.held) > 0
}
