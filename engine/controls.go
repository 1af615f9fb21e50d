// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"maps"
	"slices"
	"sync"

	"github.com/obelisk3d/obelisk/math32"
)

// Kinds is the type of a control value.
type Kinds int32

const (
	// Float is a bounded float32 slider value.
	Float Kinds = iota

	// Bool is a toggle.
	Bool

	// Int is a bounded integer value.
	Int

	// Choice is one option from a fixed string list.
	Choice
)

func (kd Kinds) String() string {
	switch kd {
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Choice:
		return "Choice"
	}
	return "InvalidKind"
}

// Value is one named, typed control value. Only the field matching
// Kind is meaningful.
type Value struct {
	Name string
	Kind Kinds

	Float float32
	Bool  bool
	Int   int

	// Choice is the selected option, one of Options.
	Choice string

	// Min, Max, Step bound Float and Int values (Step for Int is the
	// rounded step).
	Min, Max, Step float32

	// Options are the valid Choice strings.
	Options []string
}

// Values is a frame-boundary snapshot of the control state, read by
// the render contract. Missing names return zero values, so renderers
// degrade gracefully when a control was never declared.
type Values map[string]Value

// Float returns the named float control, 0 if not declared.
func (vs Values) Float(name string) float32 { return vs[name].Float }

// Bool returns the named toggle, false if not declared.
func (vs Values) Bool(name string) bool { return vs[name].Bool }

// Int returns the named int control, 0 if not declared.
func (vs Values) Int(name string) int { return vs[name].Int }

// Choice returns the named choice, "" if not declared.
func (vs Values) Choice(name string) string { return vs[name].Choice }

// Controls is the set of engine-tunable values exposed to a control
// overlay. The engine declares the recognized names and kinds at
// startup; the overlay writes on its own schedule into a staging area;
// the engine applies all staged writes at the frame boundary via
// [Controls.Snapshot], so a frame never sees a partial update.
// Writes to undeclared names or with the wrong kind are ignored.
type Controls struct {
	mu sync.Mutex

	// committed is the state the engine last snapshotted.
	committed map[string]Value

	// staged holds overlay writes not yet applied.
	staged map[string]Value

	// order is the declaration order, for stable overlay layout.
	order []string
}

func (cs *Controls) init() {
	if cs.committed == nil {
		cs.committed = map[string]Value{}
		cs.staged = map[string]Value{}
	}
}

func (cs *Controls) declare(v Value) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.init()
	if _, ok := cs.committed[v.Name]; !ok {
		cs.order = append(cs.order, v.Name)
	}
	cs.committed[v.Name] = v
}

// AddFloat declares a float control with the given initial value and
// slider bounds.
func (cs *Controls) AddFloat(name string, val, min, max, step float32) {
	cs.declare(Value{Name: name, Kind: Float, Float: val, Min: min, Max: max, Step: step})
}

// AddBool declares a toggle control.
func (cs *Controls) AddBool(name string, val bool) {
	cs.declare(Value{Name: name, Kind: Bool, Bool: val})
}

// AddInt declares an integer control with the given bounds.
func (cs *Controls) AddInt(name string, val, min, max int) {
	cs.declare(Value{Name: name, Kind: Int, Int: val, Min: float32(min), Max: float32(max), Step: 1})
}

// AddChoice declares a choice control; val must be one of options.
func (cs *Controls) AddChoice(name string, val string, options ...string) {
	cs.declare(Value{Name: name, Kind: Choice, Choice: val, Options: options})
}

// stage records an overlay write if the name is declared with the
// given kind, otherwise ignores it.
func (cs *Controls) stage(name string, kind Kinds, set func(*Value)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.init()
	cur, ok := cs.committed[name]
	if !ok || cur.Kind != kind {
		return
	}
	v, ok := cs.staged[name]
	if !ok {
		v = cur
	}
	set(&v)
	cs.staged[name] = v
}

// SetFloat stages a float write, clamped to the declared bounds.
func (cs *Controls) SetFloat(name string, val float32) {
	cs.stage(name, Float, func(v *Value) {
		v.Float = math32.Clamp(val, v.Min, v.Max)
	})
}

// SetBool stages a toggle write.
func (cs *Controls) SetBool(name string, val bool) {
	cs.stage(name, Bool, func(v *Value) { v.Bool = val })
}

// SetInt stages an integer write, clamped to the declared bounds.
func (cs *Controls) SetInt(name string, val int) {
	cs.stage(name, Int, func(v *Value) {
		v.Int = int(math32.Clamp(float32(val), v.Min, v.Max))
	})
}

// SetChoice stages a choice write; values not in the declared options
// are ignored.
func (cs *Controls) SetChoice(name string, val string) {
	cs.stage(name, Choice, func(v *Value) {
		if slices.Contains(v.Options, val) {
			v.Choice = val
		}
	})
}

// Snapshot applies all staged overlay writes and returns a copy of the
// full control state, called by the engine exactly once per tick at
// the frame boundary.
func (cs *Controls) Snapshot() Values {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.init()
	for name, v := range cs.staged {
		cs.committed[name] = v
	}
	clear(cs.staged)
	return maps.Clone(cs.committed)
}

// Declared returns the control declarations in declaration order, with
// current committed values, for building an overlay.
func (cs *Controls) Declared() []Value {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.init()
	vs := make([]Value, len(cs.order))
	for i, name := range cs.order {
		vs[i] = cs.committed[name]
	}
	return vs
}
