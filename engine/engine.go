// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the platform-independent core of the
// render loop: the lifecycle state machine, the per-tick contract
// (drain events, poll input, snapshot controls, acquire, render,
// present), and the surface error recovery policy. The scheduling
// shells in driver/ wrap [Engine.Tick] for their platform: a blocking
// paced loop on desktop, a requestAnimationFrame callback chain on
// web, and a fixed frame count offscreen.
package engine

import (
	"sync/atomic"

	"github.com/obelisk3d/obelisk/base/errors"
	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/gpu"
)

// Renderer is the frame pipeline contract: per-frame GPU work as a
// function of the acquired frame, the input snapshot, the clock, and
// the control values, plus internally owned GPU resources. Errors are
// always reported to the engine, which classifies retry versus
// terminate.
type Renderer interface {
	// Init creates the renderer's GPU resources against the engine's
	// target. Called once, between the Initializing and Running
	// stages; an error is fatal to the session.
	Init(eg *Engine) error

	// Render records and submits one frame. If it returns without
	// presenting or dropping the frame, the engine presents it.
	Render(fr *gpu.Frame, in *events.Snapshot, ck *Clock, vals Values) error

	// Release frees the renderer's GPU resources, called once at
	// termination.
	Release()
}

// Engine drives one render session over a [gpu.Renderer] target
// (window surface or offscreen texture). All methods except the
// control staging and event queue are called from the single logical
// render goroutine.
type Engine struct {
	// Target is the render target frames are acquired from.
	Target gpu.Renderer

	// Events receives platform events from the scheduling shell.
	// Drained into Input at the start of every tick.
	Events events.Queue

	// Input accumulates drained events into per-tick snapshots.
	Input events.State

	// Clock is the engine clock, ticked once per produced frame.
	Clock Clock

	// Controls is the tunable state shared with a control overlay.
	Controls Controls

	// renderer is the frame pipeline, set by Init.
	renderer Renderer

	// stage is the lifecycle state, read atomically: the web shell's
	// init goroutine publishes Running while the callback chain reads.
	stage atomic.Int32

	// fatalErr records the error that terminated the session, if any.
	fatalErr error
}

// NewEngine returns an engine over the given render target, in the
// Uninitialized stage.
func NewEngine(target gpu.Renderer) *Engine {
	eg := &Engine{Target: target}
	eg.Events.Init()
	eg.Input.Init()
	eg.Clock.Init()
	return eg
}

// Stage returns the current lifecycle stage.
func (eg *Engine) Stage() Stage { return Stage(eg.stage.Load()) }

func (eg *Engine) setStage(st Stage) { eg.stage.Store(int32(st)) }

// Err returns the fatal error that terminated the session, nil if the
// session is live or ended cleanly.
func (eg *Engine) Err() error { return eg.fatalErr }

// Init runs the renderer's resource initialization and transitions
// Uninitialized → Initializing → Running. On web the shell calls this
// from a goroutine, as device grant suspends; on desktop it completes
// inline. An initialization error is fatal.
func (eg *Engine) Init(r Renderer) error {
	if eg.Stage() != Uninitialized {
		return errors.Log(errors.Newf("engine: Init in stage %v", eg.Stage()))
	}
	eg.setStage(Initializing)
	eg.renderer = r
	if err := r.Init(eg); err != nil {
		eg.fatal(err)
		return err
	}
	eg.Clock.Init() // frame zero starts now, not at construction
	eg.setStage(Running)
	return nil
}

// Suspend pauses frame production, on loss of window focus or
// visibility. Input continues to be recorded and is visible to the
// first post-resume tick. No-op outside Running.
func (eg *Engine) Suspend() {
	if eg.Stage() == Running {
		eg.setStage(Suspended)
	}
}

// Resume restarts frame production after Suspend. The first resumed
// tick's clock delta is clamped, so animation does not jump by the
// suspended interval. No-op outside Suspended.
func (eg *Engine) Resume() {
	if eg.Stage() == Suspended {
		eg.setStage(Running)
	}
}

// Terminate ends the session: the current tick is the last, and the
// scheduling shell stops on seeing the Terminated stage. Idempotent.
func (eg *Engine) Terminate() {
	if eg.Stage() != Terminated {
		eg.setStage(Terminated)
	}
}

// fatal records err, logs it, and terminates the session.
func (eg *Engine) fatal(err error) {
	if eg.fatalErr == nil {
		eg.fatalErr = err
	}
	errors.Log(err)
	eg.Terminate()
}

// Shutdown releases the renderer and the render target, called by the
// scheduling shell after the loop exits. Safe after Terminate.
func (eg *Engine) Shutdown() {
	if eg.renderer != nil {
		eg.renderer.Release()
		eg.renderer = nil
	}
	if eg.Target != nil {
		eg.Target.Release()
	}
}

// drainEvents moves all pending platform events into the input state
// and handles the lifecycle ones: resize reconfigures the target
// before this tick's acquire, focus drives Suspend/Resume, and close
// terminates.
func (eg *Engine) drainEvents() {
	for {
		ev, ok := eg.Events.NextEvent()
		if !ok {
			return
		}
		eg.Input.Record(ev)
		switch ev.Type {
		case events.WindowResize:
			eg.Target.SetSize(ev.Size)
		case events.WindowFocus:
			eg.Resume()
		case events.WindowBlur:
			eg.Suspend()
		case events.WindowClose:
			eg.Terminate()
		}
	}
}

// Tick runs at most one frame: drain events, and in Running, poll
// input, snapshot controls, advance the clock, acquire a frame with
// the bounded reconfigure-and-retry from the surface error taxonomy,
// invoke the render contract, and present. In Suspended it only
// drains events; in Terminated it does nothing. The returned error is
// non-nil only when the tick was fatal and the session is over.
func (eg *Engine) Tick() error {
	switch eg.Stage() {
	case Uninitialized, Initializing:
		// queued events are retained for the first running tick
		return nil
	case Terminated:
		return eg.fatalErr
	}
	eg.drainEvents()
	if eg.Stage() != Running {
		return eg.fatalErr
	}

	snap := eg.Input.Poll()
	vals := eg.Controls.Snapshot()
	eg.Clock.Tick()

	fr, err := eg.Target.AcquireFrame()
	if err != nil {
		if !gpu.Recoverable(err) {
			eg.fatal(err)
			return err
		}
		// outdated or lost: reconfigure and retry once in this tick
		eg.Target.Reconfigure()
		fr, err = eg.Target.AcquireFrame()
		if err != nil {
			eg.fatal(errors.Newf("engine: acquire failed after reconfigure: %w", err))
			return eg.fatalErr
		}
	}

	if err := eg.renderer.Render(fr, &snap, &eg.Clock, vals); err != nil {
		if !fr.Consumed() {
			fr.Drop()
		}
		if gpu.Recoverable(err) {
			// surface-related: reconfigure and retry next tick
			errors.Log(err)
			eg.Target.Reconfigure()
			return nil
		}
		eg.fatal(err)
		return err
	}
	if !fr.Consumed() {
		if err := fr.Present(); err != nil {
			eg.fatal(err)
			return err
		}
	}
	return nil
}
