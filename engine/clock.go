// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "time"

// Clock tracks monotonic elapsed time and the per-tick delta, used for
// frame-rate-independent animation and frame pacing. The time source
// is replaceable for tests.
type Clock struct {
	// MaxDelta caps the per-tick delta, so the first tick after a long
	// stall (window suspended, debugger pause) does not step animation
	// by the whole gap. Default 250ms.
	MaxDelta time.Duration

	// FPSLimit is the target frame rate for the native pacing loop;
	// 0 means unpaced (vsync only).
	FPSLimit int

	// now is the time source, time.Now unless replaced for tests.
	now func() time.Time

	start time.Time
	last  time.Time

	elapsed time.Duration
	delta   time.Duration

	ticks uint64
}

// NewClock returns a Clock using the real time source, started now.
func NewClock() *Clock {
	ck := &Clock{now: time.Now}
	ck.Init()
	return ck
}

// Init resets the clock to zero elapsed time with defaults,
// setting the time source if not already set.
func (ck *Clock) Init() {
	if ck.now == nil {
		ck.now = time.Now
	}
	if ck.MaxDelta == 0 {
		ck.MaxDelta = 250 * time.Millisecond
	}
	ck.start = ck.now()
	ck.last = ck.start
	ck.elapsed = 0
	ck.delta = 0
	ck.ticks = 0
}

// SetNow replaces the time source, for fixed-timestep offscreen
// capture and for tests. Call before [Clock.Init] (or [Engine.Init],
// which re-inits the clock) so the start time comes from the new
// source.
func (ck *Clock) SetNow(now func() time.Time) {
	ck.now = now
}

// Tick advances the clock by one frame, recomputing the elapsed time
// and the inter-frame delta. The delta is clamped to MaxDelta.
func (ck *Clock) Tick() {
	t := ck.now()
	ck.delta = t.Sub(ck.last)
	if ck.delta > ck.MaxDelta {
		ck.delta = ck.MaxDelta
	}
	ck.last = t
	ck.elapsed = t.Sub(ck.start)
	ck.ticks++
}

// Delta returns the time between the last two ticks, clamped to
// MaxDelta.
func (ck *Clock) Delta() time.Duration { return ck.delta }

// DeltaSeconds returns the last tick delta in seconds, for scaling
// animation.
func (ck *Clock) DeltaSeconds() float32 { return float32(ck.delta.Seconds()) }

// Elapsed returns the total monotonic time since the clock started.
func (ck *Clock) Elapsed() time.Duration { return ck.elapsed }

// Ticks returns the number of Tick calls since Init.
func (ck *Clock) Ticks() uint64 { return ck.ticks }

// Pace returns how long the native scheduling shell should sleep
// before the next tick to hold FPSLimit, 0 when unpaced or already
// behind.
func (ck *Clock) Pace() time.Duration {
	if ck.FPSLimit <= 0 {
		return 0
	}
	interval := time.Second / time.Duration(ck.FPSLimit)
	used := ck.now().Sub(ck.last)
	if used >= interval {
		return 0
	}
	return interval - used
}
