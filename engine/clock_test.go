// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockDelta(t *testing.T) {
	now := time.Unix(0, 0)
	ck := &Clock{}
	ck.SetNow(func() time.Time { return now })
	ck.Init()

	now = now.Add(16 * time.Millisecond)
	ck.Tick()
	assert.Equal(t, 16*time.Millisecond, ck.Delta())
	assert.Equal(t, 16*time.Millisecond, ck.Elapsed())
	assert.Equal(t, uint64(1), ck.Ticks())

	now = now.Add(8 * time.Millisecond)
	ck.Tick()
	assert.Equal(t, 8*time.Millisecond, ck.Delta())
	assert.Equal(t, 24*time.Millisecond, ck.Elapsed())
	assert.InDelta(t, 0.008, ck.DeltaSeconds(), 1e-6)
}

func TestClockMaxDelta(t *testing.T) {
	now := time.Unix(0, 0)
	ck := &Clock{}
	ck.SetNow(func() time.Time { return now })
	ck.Init()

	now = now.Add(3 * time.Second) // debugger pause
	ck.Tick()
	assert.Equal(t, ck.MaxDelta, ck.Delta())
	assert.Equal(t, 3*time.Second, ck.Elapsed())
}

func TestClockPace(t *testing.T) {
	now := time.Unix(0, 0)
	ck := &Clock{FPSLimit: 100} // 10ms interval
	ck.SetNow(func() time.Time { return now })
	ck.Init()
	ck.Tick()

	now = now.Add(4 * time.Millisecond)
	assert.Equal(t, 6*time.Millisecond, ck.Pace())

	now = now.Add(10 * time.Millisecond) // already behind
	assert.Equal(t, time.Duration(0), ck.Pace())

	ck.FPSLimit = 0
	assert.Equal(t, time.Duration(0), ck.Pace())
}
