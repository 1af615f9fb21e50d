// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/math32"
	"github.com/stretchr/testify/assert"
)

// snapshot builds an input snapshot with the given held keys and
// pointer delta through the public record/poll path.
func snapshot(delta math32.Vector2, codes ...events.Code) *events.Snapshot {
	st := events.NewState()
	for _, code := range codes {
		st.Record(events.Key(events.KeyDown, code))
	}
	if !delta.IsZero() {
		st.Record(events.MouseMoved(delta, delta))
	}
	sn := st.Poll()
	return &sn
}

func TestModelDefaults(t *testing.T) {
	var md Model
	md.Defaults()
	assert.Equal(t, math32.Vec3(0, 0.5, 5), md.Position)
	// looking straight down -Z
	fwd := md.Forward()
	assert.InDelta(t, 0, fwd.X, 1e-6)
	assert.InDelta(t, 0, fwd.Y, 1e-6)
	assert.InDelta(t, -1, fwd.Z, 1e-6)
	rt := md.Right()
	assert.InDelta(t, 1, rt.X, 1e-6)
}

func TestModelMovement(t *testing.T) {
	var md Model
	md.Defaults()
	start := md.Position

	changed := md.Update(0.5, snapshot(math32.Vector2{}, events.CodeW))
	assert.True(t, changed)
	assert.InDelta(t, start.Z-0.5, md.Position.Z, 1e-6)
	assert.InDelta(t, start.Y, md.Position.Y, 1e-6) // no altitude change

	changed = md.Update(0.5, snapshot(math32.Vector2{}, events.CodeD))
	assert.True(t, changed)
	assert.InDelta(t, start.X+0.5, md.Position.X, 1e-6)

	changed = md.Update(0.25, snapshot(math32.Vector2{}, events.CodeSpace))
	assert.True(t, changed)
	assert.InDelta(t, start.Y+0.25, md.Position.Y, 1e-6)

	changed = md.Update(0.5, snapshot(math32.Vector2{}))
	assert.False(t, changed)
}

func TestModelMovementFollowsYaw(t *testing.T) {
	var md Model
	md.Defaults()
	md.Yaw = math32.Pi / 2 // now facing -X
	start := md.Position

	md.Update(1, snapshot(math32.Vector2{}, events.CodeW))
	assert.InDelta(t, start.X-1, md.Position.X, 1e-5)
	assert.InDelta(t, start.Z, md.Position.Z, 1e-5)
}

func TestModelLook(t *testing.T) {
	var md Model
	md.Defaults()

	// pointer up-left: pitch rises, yaw increases
	md.Update(1, snapshot(math32.Vec2(-40, -30)))
	assert.Greater(t, md.Pitch, float32(0))
	assert.Greater(t, md.Yaw, float32(0))

	// pitch clamps short of straight up
	md.Update(1, snapshot(math32.Vec2(0, -1e6)))
	assert.InDelta(t, PitchLimit, md.Pitch, 1e-6)
	assert.Less(t, md.Pitch, float32(math32.Pi/2))

	// yaw wraps into [0, 2π)
	md.Update(1, snapshot(math32.Vec2(1e5, 0)))
	assert.GreaterOrEqual(t, md.Yaw, float32(0))
	assert.Less(t, md.Yaw, float32(2*math32.Pi))
}

func TestViewProjection(t *testing.T) {
	var md Model
	md.Defaults()
	vp := md.ViewProjection(4.0 / 3.0)

	// a point straight ahead of the camera lands in the clip volume
	// center and inside the depth range
	ahead := md.Position.Add(md.Forward().MulScalar(10))
	pt := vp.MulVector3(ahead)
	assert.InDelta(t, 0, pt.X, 1e-5)
	assert.InDelta(t, 0, pt.Y, 1e-5)
	assert.Greater(t, pt.Z, float32(0))
	assert.Less(t, pt.Z, float32(1))
}
