// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera implements a first-person fly camera driven by the
// per-tick input snapshot: WASD and space/shift movement, pointer-delta
// look with a pitch clamp, and a view-projection uniform uploaded to
// the GPU only when it changed.
package camera

import (
	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/math32"
)

// PitchLimit keeps the pitch just short of straight up or down, so the
// forward vector never degenerates against the up axis.
const PitchLimit = math32.Pi/2 - 1e-6

// up is the world up axis.
var up = math32.Vec3(0, 1, 0)

// Model is the pure state of the camera: position, orientation, and
// projection parameters. It has no GPU dependencies, so movement and
// look behavior are testable directly.
type Model struct {
	// Position of the eye in world space.
	Position math32.Vector3

	// Pitch and Yaw are the look angles in radians. Pitch is clamped
	// to ±[PitchLimit]; yaw wraps to [0, 2π).
	Pitch float32
	Yaw   float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clip plane distances.
	Near float32
	Far  float32

	// Speed is the movement speed in units per second.
	Speed float32

	// Sensitivity scales pointer motion, in degrees of look per pixel.
	Sensitivity float32
}

// Defaults sets the standard starting state: slightly above the origin
// looking down -Z.
func (md *Model) Defaults() {
	md.Position = math32.Vec3(0, 0.5, 5)
	md.Pitch = 0
	md.Yaw = 0
	md.FOV = 60
	md.Near = 1e-3
	md.Far = 1e3
	md.Speed = 1
	md.Sensitivity = 0.1
}

// Forward returns the unit look direction for the current pitch and
// yaw: -Z at zero angles.
func (md *Model) Forward() math32.Vector3 {
	cp := math32.Cos(md.Pitch)
	return math32.Vec3(
		-math32.Sin(md.Yaw)*cp,
		math32.Sin(md.Pitch),
		-math32.Cos(md.Yaw)*cp,
	)
}

// Right returns the unit right direction, perpendicular to Forward and
// the world up.
func (md *Model) Right() math32.Vector3 {
	return md.Forward().Cross(up).Normal()
}

// ViewMatrix returns the world-to-view transform for the current
// position and look direction.
func (md *Model) ViewMatrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetLookAt(md.Position, md.Position.Add(md.Forward()), up)
	return m
}

// ProjectionMatrix returns the perspective projection for the given
// aspect ratio.
func (md *Model) ProjectionMatrix(aspect float32) math32.Matrix4 {
	var m math32.Matrix4
	m.SetPerspective(md.FOV, aspect, md.Near, md.Far)
	return m
}

// ViewProjection returns projection × view, the single matrix the
// vertex shader needs.
func (md *Model) ViewProjection(aspect float32) math32.Matrix4 {
	pr := md.ProjectionMatrix(aspect)
	vw := md.ViewMatrix()
	return pr.Mul(&vw)
}

// Update applies one tick of input to the model: held movement keys
// scaled by dt and Speed, and pointer delta to the look angles scaled
// by Sensitivity. It reports whether anything changed.
func (md *Model) Update(dt float32, in *events.Snapshot) bool {
	changed := false

	right := md.Right()
	// horizontal forward: movement keys never change altitude
	forward := md.Forward().Mul(math32.Vec3(1, 0, 1)).Normal()

	move := md.Speed * dt
	switch {
	case in.Held(events.CodeW):
		md.Position = md.Position.Add(forward.MulScalar(move))
		changed = true
	case in.Held(events.CodeS):
		md.Position = md.Position.Sub(forward.MulScalar(move))
		changed = true
	}
	switch {
	case in.Held(events.CodeA):
		md.Position = md.Position.Sub(right.MulScalar(move))
		changed = true
	case in.Held(events.CodeD):
		md.Position = md.Position.Add(right.MulScalar(move))
		changed = true
	}
	switch {
	case in.Held(events.CodeSpace):
		md.Position = md.Position.Add(up.MulScalar(move))
		changed = true
	case in.Held(events.CodeLeftShift):
		md.Position = md.Position.Sub(up.MulScalar(move))
		changed = true
	}

	if !in.PointerDelta.IsZero() {
		pitchDelta := math32.DegToRad(in.PointerDelta.Y) * md.Sensitivity
		yawDelta := math32.DegToRad(in.PointerDelta.X) * md.Sensitivity
		md.Pitch = math32.Clamp(md.Pitch-pitchDelta, -PitchLimit, PitchLimit)
		md.Yaw = math32.Euclid(md.Yaw-yawDelta, 2*math32.Pi)
		changed = true
	}
	return changed
}
