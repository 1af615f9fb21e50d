// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

func TestVector3(t *testing.T) {
	v := Vec3(3, 4, 0)
	assert.Equal(t, float32(5), v.Length())
	n := v.Normal()
	assert.InDelta(t, 0.6, n.X, tolerance)
	assert.InDelta(t, 0.8, n.Y, tolerance)

	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	assert.Equal(t, Vec3(0, 0, 1), x.Cross(y))
	assert.Equal(t, float32(0), x.Dot(y))
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
}

func TestEuclid(t *testing.T) {
	assert.InDelta(t, 1, Euclid(-3, 4), tolerance)
	assert.InDelta(t, 3, Euclid(3, 4), tolerance)
	assert.InDelta(t, 3, Euclid(7, 4), tolerance)
}

func TestMatrix4Identity(t *testing.T) {
	id := Identity4()
	v := Vec3(1, 2, 3)
	assert.Equal(t, v, id.MulVector3(v))

	var ry Matrix4
	ry.SetRotationY(0)
	assert.Equal(t, id, ry)
}

func TestMatrix4RotationY(t *testing.T) {
	var m Matrix4
	m.SetRotationY(Pi / 2)
	v := m.MulVector3(Vec3(1, 0, 0))
	assert.InDelta(t, 0, v.X, tolerance)
	assert.InDelta(t, 0, v.Y, tolerance)
	assert.InDelta(t, -1, v.Z, tolerance)
}

func TestMatrix4LookAt(t *testing.T) {
	var m Matrix4
	eye := Vec3(0, 0, 5)
	m.SetLookAt(eye, Vec3(0, 0, 0), Vec3(0, 1, 0))

	// the eye maps to the origin in view space
	v := m.MulVector3(eye)
	assert.InDelta(t, 0, v.X, tolerance)
	assert.InDelta(t, 0, v.Y, tolerance)
	assert.InDelta(t, 0, v.Z, tolerance)

	// a point in front of the camera has negative view-space Z
	v = m.MulVector3(Vec3(0, 0, 0))
	assert.InDelta(t, -5, v.Z, tolerance)
}

func TestMatrix4Perspective(t *testing.T) {
	var p Matrix4
	p.SetPerspective(45, 4.0/3.0, 0.1, 100)

	// near plane maps to depth 0, far plane to depth 1 (WebGPU convention)
	near := p.MulVector3(Vec3(0, 0, -0.1))
	far := p.MulVector3(Vec3(0, 0, -100))
	assert.InDelta(t, 0, near.Z, tolerance)
	assert.InDelta(t, 1, far.Z, 1e-3)
}

func TestMatrix4Mul(t *testing.T) {
	var a, b Matrix4
	a.SetTranslation(Vec3(1, 2, 3))
	b.SetRotationY(Pi / 2)

	// translate-after-rotate: (1,0,0) rotates to (0,0,-1), then translates
	m := a.Mul(&b)
	v := m.MulVector3(Vec3(1, 0, 0))
	assert.InDelta(t, 1, v.X, tolerance)
	assert.InDelta(t, 2, v.Y, tolerance)
	assert.InDelta(t, 3-1, v.Z, tolerance)
}
