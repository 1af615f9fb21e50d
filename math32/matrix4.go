// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix stored in column-major order, matching the
// layout WGSL expects for a mat4x4<f32> uniform, so a Matrix4 can be
// uploaded to a uniform buffer directly.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns this matrix times the other matrix (m * o).
func (m *Matrix4) Mul(o *Matrix4) Matrix4 {
	var r Matrix4
	for c := range 4 {
		for w := range 4 {
			var sum float32
			for k := range 4 {
				sum += m[k*4+w] * o[c*4+k]
			}
			r[c*4+w] = sum
		}
	}
	return r
}

// MulVector3 multiplies the given point (w=1) by this matrix,
// dividing by the resulting w.
func (m *Matrix4) MulVector3(v Vector3) Vector3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3(x/w, y/w, z/w)
	}
	return Vec3(x, y, z)
}

// SetPerspective sets this matrix to a right-handed perspective
// projection with the WebGPU [0, 1] clip-space depth range.
// fovy is the vertical field of view in degrees.
func (m *Matrix4) SetPerspective(fovy, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fovy)/2)
	*m = Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (near - far)
	m[11] = -1
	m[14] = near * far / (near - far)
}

// SetLookAt sets this matrix to a right-handed view matrix for a camera
// at eye, looking at target, with the given up direction.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	f := target.Sub(eye).Normal()
	s := f.Cross(up).Normal()
	u := s.Cross(f)
	*m = Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// SetRotationY sets this matrix to a rotation about the Y axis
// by the given angle in radians.
func (m *Matrix4) SetRotationY(angle float32) {
	c, s := Cos(angle), Sin(angle)
	*m = Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// SetTranslation sets this matrix to a translation by the given vector.
func (m *Matrix4) SetTranslation(v Vector3) {
	m.SetIdentity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}
