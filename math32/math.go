// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and matrix math package
// for 3D graphics, covering what the engine core and camera need.
// Scalar functions are mostly wrappers around chewxy/math32,
// which has optimized implementations.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Mathematical constants.
const (
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// DegToRad converts a number of degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * DegToRadFactor
}

// RadToDeg converts a number of radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * RadToDegFactor
}

func Abs(x float32) float32 {
	return math32.Abs(x)
}

func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

func Floor(x float32) float32 {
	return math32.Floor(x)
}

func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func Sin(x float32) float32 {
	return math32.Sin(x)
}

func Cos(x float32) float32 {
	return math32.Cos(x)
}

func Tan(x float32) float32 {
	return math32.Tan(x)
}

func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Euclid returns the Euclidean remainder of x mod y,
// which is always in the range [0, y) for positive y.
func Euclid(x, y float32) float32 {
	r := math32.Mod(x, y)
	if r < 0 {
		r += Abs(y)
	}
	return r
}
