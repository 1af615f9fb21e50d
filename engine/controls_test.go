// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControlsStaging(t *testing.T) {
	cs := &Controls{}
	cs.AddFloat("speed", 1, 0, 10, 0.1)
	cs.AddBool("wire", false)

	cs.SetFloat("speed", 3)
	cs.SetBool("wire", true)

	// staged writes are invisible until the frame-boundary snapshot
	vs := cs.Declared()
	assert.Equal(t, float32(1), vs[0].Float)

	snap := cs.Snapshot()
	assert.Equal(t, float32(3), snap.Float("speed"))
	assert.True(t, snap.Bool("wire"))
}

func TestControlsClamp(t *testing.T) {
	cs := &Controls{}
	cs.AddFloat("speed", 1, 0, 10, 0.1)
	cs.AddInt("count", 5, 1, 9)

	cs.SetFloat("speed", 99)
	cs.SetInt("count", -3)

	snap := cs.Snapshot()
	assert.Equal(t, float32(10), snap.Float("speed"))
	assert.Equal(t, 1, snap.Int("count"))
}

func TestControlsIgnoresUnknownAndWrongKind(t *testing.T) {
	cs := &Controls{}
	cs.AddFloat("speed", 1, 0, 10, 0.1)

	cs.SetFloat("missing", 2)
	cs.SetBool("speed", true) // wrong kind

	snap := cs.Snapshot()
	assert.Equal(t, float32(1), snap.Float("speed"))
	assert.False(t, snap.Bool("speed"))
	assert.Equal(t, float32(0), snap.Float("missing"))
}

func TestControlsChoice(t *testing.T) {
	cs := &Controls{}
	cs.AddChoice("mode", "solid", "solid", "wire")

	cs.SetChoice("mode", "nope") // not in options, ignored
	assert.Equal(t, "solid", cs.Snapshot().Choice("mode"))

	cs.SetChoice("mode", "wire")
	assert.Equal(t, "wire", cs.Snapshot().Choice("mode"))
}

func TestControlsDeclaredOrder(t *testing.T) {
	cs := &Controls{}
	cs.AddFloat("b", 0, 0, 1, 0.1)
	cs.AddBool("a", false)
	cs.AddInt("c", 0, 0, 9)

	vs := cs.Declared()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}
