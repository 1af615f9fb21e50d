// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/obelisk3d/obelisk/math32"
	"github.com/stretchr/testify/assert"
)

func TestStateHeldKeys(t *testing.T) {
	st := NewState()
	st.Record(Key(KeyDown, CodeW))
	st.Record(Key(KeyDown, CodeA))

	snap := st.Poll()
	assert.True(t, snap.Held(CodeW))
	assert.True(t, snap.Held(CodeA))
	assert.False(t, snap.Held(CodeS))

	// held set carries over between polls
	snap = st.Poll()
	assert.True(t, snap.Held(CodeW))

	st.Record(Key(KeyUp, CodeW))
	snap = st.Poll()
	assert.False(t, snap.Held(CodeW))
	assert.True(t, snap.Held(CodeA))
}

func TestStateCoalescesDeltas(t *testing.T) {
	st := NewState()
	st.Record(MouseMoved(math32.Vec2(10, 10), math32.Vec2(2, 1)))
	st.Record(MouseMoved(math32.Vec2(13, 12), math32.Vec2(3, 2)))
	st.Record(Scrolled(math32.Vec2(13, 12), math32.Vec2(0, -1)))
	st.Record(Scrolled(math32.Vec2(13, 12), math32.Vec2(0, -2)))

	snap := st.Poll()
	assert.Equal(t, math32.Vec2(13, 12), snap.Pointer)
	assert.Equal(t, math32.Vec2(5, 3), snap.PointerDelta)
	assert.Equal(t, math32.Vec2(0, -3), snap.ScrollDelta)
}

func TestStateDeltasResetOnPoll(t *testing.T) {
	st := NewState()
	st.Record(MouseMoved(math32.Vec2(5, 5), math32.Vec2(5, 5)))
	st.Poll()

	snap := st.Poll()
	assert.True(t, snap.PointerDelta.IsZero())
	assert.True(t, snap.ScrollDelta.IsZero())
	// position is retained
	assert.Equal(t, math32.Vec2(5, 5), snap.Pointer)
}

func TestStateResize(t *testing.T) {
	st := NewState()
	st.Record(Resize(image.Pt(800, 600)))
	st.Record(Resize(image.Pt(400, 300)))

	snap := st.Poll()
	assert.True(t, snap.Resized)
	assert.Equal(t, image.Pt(400, 300), snap.Size)

	snap = st.Poll()
	assert.False(t, snap.Resized)
	// most recent size is still reported
	assert.Equal(t, image.Pt(400, 300), snap.Size)
}

func TestStateBlurReleasesKeys(t *testing.T) {
	st := NewState()
	st.Record(Key(KeyDown, CodeW))
	st.Record(Window(WindowBlur))

	snap := st.Poll()
	assert.False(t, snap.Held(CodeW))
	assert.False(t, snap.AnyHeld())
}

func TestQueueOrder(t *testing.T) {
	var q Queue
	q.Init()
	q.Send(Key(KeyDown, CodeW))
	q.Send(Key(KeyDown, CodeA))
	q.Send(Key(KeyUp, CodeW))
	assert.Equal(t, uint64(3), q.Len())

	e, ok := q.NextEvent()
	assert.True(t, ok)
	assert.Equal(t, KeyDown, e.Type)
	assert.Equal(t, CodeW, e.Code)

	e, _ = q.NextEvent()
	assert.Equal(t, CodeA, e.Code)

	e, _ = q.NextEvent()
	assert.Equal(t, KeyUp, e.Type)

	_, ok = q.NextEvent()
	assert.False(t, ok)
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueConcurrentSend(t *testing.T) {
	var q Queue
	q.Init()
	const n = 1000
	done := make(chan struct{})
	go func() {
		for range n {
			q.Send(Key(KeyDown, CodeA))
		}
		close(done)
	}()
	for range n {
		q.Send(Key(KeyDown, CodeB))
	}
	<-done

	count := 0
	for {
		if _, ok := q.NextEvent(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 2*n, count)
}
