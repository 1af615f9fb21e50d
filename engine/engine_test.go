// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/gpu"
	"github.com/obelisk3d/obelisk/math32"
	"github.com/stretchr/testify/assert"
)

// fakeTarget is a gpu.Renderer that produces frames without a GPU,
// with scripted acquire errors.
type fakeTarget struct {
	render gpu.Render
	format gpu.TextureFormat

	// acquireErrs are consumed one per AcquireFrame call; nil entries
	// mean success.
	acquireErrs []error

	setSizes     []image.Point
	acquires     int
	reconfigures int
	presents     int
	drops        int
	released     bool
}

func newFakeTarget(size image.Point) *fakeTarget {
	ft := &fakeTarget{}
	ft.format.Defaults()
	ft.format.Size = size
	return ft
}

func (ft *fakeTarget) Render() *gpu.Render           { return &ft.render }
func (ft *fakeTarget) Device() *gpu.Device           { return nil }
func (ft *fakeTarget) Format() *gpu.TextureFormat    { return &ft.format }
func (ft *fakeTarget) Reconfigure()                  { ft.reconfigures++ }
func (ft *fakeTarget) Release()                      { ft.released = true }

func (ft *fakeTarget) SetSize(size image.Point) {
	ft.format.Size = size
	ft.setSizes = append(ft.setSizes, size)
}

func (ft *fakeTarget) AcquireFrame() (*gpu.Frame, error) {
	ft.acquires++
	if len(ft.acquireErrs) > 0 {
		err := ft.acquireErrs[0]
		ft.acquireErrs = ft.acquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return gpu.NewFrame(nil, ft.format.Size,
		func() error { ft.presents++; return nil },
		func() { ft.drops++ }), nil
}

// fakeRenderer records every Render call and can present frames itself
// or return scripted errors.
type fakeRenderer struct {
	inits    int
	releases int

	sizes  []image.Point
	snaps  []events.Snapshot
	vals   []Values
	deltas []time.Duration

	renderErrs []error

	presentSelf bool
}

func (fk *fakeRenderer) Init(eg *Engine) error { fk.inits++; return nil }
func (fk *fakeRenderer) Release()              { fk.releases++ }

func (fk *fakeRenderer) Render(fr *gpu.Frame, in *events.Snapshot, ck *Clock, vals Values) error {
	fk.sizes = append(fk.sizes, fr.Size())
	fk.snaps = append(fk.snaps, *in)
	fk.vals = append(fk.vals, vals)
	fk.deltas = append(fk.deltas, ck.Delta())
	if len(fk.renderErrs) > 0 {
		err := fk.renderErrs[0]
		fk.renderErrs = fk.renderErrs[1:]
		if err != nil {
			return err
		}
	}
	if fk.presentSelf {
		return fr.Present()
	}
	return nil
}

// newTestEngine returns a running engine over a fake target, with a
// stepped fake time source advancing the given amount per reading.
func newTestEngine(t *testing.T, size image.Point, step time.Duration) (*Engine, *fakeTarget, *fakeRenderer) {
	ft := newFakeTarget(size)
	eg := NewEngine(ft)
	now := time.Unix(0, 0)
	eg.Clock.now = func() time.Time {
		now = now.Add(step)
		return now
	}
	fk := &fakeRenderer{}
	assert.NoError(t, eg.Init(fk))
	assert.Equal(t, Running, eg.Stage())
	return eg, ft, fk
}

func TestThreeQuietFrames(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, 16*time.Millisecond)
	for range 3 {
		assert.NoError(t, eg.Tick())
	}
	assert.Equal(t, 3, ft.acquires)
	assert.Equal(t, 3, ft.presents)
	assert.Equal(t, 0, ft.drops)
	for _, sz := range fk.sizes {
		assert.Equal(t, image.Point{800, 600}, sz)
	}
	for _, dt := range fk.deltas {
		assert.Equal(t, 16*time.Millisecond, dt)
	}
}

func TestResizeBeforeAcquire(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	assert.NoError(t, eg.Tick())
	assert.Equal(t, image.Point{800, 600}, fk.sizes[0])

	eg.Events.Send(events.Resize(image.Point{400, 300}))
	assert.NoError(t, eg.Tick())
	assert.Equal(t, image.Point{400, 300}, fk.sizes[1])
	assert.Equal(t, []image.Point{{400, 300}}, ft.setSizes)
	assert.True(t, fk.snaps[1].Resized)
	assert.Equal(t, image.Point{400, 300}, fk.snaps[1].Size)
}

func TestResizeCoalescing(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	eg.Events.Send(events.Resize(image.Point{640, 480}))
	eg.Events.Send(events.Resize(image.Point{400, 300}))
	assert.NoError(t, eg.Tick())
	// the surface saw both, but the acquired frame has the latest size
	assert.Equal(t, []image.Point{{640, 480}, {400, 300}}, ft.setSizes)
	assert.Equal(t, image.Point{400, 300}, fk.sizes[0])
	assert.Equal(t, image.Point{400, 300}, fk.snaps[0].Size)
}

func TestInputCoalescingAndReset(t *testing.T) {
	eg, _, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	eg.Events.Send(events.Key(events.KeyDown, events.CodeW))
	eg.Events.Send(events.MouseMoved(math32.Vec2(10, 10), math32.Vec2(3, 1)))
	eg.Events.Send(events.MouseMoved(math32.Vec2(12, 14), math32.Vec2(2, 4)))
	assert.NoError(t, eg.Tick())
	assert.True(t, fk.snaps[0].Held(events.CodeW))
	assert.Equal(t, math32.Vec2(5, 5), fk.snaps[0].PointerDelta)
	assert.Equal(t, math32.Vec2(12, 14), fk.snaps[0].Pointer)

	// deltas reset after poll, held keys carry over
	assert.NoError(t, eg.Tick())
	assert.True(t, fk.snaps[1].Held(events.CodeW))
	assert.True(t, fk.snaps[1].PointerDelta.IsZero())
	assert.Equal(t, math32.Vec2(12, 14), fk.snaps[1].Pointer)
}

func TestSuspendResume(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	assert.NoError(t, eg.Tick())
	assert.Equal(t, 1, ft.acquires)

	eg.Events.Send(events.Window(events.WindowBlur))
	assert.NoError(t, eg.Tick())
	assert.Equal(t, Suspended, eg.Stage())
	assert.Equal(t, 1, ft.acquires) // no frame while suspended

	// input while suspended is retained for the first resumed tick
	eg.Events.Send(events.Key(events.KeyDown, events.CodeSpace))
	eg.Events.Send(events.MouseMoved(math32.Vec2(1, 1), math32.Vec2(7, 0)))
	assert.NoError(t, eg.Tick())
	assert.Equal(t, 1, ft.acquires)

	eg.Events.Send(events.Window(events.WindowFocus))
	assert.NoError(t, eg.Tick())
	assert.Equal(t, Running, eg.Stage())
	assert.Equal(t, 2, ft.acquires)
	sn := fk.snaps[len(fk.snaps)-1]
	assert.True(t, sn.Held(events.CodeSpace))
	assert.Equal(t, math32.Vec2(7, 0), sn.PointerDelta)
}

func TestResumeDeltaClamped(t *testing.T) {
	ft := newFakeTarget(image.Point{800, 600})
	eg := NewEngine(ft)
	now := time.Unix(0, 0)
	step := 16 * time.Millisecond
	eg.Clock.now = func() time.Time {
		now = now.Add(step)
		return now
	}
	fk := &fakeRenderer{}
	assert.NoError(t, eg.Init(fk))
	assert.NoError(t, eg.Tick())

	// a long suspension must not show up as one giant delta
	step = 10 * time.Second
	eg.Suspend()
	eg.Resume()
	assert.NoError(t, eg.Tick())
	dt := fk.deltas[len(fk.deltas)-1]
	assert.Equal(t, eg.Clock.MaxDelta, dt)
}

func TestAcquireLostRetriesOnce(t *testing.T) {
	eg, ft, _ := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	ft.acquireErrs = []error{gpu.ErrSurfaceLost, nil}
	assert.NoError(t, eg.Tick())
	assert.Equal(t, 2, ft.acquires)
	assert.Equal(t, 1, ft.reconfigures)
	assert.Equal(t, 1, ft.presents)
	assert.Equal(t, Running, eg.Stage())
}

func TestAcquireSecondFailureFatal(t *testing.T) {
	eg, ft, _ := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	ft.acquireErrs = []error{gpu.ErrSurfaceOutdated, gpu.ErrSurfaceOutdated}
	err := eg.Tick()
	assert.Error(t, err)
	assert.Equal(t, Terminated, eg.Stage())
	assert.Equal(t, 2, ft.acquires)
	assert.Equal(t, 1, ft.reconfigures)
	assert.ErrorIs(t, eg.Err(), gpu.ErrSurfaceOutdated)
}

func TestAcquireOutOfMemoryFatal(t *testing.T) {
	eg, ft, _ := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	ft.acquireErrs = []error{gpu.ErrSurfaceOutOfMemory}
	err := eg.Tick()
	assert.ErrorIs(t, err, gpu.ErrSurfaceOutOfMemory)
	assert.Equal(t, Terminated, eg.Stage())
	assert.Equal(t, 1, ft.acquires) // no retry on fatal classification
	assert.Equal(t, 0, ft.reconfigures)
}

func TestRenderErrorRecoverable(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	fk.renderErrs = []error{gpu.ErrSurfaceOutdated, nil}
	assert.NoError(t, eg.Tick())
	assert.Equal(t, Running, eg.Stage())
	assert.Equal(t, 1, ft.drops) // failed frame dropped, not leaked
	assert.Equal(t, 0, ft.presents)
	assert.Equal(t, 1, ft.reconfigures)

	assert.NoError(t, eg.Tick())
	assert.Equal(t, 1, ft.presents)
}

func TestRenderErrorFatal(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	boom := errors.New("buffer allocation failed")
	fk.renderErrs = []error{boom}
	err := eg.Tick()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Terminated, eg.Stage())
	assert.Equal(t, 1, ft.drops)
	assert.Equal(t, 0, ft.presents)
}

func TestRendererPresentsItself(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	fk.presentSelf = true
	assert.NoError(t, eg.Tick())
	assert.Equal(t, 1, ft.presents) // engine must not present again
}

func TestCloseTerminatesWithoutFrame(t *testing.T) {
	eg, ft, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	eg.Events.Send(events.Window(events.WindowClose))
	assert.NoError(t, eg.Tick())
	assert.Equal(t, Terminated, eg.Stage())
	assert.Equal(t, 0, ft.acquires)

	// terminated ticks do nothing
	assert.NoError(t, eg.Tick())
	assert.Equal(t, 0, ft.acquires)

	eg.Shutdown()
	assert.Equal(t, 1, fk.releases)
	assert.True(t, ft.released)
}

func TestControlsAppliedAtFrameBoundary(t *testing.T) {
	eg, _, fk := newTestEngine(t, image.Point{800, 600}, time.Millisecond)
	eg.Controls.AddFloat("rotation_speed", 1, 0, 10, 0.1)
	eg.Controls.AddBool("wireframe", false)

	assert.NoError(t, eg.Tick())
	assert.Equal(t, float32(1), fk.vals[0].Float("rotation_speed"))

	eg.Controls.SetFloat("rotation_speed", 2.5)
	eg.Controls.SetBool("wireframe", true)
	eg.Controls.SetFloat("no_such_control", 9) // unknown: ignored
	assert.NoError(t, eg.Tick())
	assert.Equal(t, float32(2.5), fk.vals[1].Float("rotation_speed"))
	assert.True(t, fk.vals[1].Bool("wireframe"))
	assert.Equal(t, float32(0), fk.vals[1].Float("no_such_control"))
}
