// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/gpu"
)

// Camera is the GPU side of the fly camera: a single view-projection
// matrix in a uniform buffer with its bind group, uploaded only when
// the model or the aspect ratio changed.
type Camera struct {
	// Model is the pure camera state.
	Model Model

	buffer *gpu.Buffer

	layout *wgpu.BindGroupLayout
	bind   *wgpu.BindGroup

	// dirty is set when Model changed since the last upload.
	dirty bool
}

// New creates the camera uniform buffer and bind group on the given
// device, with the default model at the given aspect ratio.
func New(dev *gpu.Device, aspect float32) (*Camera, error) {
	cm := &Camera{}
	cm.Model.Defaults()

	vp := cm.Model.ViewProjection(aspect)
	buf, err := gpu.NewUniformBuffer(dev, "camera", vp[:])
	if err != nil {
		return nil, err
	}
	cm.buffer = buf

	layout, err := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeUniform,
			},
		}},
	})
	if err != nil {
		cm.Release()
		return nil, err
	}
	cm.layout = layout

	bind, err := dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buf.Buffer(),
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		cm.Release()
		return nil, err
	}
	cm.bind = bind
	return cm, nil
}

// BindGroupLayout returns the layout for pipelines binding the camera
// uniform at group index 0.
func (cm *Camera) BindGroupLayout() *wgpu.BindGroupLayout { return cm.layout }

// BindGroup returns the camera uniform bind group.
func (cm *Camera) BindGroup() *wgpu.BindGroup { return cm.bind }

// Update applies one tick of input to the camera model.
func (cm *Camera) Update(dt float32, in *events.Snapshot) {
	if cm.Model.Update(dt, in) {
		cm.dirty = true
	}
}

// Upload writes the view-projection matrix to the uniform buffer if
// the model changed or the frame was resized (which changes the aspect
// ratio).
func (cm *Camera) Upload(aspect float32, resized bool) error {
	if !cm.dirty && !resized {
		return nil
	}
	vp := cm.Model.ViewProjection(aspect)
	if err := gpu.SetValueFrom(cm.buffer, vp[:]); err != nil {
		return err
	}
	cm.dirty = false
	return nil
}

// Release frees the camera's GPU resources.
func (cm *Camera) Release() {
	if cm.bind != nil {
		cm.bind.Release()
		cm.bind = nil
	}
	if cm.layout != nil {
		cm.layout.Release()
		cm.layout = nil
	}
	if cm.buffer != nil {
		cm.buffer.Release()
		cm.buffer = nil
	}
}
