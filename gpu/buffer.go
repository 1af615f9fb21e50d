// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
)

// note: WriteBuffer is the preferred method for writing to a buffer,
// so only reading needs the map-and-wait machinery.

// Buffer is a GPU buffer of a fixed role (vertex, index, uniform),
// created from initial contents and updated in place via the queue.
type Buffer struct {
	// Name is used as the buffer label, for diagnostics.
	Name string

	device *Device
	buffer *wgpu.Buffer
	size   int
}

// NewBufferFrom returns a new buffer with the given usage, initialized
// with the given values.
func NewBufferFrom[E any](dev *Device, name string, usage wgpu.BufferUsage, from []E) (*Buffer, error) {
	data := wgpu.ToBytes(from)
	buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: data,
		Usage:    usage | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Buffer{Name: name, device: dev, buffer: buf, size: len(data)}, nil
}

// NewVertexBuffer returns a new vertex buffer initialized with the
// given values.
func NewVertexBuffer[E any](dev *Device, name string, from []E) (*Buffer, error) {
	return NewBufferFrom(dev, name, wgpu.BufferUsageVertex, from)
}

// NewIndexBuffer returns a new index buffer initialized with the
// given values, which must be uint16 or uint32.
func NewIndexBuffer[E uint16 | uint32](dev *Device, name string, from []E) (*Buffer, error) {
	return NewBufferFrom(dev, name, wgpu.BufferUsageIndex, from)
}

// NewUniformBuffer returns a new uniform buffer initialized with the
// given values.
func NewUniformBuffer[E any](dev *Device, name string, from []E) (*Buffer, error) {
	return NewBufferFrom(dev, name, wgpu.BufferUsageUniform, from)
}

// SetValueFrom copies the given values into this buffer through the
// queue. The byte size must match the buffer's allocated size.
func SetValueFrom[E any](bf *Buffer, from []E) error {
	data := wgpu.ToBytes(from)
	if len(data) != bf.size {
		return errors.Log(errors.Newf("gpu.Buffer %s: size passed %d != size allocated %d", bf.Name, len(data), bf.size))
	}
	return errors.Log(bf.device.Queue.WriteBuffer(bf.buffer, 0, data))
}

// Buffer returns the underlying WebGPU buffer.
func (bf *Buffer) Buffer() *wgpu.Buffer {
	return bf.buffer
}

// Size returns the allocated size in bytes.
func (bf *Buffer) Size() int {
	return bf.size
}

// Release releases the buffer.
func (bf *Buffer) Release() {
	if bf.buffer == nil {
		return
	}
	bf.buffer.Release()
	bf.buffer = nil
}

// BufferMapAsyncError returns an error if the map status is not success.
func BufferMapAsyncError(status wgpu.BufferMapAsyncStatus) error {
	if status != wgpu.BufferMapAsyncStatusSuccess {
		return errors.New("gpu: BufferMapAsync was not successful")
	}
	return nil
}

// bufferReadSync does a MapAsync on the given buffer, waiting on the
// device until the map is complete.
func bufferReadSync(device *Device, size int, buffer *wgpu.Buffer) error {
	var status wgpu.BufferMapAsyncStatus
	err := buffer.MapAsync(wgpu.MapModeRead, 0, uint64(size), func(s wgpu.BufferMapAsyncStatus) {
		status = s
	})
	if errors.Log(err) != nil {
		return err
	}
	device.WaitDone()
	return BufferMapAsyncError(status)
}
