// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
)

// Device holds the logical device and queue for a surface or for
// headless rendering. All resource creation and command submission
// goes through it.
type Device struct {
	// Device is the logical WebGPU device.
	Device *wgpu.Device

	// Queue is the command submission queue for this device.
	Queue *wgpu.Queue
}

// NewDevice returns a new device for the given GPU, requesting the
// adapter's supported limits. Failure to obtain a device is a fatal
// initialization error.
func NewDevice(gp *GPU) (*Device, error) {
	dev, err := gp.GPU.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "obelisk device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: gp.Limits.Limits,
		},
	})
	if err != nil {
		return nil, errors.Log(errors.Newf("gpu: no WebGPU device available: %w", err))
	}
	return &Device{Device: dev, Queue: dev.GetQueue()}, nil
}

// WaitDone blocks until the device is done with all submitted work.
// No-op on the web platform, where the browser owns submission timing.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release releases the device and queue.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.Queue.Release()
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
