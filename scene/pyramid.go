// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements a spinning pyramid frame pipeline: the
// reference renderer for the engine's per-tick contract. It owns a
// fly camera, vertex and uniform buffers, and solid plus wireframe
// pipeline variants selected at runtime through the control state.
package scene

import (
	_ "embed"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/camera"
	"github.com/obelisk3d/obelisk/engine"
	"github.com/obelisk3d/obelisk/events"
	"github.com/obelisk3d/obelisk/gpu"
	"github.com/obelisk3d/obelisk/math32"
)

//go:embed pyramid.wgsl
var pyramidWGSL string

// Vertex is one pyramid vertex: position and color.
type Vertex struct {
	Pos   math32.Vector3
	Color math32.Vector3
}

// vertexStride is the byte size of [Vertex] as laid out for the GPU.
const vertexStride = 6 * 4

// pyramid geometry: square base with an apex, vertex-colored.
var pyramidVertexs = []Vertex{
	{Pos: math32.Vec3(-0.5, 0, -0.5), Color: math32.Vec3(1, 0, 0)},
	{Pos: math32.Vec3(0.5, 0, -0.5), Color: math32.Vec3(0, 1, 0)},
	{Pos: math32.Vec3(0.5, 0, 0.5), Color: math32.Vec3(0, 0, 1)},
	{Pos: math32.Vec3(-0.5, 0, 0.5), Color: math32.Vec3(1, 1, 0)},
	{Pos: math32.Vec3(0, 0.8, 0), Color: math32.Vec3(1, 1, 1)},
}

// triangle list: four sides and the two base triangles.
var pyramidIndexes = []uint32{
	0, 4, 1,
	1, 4, 2,
	2, 4, 3,
	3, 4, 0,
	0, 1, 2,
	0, 2, 3,
}

// line list: base square and the four edges to the apex.
var pyramidEdges = []uint32{
	0, 1, 1, 2, 2, 3, 3, 0,
	0, 4, 1, 4, 2, 4, 3, 4,
}

// Pyramid renders the spinning pyramid, implementing the engine's
// render contract. Rotation speed and the wireframe toggle are
// exposed as controls.
type Pyramid struct {
	// Camera is the fly camera driving the view-projection uniform.
	Camera *camera.Camera

	target gpu.Renderer
	device *gpu.Device

	solid *gpu.GraphicsPipeline
	wire  *gpu.GraphicsPipeline

	vertexBuff *gpu.Buffer
	indexBuff  *gpu.Buffer
	edgeBuff   *gpu.Buffer
	modelBuff  *gpu.Buffer

	modelBind *wgpu.BindGroup

	// angle is the current rotation about Y in radians.
	angle float32

	reload *shaderReload
}

// NewPyramid returns an unconfigured pyramid renderer; resources are
// created in Init.
func NewPyramid() *Pyramid {
	return &Pyramid{reload: newShaderReload()}
}

// Init creates the pyramid's GPU resources against the engine's
// target and declares its controls.
func (py *Pyramid) Init(eg *engine.Engine) error {
	py.target = eg.Target
	py.device = eg.Target.Device()
	fm := eg.Target.Format()

	eg.Controls.AddFloat("rotation_speed", 1, 0, 10, 0.1)
	eg.Controls.AddBool("wireframe", false)

	cam, err := camera.New(py.device, fm.Aspect())
	if err != nil {
		return err
	}
	py.Camera = cam

	if py.vertexBuff, err = gpu.NewVertexBuffer(py.device, "pyramid vertexs", pyramidVertexs); err != nil {
		return err
	}
	if py.indexBuff, err = gpu.NewIndexBuffer(py.device, "pyramid indexes", pyramidIndexes); err != nil {
		return err
	}
	if py.edgeBuff, err = gpu.NewIndexBuffer(py.device, "pyramid edges", pyramidEdges); err != nil {
		return err
	}

	model := math32.Identity4()
	if py.modelBuff, err = gpu.NewUniformBuffer(py.device, "pyramid model", model[:]); err != nil {
		return err
	}

	return py.configPipelines(pyramidWGSL)
}

// configPipelines builds the solid and wireframe pipeline variants
// from the given shader source, replacing any previous ones.
func (py *Pyramid) configPipelines(src string) error {
	fm := py.target.Format()
	depthFmt := py.target.Render().DepthFormat()

	solid := gpu.NewGraphicsPipeline(py.device, "pyramid")
	solid.CullMode = wgpu.CullModeBack
	if err := py.configPipeline(solid, src, fm, depthFmt); err != nil {
		solid.Release()
		return err
	}

	wire := gpu.NewGraphicsPipeline(py.device, "pyramid wire")
	wire.Topology = wgpu.PrimitiveTopologyLineList
	if err := py.configPipeline(wire, src, fm, depthFmt); err != nil {
		solid.Release()
		wire.Release()
		return err
	}

	if py.solid != nil {
		py.solid.Release()
	}
	if py.wire != nil {
		py.wire.Release()
	}
	py.solid = solid
	py.wire = wire
	return py.configModelBind()
}

func (py *Pyramid) configPipeline(pl *gpu.GraphicsPipeline, src string, fm *gpu.TextureFormat, depthFmt wgpu.TextureFormat) error {
	if err := pl.SetShader(src); err != nil {
		return err
	}
	pl.AddVertexLayout(vertexStride,
		wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
	)
	pl.AddBindLayout(py.Camera.BindGroupLayout())
	_, err := pl.AddBindGroupLayout(wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex,
		Buffer: wgpu.BufferBindingLayout{
			Type: wgpu.BufferBindingTypeUniform,
		},
	})
	if err != nil {
		return err
	}
	return pl.Config(fm, depthFmt)
}

// configModelBind creates the model uniform bind group against the
// solid pipeline's layout (the wireframe variant's layout is
// compatible by construction).
func (py *Pyramid) configModelBind() error {
	layouts := py.solid.BindLayouts()
	bind, err := py.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "pyramid model",
		Layout: layouts[1],
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  py.modelBuff.Buffer(),
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		return err
	}
	if py.modelBind != nil {
		py.modelBind.Release()
	}
	py.modelBind = bind
	return nil
}

// Render produces one frame: advance the rotation, update and upload
// the camera, and draw the selected pipeline variant. The frame is
// left for the engine to present.
func (py *Pyramid) Render(fr *gpu.Frame, in *events.Snapshot, ck *engine.Clock, vals engine.Values) error {
	if src, ok := py.reload.pending(); ok {
		if err := py.configPipelines(src); err != nil {
			return err
		}
	}

	dt := ck.DeltaSeconds()
	py.angle = math32.Euclid(py.angle+vals.Float("rotation_speed")*dt, 2*math32.Pi)
	var model math32.Matrix4
	model.SetRotationY(py.angle)
	if err := gpu.SetValueFrom(py.modelBuff, model[:]); err != nil {
		return err
	}

	fm := py.target.Format()
	py.Camera.Update(dt, in)
	if err := py.Camera.Upload(fm.Aspect(), in.Resized); err != nil {
		return err
	}

	cmd, err := py.device.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer cmd.Release()

	rp := py.target.Render().BeginRenderPass(cmd, fr.View())
	if vals.Bool("wireframe") {
		py.wire.BindPipeline(rp)
		rp.SetIndexBuffer(py.edgeBuff.Buffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	} else {
		py.solid.BindPipeline(rp)
		rp.SetIndexBuffer(py.indexBuff.Buffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	}
	rp.SetBindGroup(0, py.Camera.BindGroup(), nil)
	rp.SetBindGroup(1, py.modelBind, nil)
	rp.SetVertexBuffer(0, py.vertexBuff.Buffer(), 0, wgpu.WholeSize)
	if vals.Bool("wireframe") {
		rp.DrawIndexed(uint32(len(pyramidEdges)), 1, 0, 0, 0)
	} else {
		rp.DrawIndexed(uint32(len(pyramidIndexes)), 1, 0, 0, 0)
	}
	rp.End()
	rp.Release()

	cmdBuffer, err := cmd.Finish(nil)
	if err != nil {
		return err
	}
	defer cmdBuffer.Release()
	py.device.Queue.Submit(cmdBuffer)
	return nil
}

// Release frees all GPU resources owned by the pyramid.
func (py *Pyramid) Release() {
	py.reload.stop()
	if py.modelBind != nil {
		py.modelBind.Release()
		py.modelBind = nil
	}
	if py.solid != nil {
		py.solid.Release()
		py.solid = nil
	}
	if py.wire != nil {
		py.wire.Release()
		py.wire = nil
	}
	for _, bf := range []*gpu.Buffer{py.vertexBuff, py.indexBuff, py.edgeBuff, py.modelBuff} {
		if bf != nil {
			bf.Release()
		}
	}
	py.vertexBuff, py.indexBuff, py.edgeBuff, py.modelBuff = nil, nil, nil, nil
	if py.Camera != nil {
		py.Camera.Release()
		py.Camera = nil
	}
}
