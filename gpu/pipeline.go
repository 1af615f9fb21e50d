// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
)

// GraphicsPipeline configures and holds a WebGPU render pipeline:
// a WGSL shader, vertex buffer layouts, bind group layouts, and the
// fixed-function state. Set the inputs, then call [GraphicsPipeline.Config]
// against the target's format to build the pipeline.
type GraphicsPipeline struct {
	// Name is used as the label for pipeline objects, for debugging.
	Name string

	// VertexEntry and FragmentEntry are the shader entry point
	// function names.
	VertexEntry   string
	FragmentEntry string

	// Topology is the primitive topology, TriangleList by default.
	Topology wgpu.PrimitiveTopology

	// CullMode is the face culling mode, CullModeNone by default.
	CullMode wgpu.CullMode

	// FrontFace is the winding order of front faces, CCW by default.
	FrontFace wgpu.FrontFace

	device *Device

	shader *wgpu.ShaderModule

	vertexLayouts []wgpu.VertexBufferLayout

	bindLayouts []*wgpu.BindGroupLayout

	// ownedLayouts are the bind group layouts this pipeline created
	// and must release; external ones from AddBindLayout are not ours.
	ownedLayouts []*wgpu.BindGroupLayout

	pipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline with default
// fixed-function state, on the given device.
func NewGraphicsPipeline(dev *Device, name string) *GraphicsPipeline {
	return &GraphicsPipeline{
		Name:          name,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
		Topology:      wgpu.PrimitiveTopologyTriangleList,
		CullMode:      wgpu.CullModeNone,
		FrontFace:     wgpu.FrontFaceCCW,
		device:        dev,
	}
}

// SetShader compiles the given WGSL source as this pipeline's shader
// module, replacing any previous one. If the pipeline was already
// configured, call [GraphicsPipeline.Config] again to rebuild it with
// the new shader.
func (pl *GraphicsPipeline) SetShader(src string) error {
	mod, err := pl.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          pl.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src},
	})
	if err != nil {
		return errors.Log(err)
	}
	if pl.shader != nil {
		pl.shader.Release()
	}
	pl.shader = mod
	return nil
}

// AddVertexLayout adds a vertex buffer layout with the given stride in
// bytes and per-vertex attributes, in shader location order.
func (pl *GraphicsPipeline) AddVertexLayout(stride uint64, attrs ...wgpu.VertexAttribute) {
	pl.vertexLayouts = append(pl.vertexLayouts, wgpu.VertexBufferLayout{
		ArrayStride: stride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	})
}

// AddBindGroupLayout creates a bind group layout from the given
// entries and adds it as the next bind group index. The returned
// layout is used to create matching bind groups.
func (pl *GraphicsPipeline) AddBindGroupLayout(entries ...wgpu.BindGroupLayoutEntry) (*wgpu.BindGroupLayout, error) {
	bgl, err := pl.device.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   pl.Name,
		Entries: entries,
	})
	if err != nil {
		return nil, errors.Log(err)
	}
	pl.bindLayouts = append(pl.bindLayouts, bgl)
	pl.ownedLayouts = append(pl.ownedLayouts, bgl)
	return bgl, nil
}

// AddBindLayout adds an externally owned bind group layout (shared
// with other pipelines, like a camera uniform layout) as the next bind
// group index. It is not released by this pipeline.
func (pl *GraphicsPipeline) AddBindLayout(bgl *wgpu.BindGroupLayout) {
	pl.bindLayouts = append(pl.bindLayouts, bgl)
}

// Config builds the render pipeline against the given target format
// and depth buffer format (wgpu.TextureFormatUndefined for no depth
// buffer). It can be called again after the shader or fixed-function
// state changes, replacing the previous pipeline.
func (pl *GraphicsPipeline) Config(fm *TextureFormat, depthFmt wgpu.TextureFormat) error {
	if pl.shader == nil {
		return errors.Log(errors.Newf("gpu.GraphicsPipeline %s: no shader set", pl.Name))
	}
	layout, err := pl.device.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: pl.bindLayouts,
	})
	if err != nil {
		return errors.Log(err)
	}
	defer layout.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     pl.shader,
			EntryPoint: pl.VertexEntry,
			Buffers:    pl.vertexLayouts,
		},
		Fragment: &wgpu.FragmentState{
			Module:     pl.shader,
			EntryPoint: pl.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    fm.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  pl.Topology,
			FrontFace: pl.FrontFace,
			CullMode:  pl.CullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(fm.Samples),
			Mask:  0xFFFFFFFF,
		},
	}
	if depthFmt != wgpu.TextureFormatUndefined {
		desc.DepthStencil = &wgpu.DepthStencilState{
			Format:            depthFmt,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		}
	}
	rp, err := pl.device.Device.CreateRenderPipeline(desc)
	if err != nil {
		return errors.Log(err)
	}
	if pl.pipeline != nil {
		pl.pipeline.Release()
	}
	pl.pipeline = rp
	return nil
}

// BindLayouts returns the bind group layouts in bind group index
// order, for creating matching bind groups.
func (pl *GraphicsPipeline) BindLayouts() []*wgpu.BindGroupLayout { return pl.bindLayouts }

// Pipeline returns the built render pipeline, nil before Config.
func (pl *GraphicsPipeline) Pipeline() *wgpu.RenderPipeline { return pl.pipeline }

// BindPipeline sets this pipeline on the given render pass.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(pl.pipeline)
}

// Release releases the pipeline, shader, and bind group layouts.
func (pl *GraphicsPipeline) Release() {
	for _, bgl := range pl.ownedLayouts {
		bgl.Release()
	}
	pl.ownedLayouts = nil
	pl.bindLayouts = nil
	if pl.shader != nil {
		pl.shader.Release()
		pl.shader = nil
	}
	if pl.pipeline != nil {
		pl.pipeline.Release()
		pl.pipeline = nil
	}
}
