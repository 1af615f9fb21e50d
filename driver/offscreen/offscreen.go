// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package offscreen is the headless scheduling shell: it drives the
// engine over a [gpu.RenderTexture] with a fixed timestep and writes
// each rendered frame to disk as a WebP image. Useful for CI renders
// and capturing animation sequences without a window system.
package offscreen

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
	"github.com/obelisk3d/obelisk/engine"
	"github.com/obelisk3d/obelisk/gpu"
	"golang.org/x/image/draw"
)

// Options configure a headless capture run.
type Options struct {
	// Frames is the number of frames to render and capture.
	// Default 60.
	Frames int

	// FPS is the fixed timestep rate: every tick advances the engine
	// clock by exactly 1/FPS regardless of wall time, so captures are
	// deterministic. Default 60.
	FPS int

	// Supersample renders at this multiple of the configured size and
	// downscales the captured image, as cheap antialiasing on top of
	// MSAA. 1 or 0 disables.
	Supersample int

	// Dir is the output directory for frame images. Default "frames".
	Dir string
}

func (op *Options) defaults() {
	if op.Frames <= 0 {
		op.Frames = 60
	}
	if op.FPS <= 0 {
		op.FPS = 60
	}
	if op.Supersample <= 0 {
		op.Supersample = 1
	}
	if op.Dir == "" {
		op.Dir = "frames"
	}
}

// Run renders opts.Frames fixed-timestep frames of r headlessly at the
// configured size and writes each to opts.Dir as frame%04d.webp.
// It returns the first capture error, or the engine's fatal error if
// the session terminated abnormally.
func Run(cf *engine.Config, r engine.Renderer, opts *Options) error {
	op := Options{}
	if opts != nil {
		op = *opts
	}
	op.defaults()

	gp, dev, err := gpu.NoDisplayGPU()
	if err != nil {
		return err
	}
	defer gp.Release()

	size := cf.Size().Mul(op.Supersample)
	rt := gpu.NewRenderTexture(gp, dev, size, cf.Samples, wgpu.TextureFormatDepth32Float)
	rt.Render().ClearColor = cf.Clear()

	eng := engine.NewEngine(rt)

	// Virtual clock: each tick advances by exactly one frame interval.
	step := time.Second / time.Duration(op.FPS)
	now := time.Now()
	eng.Clock.SetNow(func() time.Time { return now })

	if err := eng.Init(r); err != nil {
		eng.Shutdown()
		return err
	}
	if err := os.MkdirAll(op.Dir, 0750); err != nil {
		eng.Shutdown()
		return err
	}

	for i := 0; i < op.Frames && eng.Stage() != engine.Terminated; i++ {
		now = now.Add(step)
		eng.Tick()
		img, err := rt.ReadImage()
		if err != nil {
			eng.Shutdown()
			return err
		}
		if op.Supersample > 1 {
			img = downscale(img, cf.Size())
		}
		if err := writeFrame(op.Dir, i, img); err != nil {
			eng.Shutdown()
			return err
		}
	}
	eng.Terminate()
	eng.Shutdown()
	return eng.Err()
}

// downscale resamples src to the given size with bilinear filtering.
func downscale(src *image.NRGBA, size image.Point) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func writeFrame(dir string, idx int, img image.Image) error {
	fn := filepath.Join(dir, fmt.Sprintf("frame%04d.webp", idx))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		errors.Log(f.Close())
		return err
	}
	return f.Close()
}
