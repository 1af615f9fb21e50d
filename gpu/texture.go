// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/obelisk3d/obelisk/base/errors"
)

// Texture is a GPU texture with an associated view, used for depth
// buffers, multisample render targets, and offscreen frames.
type Texture struct {
	// Name is used as the texture label, for diagnostics.
	Name string

	// Format has the size, WebGPU format, and sample count.
	Format TextureFormat

	device *Device

	texture *wgpu.Texture
	view    *wgpu.TextureView

	// readBuffer receives texture data for host readback;
	// only allocated by ConfigReadBuffer.
	readBuffer *wgpu.Buffer
	readDims   textureBufferDims
}

// NewTexture returns a new texture for the given device.
func NewTexture(dev *Device) *Texture {
	tx := &Texture{device: dev}
	tx.Format.Defaults()
	return tx
}

// View returns the texture view.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// CreateTexture creates the texture and its view based on the current
// Format, releasing any prior texture first.
func (tx *Texture) CreateTexture(usage wgpu.TextureUsage) error {
	tx.ReleaseTexture()

	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(tx.Format.Samples),
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	return nil
}

// ConfigDepth configures this texture as a depth buffer of the given
// depth format, matching the size and sample count of the given
// render format.
func (tx *Texture) ConfigDepth(dev *Device, depthFmt wgpu.TextureFormat, fm *TextureFormat) error {
	tx.device = dev
	tx.Name = "depth"
	tx.Format.Set(fm.Size.X, fm.Size.Y, depthFmt)
	tx.Format.Samples = fm.Samples
	return tx.CreateTexture(wgpu.TextureUsageRenderAttachment)
}

// ConfigMulti configures this texture as a multisampled render target
// that resolves into the presentable frame, matching the given format.
func (tx *Texture) ConfigMulti(dev *Device, fm *TextureFormat) error {
	tx.device = dev
	tx.Name = "msaa"
	tx.Format = *fm
	return tx.CreateTexture(wgpu.TextureUsageRenderAttachment)
}

// ConfigRenderTexture configures this texture as an offscreen frame:
// a single-sample color target that can also be copied to the host.
func (tx *Texture) ConfigRenderTexture(dev *Device, fm *TextureFormat) error {
	tx.device = dev
	tx.Name = "frame"
	tx.Format = *fm
	tx.Format.Samples = 1
	return tx.CreateTexture(wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc)
}

// ConfigReadBuffer allocates the host-readable buffer for
// [Texture.ReadGoImage]. Call once after configuring the texture;
// re-allocates as needed on size changes.
func (tx *Texture) ConfigReadBuffer() error {
	dims := newTextureBufferDims(tx.Format.Size)
	if tx.readBuffer != nil && dims == tx.readDims {
		return nil
	}
	tx.ReleaseReadBuffer()
	buf, err := tx.device.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "texture read buffer",
		Size:  dims.paddedSize(),
		Usage: wgpu.BufferUsageCopyDst | wgpu.BufferUsageMapRead,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.readBuffer = buf
	tx.readDims = dims
	return nil
}

// CopyToReadBuffer records a copy of the texture into the read buffer
// on the given command encoder. The copy completes when the commands
// are submitted and the device is done.
func (tx *Texture) CopyToReadBuffer(cmd *wgpu.CommandEncoder) error {
	if err := tx.ConfigReadBuffer(); err != nil {
		return err
	}
	sz := tx.Format.Extent3D()
	cmd.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: tx.readBuffer,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  tx.readDims.paddedRowBytes,
				RowsPerImage: uint32(tx.Format.Size.Y),
			},
		},
		&sz,
	)
	return nil
}

// ReadGoImage maps the read buffer and returns the texture contents as
// an NRGBA image. [Texture.CopyToReadBuffer] must have been recorded
// and submitted first; this blocks until the map is ready.
func (tx *Texture) ReadGoImage() (*image.NRGBA, error) {
	if tx.readBuffer == nil {
		return nil, errors.New("gpu: ReadGoImage: no read buffer; call CopyToReadBuffer first")
	}
	if err := bufferReadSync(tx.device, int(tx.readDims.paddedSize()), tx.readBuffer); err != nil {
		return nil, err
	}
	data := tx.readBuffer.GetMappedRange(0, uint(tx.readDims.paddedSize()))
	defer tx.readBuffer.Unmap()

	sz := tx.Format.Size
	img := image.NewNRGBA(image.Rectangle{Max: sz})
	rowBytes := int(tx.readDims.rowBytes)
	padded := int(tx.readDims.paddedRowBytes)
	for y := range sz.Y {
		copy(img.Pix[y*img.Stride:y*img.Stride+rowBytes], data[y*padded:y*padded+rowBytes])
	}
	return img, nil
}

// ReleaseReadBuffer releases the readback buffer, if allocated.
func (tx *Texture) ReleaseReadBuffer() {
	if tx.readBuffer == nil {
		return
	}
	tx.readBuffer.Release()
	tx.readBuffer = nil
}

// ReleaseTexture releases the texture and view.
func (tx *Texture) ReleaseTexture() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}

// Release releases all resources owned by this texture.
func (tx *Texture) Release() {
	tx.ReleaseReadBuffer()
	tx.ReleaseTexture()
}

// textureBufferDims has the dimensions of a host-readable copy of a
// texture, with rows padded to the 256 byte alignment WebGPU requires
// for texture-to-buffer copies.
type textureBufferDims struct {
	rowBytes       uint32
	paddedRowBytes uint32
	rows           uint32
}

func newTextureBufferDims(size image.Point) textureBufferDims {
	const align = 256
	row := uint32(size.X) * 4
	padded := (row + align - 1) / align * align
	return textureBufferDims{rowBytes: row, paddedRowBytes: padded, rows: uint32(size.Y)}
}

func (td textureBufferDims) paddedSize() uint64 {
	return uint64(td.paddedRowBytes) * uint64(td.rows)
}
