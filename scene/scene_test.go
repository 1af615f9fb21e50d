// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestGeometry(t *testing.T) {
	assert.Equal(t, uintptr(vertexStride), unsafe.Sizeof(Vertex{}))
	assert.Equal(t, 0, len(pyramidIndexes)%3)
	assert.Equal(t, 0, len(pyramidEdges)%2)
	for _, ix := range pyramidIndexes {
		assert.Less(t, int(ix), len(pyramidVertexs))
	}
	for _, ix := range pyramidEdges {
		assert.Less(t, int(ix), len(pyramidVertexs))
	}
}

func TestShaderSource(t *testing.T) {
	assert.Contains(t, pyramidWGSL, "fn vs_main")
	assert.Contains(t, pyramidWGSL, "fn fs_main")
	// bind groups match the pipeline layout: camera at 0, model at 1
	assert.Contains(t, pyramidWGSL, "@group(0) @binding(0)")
	assert.Contains(t, pyramidWGSL, "@group(1) @binding(0)")
	assert.Equal(t, 2, strings.Count(pyramidWGSL, "mat4x4<f32>"))
}

func TestShaderReload(t *testing.T) {
	sr := newShaderReload()
	_, ok := sr.pending()
	assert.False(t, ok)

	sr.offer("one")
	sr.offer("two") // latest write wins
	src, ok := sr.pending()
	assert.True(t, ok)
	assert.Equal(t, "two", src)

	_, ok = sr.pending()
	assert.False(t, ok)

	sr.stop()
	sr.stop() // idempotent
}
