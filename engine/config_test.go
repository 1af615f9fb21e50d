// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMissingFileDefaults(t *testing.T) {
	cf, err := OpenConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "Obelisk", cf.Title)
	assert.Equal(t, 800, cf.Width)
	assert.Equal(t, 600, cf.Height)
	assert.True(t, cf.VSync)
	assert.Equal(t, 4, cf.Samples)
}

func TestConfigRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "obelisk.toml")
	cf := &Config{}
	cf.Defaults()
	cf.Title = "Test"
	cf.Width = 1280
	cf.Height = 720
	cf.FPSLimit = 30
	cf.VSync = false
	require.NoError(t, SaveConfig(cf, fn))

	got, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, cf, got)
}

func TestConfigClear(t *testing.T) {
	cf := &Config{ClearColor: [3]float32{0, 0.5, 2}} // out-of-range clamped
	c := cf.Clear().(color.RGBA)
	assert.Equal(t, uint8(0), c.R)
	assert.Equal(t, uint8(127), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)
}
