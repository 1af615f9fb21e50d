// Copyright (c) 2026, Obelisk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"image"
	"image/color"
	"os"

	"github.com/obelisk3d/obelisk/base/errors"
	"github.com/obelisk3d/obelisk/math32"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the startup options for an engine session, loadable
// from a TOML file.
type Config struct {
	// Title is the window or page title.
	Title string `toml:"title"`

	// Width and Height are the initial window size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// FPSLimit is the native frame pacing target; 0 leaves pacing to
	// vsync.
	FPSLimit int `toml:"fps-limit"`

	// VSync selects the presentation mode: true for Fifo, false for
	// Immediate.
	VSync bool `toml:"vsync"`

	// Samples is the multisample count, 1 or 4.
	Samples int `toml:"samples"`

	// ClearColor is the frame clear color as 0-1 RGB.
	ClearColor [3]float32 `toml:"clear-color"`
}

// Defaults sets the default configuration values.
func (cf *Config) Defaults() {
	cf.Title = "Obelisk"
	cf.Width = 800
	cf.Height = 600
	cf.FPSLimit = 0
	cf.VSync = true
	cf.Samples = 4
	cf.ClearColor = [3]float32{0.1, 0.1, 0.12}
}

// Size returns the configured window size as a point.
func (cf *Config) Size() image.Point {
	return image.Point{cf.Width, cf.Height}
}

// Clear returns the configured clear color as a Go color.
func (cf *Config) Clear() color.Color {
	return color.RGBA{
		R: uint8(math32.Clamp(cf.ClearColor[0], 0, 1) * 255),
		G: uint8(math32.Clamp(cf.ClearColor[1], 0, 1) * 255),
		B: uint8(math32.Clamp(cf.ClearColor[2], 0, 1) * 255),
		A: 255,
	}
}

// OpenConfig loads the configuration from the given TOML file over
// the defaults. A missing file is not an error: defaults are returned.
func OpenConfig(filename string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cf, nil
		}
		return cf, errors.Log(err)
	}
	if err := toml.Unmarshal(b, cf); err != nil {
		return cf, errors.Log(err)
	}
	return cf, nil
}

// SaveConfig writes the configuration to the given TOML file.
func SaveConfig(cf *Config, filename string) error {
	b, err := toml.Marshal(cf)
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(os.WriteFile(filename, b, 0o644))
}
