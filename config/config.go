// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration for the cubeloop renderer.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Spin holds the per-frame angle increments in radians. C is deliberately
// smaller than A and B in the defaults; the asymmetry is what makes the
// tumbling look organic.
type Spin struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// CubeSpec places one cube: half the side length and the horizontal screen
// offset in cells.
type CubeSpec struct {
	Half   float64 `json:"half"`
	Offset float64 `json:"offset"`
}

// Config is the full renderer configuration. Width or height of zero means
// "use the terminal size at startup".
type Config struct {
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Background     string     `json:"background"`
	CameraDistance float64    `json:"camera_distance"`
	Scale          float64    `json:"scale"`
	SampleStep     float64    `json:"sample_step"`
	Spin           Spin       `json:"spin"`
	FrameDelayUS   int        `json:"frame_delay_us"`
	HUD            bool       `json:"hud"`
	Cubes          []CubeSpec `json:"cubes"`
}

// Default returns the reference configuration: three cubes of shrinking
// size spread across a 160×44 grid.
func Default() Config {
	return Config{
		Width:          160,
		Height:         44,
		Background:     ".",
		CameraDistance: 100,
		Scale:          40,
		SampleStep:     0.6,
		Spin:           Spin{A: 0.05, B: 0.05, C: 0.01},
		FrameDelayUS:   16000,
		Cubes: []CubeSpec{
			{Half: 20, Offset: -40},
			{Half: 10, Offset: 10},
			{Half: 5, Offset: 40},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; it
// simply yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// BackgroundRune decodes the background symbol.
func (c Config) BackgroundRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Background)
	return r
}

// Validate rejects configurations the renderer cannot honor. Everything
// checked here is checked once, at startup; the frame loop assumes a valid
// configuration and never re-checks.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: grid %dx%d is negative", c.Width, c.Height)
	}
	r, size := utf8.DecodeRuneInString(c.Background)
	if r == utf8.RuneError || size != len(c.Background) || runewidth.RuneWidth(r) != 1 {
		return fmt.Errorf("config: background %q must be a single one-cell rune", c.Background)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %v must be positive", c.Scale)
	}
	if c.SampleStep <= 0 {
		return fmt.Errorf("config: sample_step %v must be positive", c.SampleStep)
	}
	if c.FrameDelayUS < 0 {
		return fmt.Errorf("config: frame_delay_us %d is negative", c.FrameDelayUS)
	}
	for _, cube := range c.Cubes {
		if cube.Half <= 0 {
			return fmt.Errorf("config: cube half-extent %v must be positive", cube.Half)
		}
		if c.CameraDistance <= cube.Half {
			return fmt.Errorf("config: camera_distance %v must exceed cube half-extent %v", c.CameraDistance, cube.Half)
		}
	}
	return nil
}
