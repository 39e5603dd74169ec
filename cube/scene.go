// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cube/scene.go
// Summary: Frame driver: owns rotation state and the reusable frame buffer.

package cube

import (
	"fmt"
	"sync"
	"time"
)

// Presenter consumes each finished frame. Implementations live outside the
// core; they own the terminal, the core only owns the grid.
type Presenter interface {
	Present(f *Frame) error
}

// Pacer blocks between frames. It exists as an interface so tests can drive
// the scene without sleeping.
type Pacer interface {
	Pace(d time.Duration)
}

// Scene owns everything that persists across frames: the ordered cube list,
// the shared rotation state and the frame buffer it rebuilds every cycle.
// It is single-threaded by design; nothing here needs a lock.
type Scene struct {
	cubes   []Cube
	sampler Sampler
	spin    Angles // per-frame increments; C deliberately slower than A and B
	angles  Angles
	frame   *Frame
	frames  uint64
	stop    chan struct{}
	once    sync.Once
}

// NewScene validates the configuration and allocates the frame buffer.
// The camera distance must strictly exceed every half-extent; that single
// check makes a non-positive projection depth unreachable, so the sampler
// never guards for it.
func NewScene(w, h int, background rune, cam Camera, step float64, spin Angles, cubes []Cube) (*Scene, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scene: grid %dx%d is not drawable", w, h)
	}
	if step <= 0 {
		return nil, fmt.Errorf("scene: sampling step %v must be positive", step)
	}
	for _, c := range cubes {
		if c.Half <= 0 {
			return nil, fmt.Errorf("scene: cube half-extent %v must be positive", c.Half)
		}
		if cam.Distance <= c.Half {
			return nil, fmt.Errorf("scene: camera distance %v must exceed cube half-extent %v", cam.Distance, c.Half)
		}
	}
	return &Scene{
		cubes:   cubes,
		sampler: Sampler{Camera: cam, Step: step},
		spin:    spin,
		frame:   NewFrame(w, h, background),
		stop:    make(chan struct{}),
	}, nil
}

// Advance computes one complete frame: reset the buffer, sample every cube
// under the shared angles, then advance the rotation. It returns the frame
// it owns; callers must finish with it before the next Advance.
func (s *Scene) Advance() *Frame {
	s.frame.Reset()
	for _, c := range s.cubes {
		s.sampler.Sample(c, s.angles, s.frame)
	}
	s.angles.A += s.spin.A
	s.angles.B += s.spin.B
	s.angles.C += s.spin.C
	s.frames++
	return s.frame
}

// Angles reports the rotation the next frame will be sampled with.
func (s *Scene) Angles() Angles { return s.angles }

// Frames reports how many frames have been computed so far.
func (s *Scene) Frames() uint64 { return s.frames }

// Run drives Advance forever, presenting each frame and yielding to the
// pacer in between. It returns nil after Stop, or the first presenter error.
func (s *Scene) Run(p Presenter, pacer Pacer, delay time.Duration) error {
	for {
		select {
		case <-s.stop:
			return nil
		default:
		}
		if err := p.Present(s.Advance()); err != nil {
			return err
		}
		pacer.Pace(delay)
	}
}

// Stop makes Run return before its next frame. Safe to call more than once.
func (s *Scene) Stop() {
	s.once.Do(func() { close(s.stop) })
}
