// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cube/sample.go
// Summary: Point-samples cube faces through rotation and projection.

package cube

// Cube describes one cube drawn per frame: its half-extent and the
// horizontal screen offset separating it from its neighbours.
type Cube struct {
	Half   float64
	Offset float64
}

// Sampler walks the six faces of a cube at a fixed surface step and feeds
// every rotated, projected sample to the frame's depth test. The sample
// count per face is (2*Half/Step)², times six faces, times the cube count;
// this loop dominates the per-frame cost and must stay allocation-free.
type Sampler struct {
	Camera Camera
	Step   float64
}

// Sample renders one cube under the given rotation into f.
func (s Sampler) Sample(c Cube, r Angles, f *Frame) {
	w, h := f.Size()
	for face := Face(0); face < numFaces; face++ {
		sym := face.Symbol()
		for u := -c.Half; u < c.Half; u += s.Step {
			for v := -c.Half; v < c.Half; v += s.Step {
				p := Rotate(face.point(u, v, c.Half), r)
				x, y, ooz := s.Camera.Project(p, c.Offset, w, h)
				f.Submit(x, y, ooz, sym)
			}
		}
	}
}
