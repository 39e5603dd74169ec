// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cube/project.go
// Summary: Perspective projection from rotated model space onto the cell grid.

package cube

import "math"

// Camera holds the fixed projection parameters shared by every cube.
type Camera struct {
	// Distance separates the model origin from the eye. It must exceed the
	// largest cube half-extent so z'+Distance stays positive for every
	// sample; Scene validation enforces that once, at construction.
	Distance float64
	// Scale is the projection constant K1.
	Scale float64
}

// Project maps a rotated point to a screen cell and its inverse depth.
// Terminal cells are roughly twice as tall as wide, hence the factor 2 on x.
func (c Camera) Project(p Vec3, offset float64, w, h int) (x, y int, ooz float64) {
	ooz = 1 / (p.Z + c.Distance)
	x = int(math.Round(float64(w)/2 + offset + c.Scale*ooz*p.X*2))
	y = int(math.Round(float64(h)/2 + c.Scale*ooz*p.Y))
	return x, y, ooz
}
