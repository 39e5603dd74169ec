// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cube/rotate.go
// Summary: Model-space rotation math for the renderer.

package cube

import "math"

// Vec3 is a point in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Angles holds the shared rotation state, in radians, one angle per axis.
// The driver advances it once per frame; everything else only reads it.
type Angles struct {
	A, B, C float64
}

// Rotate applies the intrinsic rotation X-by-A, then Y-by-B, then Z-by-C to p.
// The order is part of the visible motion and must not change.
func Rotate(p Vec3, r Angles) Vec3 {
	sa, ca := math.Sincos(r.A)
	sb, cb := math.Sincos(r.B)
	sc, cc := math.Sincos(r.C)
	return Vec3{
		X: p.Y*sa*sb*cc - p.Z*ca*sb*cc + p.Y*ca*sc + p.Z*sa*sc + p.X*cb*cc,
		Y: p.Y*ca*cc + p.Z*sa*cc - p.Y*sa*sb*sc + p.Z*ca*sb*sc - p.X*cb*sc,
		Z: p.Z*ca*cb - p.Y*sa*cb + p.X*sb,
	}
}
