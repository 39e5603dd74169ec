// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cube/face.go
// Summary: The six cube faces and their display symbols.

package cube

// Face identifies one of the six cube surfaces. Each face pins one model
// coordinate at ±half-extent and draws with its own fixed symbol, which is
// the only per-face shading this renderer does.
type Face int

const (
	NegZ Face = iota
	PosX
	NegX
	PosZ
	NegY
	PosY
	numFaces
)

var faceSymbols = [numFaces]rune{'@', '$', '~', '#', ';', '+'}

// Symbol returns the rune drawn for every sample on the face.
func (f Face) Symbol() rune { return faceSymbols[f] }

// point places the free surface coordinates (u, v) on the face of a cube
// with the given half-extent.
func (f Face) point(u, v, half float64) Vec3 {
	switch f {
	case NegZ:
		return Vec3{u, v, -half}
	case PosX:
		return Vec3{half, v, u}
	case NegX:
		return Vec3{-half, v, -u}
	case PosZ:
		return Vec3{-u, v, half}
	case NegY:
		return Vec3{u, -half, -v}
	case PosY:
		return Vec3{u, half, v}
	}
	return Vec3{}
}
