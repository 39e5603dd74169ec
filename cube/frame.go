// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cube/frame.go
// Summary: The z-buffered compositing grid one frame is rendered into.

package cube

// Frame is the compositing target: a row-major grid of display symbols with
// a parallel inverse-depth buffer. Both buffers are allocated once and
// reused in place every frame, so the sampling hot path never allocates.
type Frame struct {
	width, height int
	background    rune
	syms          []rune
	depth         []float64
}

// NewFrame allocates a frame of w×h cells painted with the background symbol.
func NewFrame(w, h int, background rune) *Frame {
	f := &Frame{
		width:      w,
		height:     h,
		background: background,
		syms:       make([]rune, w*h),
		depth:      make([]float64, w*h),
	}
	f.Reset()
	return f
}

// Size returns the grid dimensions in cells.
func (f *Frame) Size() (int, int) { return f.width, f.height }

// Reset repaints every cell with the background symbol and marks it
// unoccupied (inverse depth zero, meaning infinitely far).
func (f *Frame) Reset() {
	for i := range f.syms {
		f.syms[i] = f.background
		f.depth[i] = 0
	}
}

// Submit offers a candidate sample for one cell. Coordinates outside the
// grid are clipped silently; that is expected for points shifted far
// off-screen, not an error. Inside the grid the candidate wins the cell only
// if it is strictly closer than whatever is already stored, which realizes
// nearest-surface-wins occlusion without any sorting. Ties keep the last
// writer, an acceptable tie-break for a visual grid.
func (f *Frame) Submit(x, y int, ooz float64, sym rune) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := y*f.width + x
	if ooz > f.depth[i] {
		f.depth[i] = ooz
		f.syms[i] = sym
	}
}

// Stamp writes a symbol unconditionally, bypassing the depth test. Overlays
// drawn after compositing use it; the sampler never does.
func (f *Frame) Stamp(x, y int, sym rune) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.syms[y*f.width+x] = sym
}

// At returns the symbol currently held by cell (x, y).
func (f *Frame) At(x, y int) rune {
	return f.syms[y*f.width+x]
}

// Row returns one row of symbols. The slice aliases the frame's storage and
// is only valid until the next Reset; presenters must copy or emit it before
// the driver starts the next frame.
func (f *Frame) Row(y int) []rune {
	return f.syms[y*f.width : (y+1)*f.width]
}
