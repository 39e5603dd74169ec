// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/ansi.go
// Summary: Plain ANSI presenter writing frames to an io.Writer.

package term

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/framegrace/cubeloop/cube"
)

const (
	cursorHome = "\x1b[H"
	cursorHide = "\x1b[?25l"
	cursorShow = "\x1b[?25h"
	clearBelow = "\x1b[J"
)

// ANSIPresenter writes frames with a single cursor-home escape per frame,
// relying on overwrite instead of clearing. It buffers each frame into one
// Write call so slow terminals never see a half-drawn grid.
type ANSIPresenter struct {
	w   io.Writer
	fd  int // -1 when w is not a terminal
	buf []byte
}

// NewANSIPresenter targets w, typically os.Stdout.
func NewANSIPresenter(w io.Writer) *ANSIPresenter {
	p := &ANSIPresenter{w: w, fd: -1}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// Init hides the cursor and clears whatever was below it.
func (p *ANSIPresenter) Init() error {
	_, err := io.WriteString(p.w, cursorHide+cursorHome+clearBelow)
	return err
}

// Fini restores the cursor.
func (p *ANSIPresenter) Fini() {
	io.WriteString(p.w, cursorShow)
}

// Size reports the terminal size, or (0, 0) when the writer is not one.
func (p *ANSIPresenter) Size() (int, int) {
	if p.fd < 0 {
		return 0, 0
	}
	w, h, err := term.GetSize(p.fd)
	if err != nil {
		return 0, 0
	}
	return w, h
}

// Present emits the frame: cursor to top-left, then every row left to right,
// top to bottom, with a line break before each row including the first.
func (p *ANSIPresenter) Present(f *cube.Frame) error {
	p.buf = p.buf[:0]
	p.buf = append(p.buf, cursorHome...)
	_, h := f.Size()
	for y := 0; y < h; y++ {
		p.buf = append(p.buf, '\n')
		for _, r := range f.Row(y) {
			p.buf = utf8.AppendRune(p.buf, r)
		}
	}
	_, err := p.w.Write(p.buf)
	return err
}
