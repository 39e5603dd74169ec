// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/tcell.go
// Summary: tcell-backed presenter with a quit channel for the outer loop.

package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/cubeloop/cube"
)

// TcellPresenter draws frames through a tcell.Screen, letting tcell diff
// cell updates against the terminal. It also watches for a quit key so the
// binary can leave the alternate screen cleanly; the rendering core itself
// still takes no input.
type TcellPresenter struct {
	screen tcell.Screen
	style  tcell.Style
	quit   chan struct{}
	once   sync.Once
}

// NewTcellPresenter allocates the screen without touching the terminal yet.
func NewTcellPresenter() (*TcellPresenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &TcellPresenter{
		screen: screen,
		style:  tcell.StyleDefault,
		quit:   make(chan struct{}),
	}, nil
}

// Init takes over the terminal and starts the event watcher.
func (p *TcellPresenter) Init() error {
	if err := p.screen.Init(); err != nil {
		return err
	}
	p.screen.SetStyle(p.style)
	p.screen.HideCursor()
	go p.watchEvents()
	return nil
}

// Fini releases the terminal.
func (p *TcellPresenter) Fini() {
	p.screen.Fini()
}

// Size reports the terminal size in cells.
func (p *TcellPresenter) Size() (int, int) {
	return p.screen.Size()
}

// Quit is closed when the user asks to leave (Ctrl-Q, Ctrl-C or Escape).
func (p *TcellPresenter) Quit() <-chan struct{} {
	return p.quit
}

// Present pushes the frame's cells to tcell and flushes.
func (p *TcellPresenter) Present(f *cube.Frame) error {
	w, h := f.Size()
	for y := 0; y < h; y++ {
		row := f.Row(y)
		for x := 0; x < w; x++ {
			p.screen.SetContent(x, y, row[x], nil, p.style)
		}
	}
	p.screen.Show()
	return nil
}

func (p *TcellPresenter) watchEvents() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlQ, tcell.KeyCtrlC, tcell.KeyEscape:
				p.once.Do(func() { close(p.quit) })
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}
