// Copyright © 2025 Cubeloop contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/hud.go
// Summary: Presenter decorator stamping a status line over finished frames.

package term

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/framegrace/cubeloop/cube"
)

// HUDPresenter wraps another presenter and stamps a centered status line
// into the top row of every frame before passing it on. It runs after
// compositing, so it never participates in the depth test.
type HUDPresenter struct {
	next   cube.Presenter
	frames uint64
	marked time.Time
	rate   float64
	now    func() time.Time
}

// WithHUD decorates next with the status line.
func WithHUD(next cube.Presenter) *HUDPresenter {
	return &HUDPresenter{next: next, now: time.Now}
}

// Present stamps the status line and delegates.
func (p *HUDPresenter) Present(f *cube.Frame) error {
	p.frames++
	now := p.now()
	if p.marked.IsZero() {
		p.marked = now
	} else if d := now.Sub(p.marked); d >= time.Second {
		p.rate = float64(p.frames) / d.Seconds()
		p.frames = 0
		p.marked = now
	}

	line := " cubeloop "
	if p.rate > 0 {
		line = fmt.Sprintf(" %.1f fps ", p.rate)
	}
	w, _ := f.Size()
	x := (w - runewidth.StringWidth(line)) / 2
	for _, r := range line {
		if runewidth.RuneWidth(r) != 1 {
			continue
		}
		f.Stamp(x, 0, r)
		x++
	}
	return p.next.Present(f)
}
