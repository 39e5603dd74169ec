package cube

import "testing"

func TestFrameResetFillsBackground(t *testing.T) {
	f := NewFrame(4, 3, '.')
	f.Submit(1, 1, 0.5, '@')
	f.Reset()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if f.At(x, y) != '.' {
				t.Fatalf("cell (%d,%d) = %q after reset, want '.'", x, y, f.At(x, y))
			}
		}
	}
	for i, d := range f.depth {
		if d != 0 {
			t.Fatalf("depth[%d] = %v after reset, want 0", i, d)
		}
	}
}

func TestFrameSubmitIdempotentAtEqualDepth(t *testing.T) {
	f := NewFrame(4, 3, '.')
	f.Submit(2, 1, 0.25, '#')
	f.Submit(2, 1, 0.25, '#')
	if f.At(2, 1) != '#' {
		t.Fatalf("cell = %q, want '#'", f.At(2, 1))
	}
	if f.depth[1*4+2] != 0.25 {
		t.Fatalf("depth = %v, want 0.25", f.depth[1*4+2])
	}
}

func TestFrameDepthTestOrderIndependent(t *testing.T) {
	orders := [][]struct {
		ooz float64
		sym rune
	}{
		{{0.1, 'a'}, {0.2, 'b'}, {0.3, 'c'}},
		{{0.3, 'c'}, {0.1, 'a'}, {0.2, 'b'}},
	}
	for _, order := range orders {
		f := NewFrame(2, 2, ' ')
		for _, s := range order {
			f.Submit(0, 0, s.ooz, s.sym)
		}
		if f.At(0, 0) != 'c' {
			t.Fatalf("order %v left %q, want 'c'", order, f.At(0, 0))
		}
	}
}

func TestFrameSubmitOutOfBoundsIsNoop(t *testing.T) {
	f := NewFrame(4, 3, '.')
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-100, 200}} {
		f.Submit(c[0], c[1], 0.9, 'X')
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if f.At(x, y) != '.' {
				t.Fatalf("out-of-bounds submit altered cell (%d,%d)", x, y)
			}
		}
	}
}

func TestFrameStampBypassesDepthTest(t *testing.T) {
	f := NewFrame(4, 3, '.')
	f.Submit(1, 0, 0.9, '@')
	f.Stamp(1, 0, 'H')
	if f.At(1, 0) != 'H' {
		t.Fatalf("cell = %q after stamp, want 'H'", f.At(1, 0))
	}
	f.Stamp(-1, 5, 'H') // must clip, not panic
}

func TestFrameRowIsRowMajor(t *testing.T) {
	f := NewFrame(3, 2, '.')
	f.Submit(2, 1, 0.5, '$')
	row := f.Row(1)
	if len(row) != 3 || row[2] != '$' {
		t.Fatalf("Row(1) = %q, want '..$'", string(row))
	}
}
