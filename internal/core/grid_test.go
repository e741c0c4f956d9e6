package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	if g.W != 4 || g.H != 3 {
		t.Fatalf("unexpected size %dx%d", g.W, g.H)
	}

	cases := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.in {
			t.Fatalf("InBounds(%d,%d)=%v, expected %v", c.x, c.y, got, c.in)
		}
		if got := g.Set(c.x, c.y, 7); got != c.in {
			t.Fatalf("Set(%d,%d) reported %v, expected %v", c.x, c.y, got, c.in)
		}
	}

	if g.Count() != 2 {
		t.Fatalf("expected 2 cells written, got %d", g.Count())
	}
	if g.At(3, 2) != 7 || g.Cells()[g.Index(3, 2)] != 7 {
		t.Fatal("At and Index disagree with Set")
	}
	if g.At(10, 10) != 0 {
		t.Fatal("out-of-bounds reads must return 0")
	}

	g.Clear()
	if g.Count() != 0 || len(g.Cells()) != 12 {
		t.Fatal("Clear must zero in place without resizing")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -5)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}
