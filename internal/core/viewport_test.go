package core

import "testing"

func TestViewportRectCells(t *testing.T) {
	vp := NewViewport(800, 600, 80, 24)

	tests := []struct {
		name string
		r    RectF
		want Rect
	}{
		{"aligned", NewRectF(0, 0, 100, 100), NewRect(0, 0, 10, 4)},
		{"partial cells round outward", NewRectF(15, 30, 10, 10), NewRect(1, 1, 2, 1)},
		{"tiny rect covers one cell", NewRectF(401, 301, 1, 1), NewRect(40, 12, 1, 1)},
		{"empty rect", NewRectF(0, 0, 0, 50), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.RectCells(tc.r); got != tc.want {
				t.Errorf("RectCells(%+v) = %+v, expected %+v", tc.r, got, tc.want)
			}
		})
	}
}

func TestViewportCell(t *testing.T) {
	vp := NewViewport(400, 600, 40, 30)
	x, y := vp.Cell(Vec{X: 200, Y: 570})
	if x != 20 || y != 28 {
		t.Errorf("Cell() = (%d, %d), expected (20, 28)", x, y)
	}
}

func TestViewportFillCircle(t *testing.T) {
	s := NewScreen(40, 30)
	vp := ViewportFor(400, 600, s)

	vp.FillCircle(s, NewCircle(200, 300, 60), 'O', ColorBlue)
	if c := s.GetCell(20, 15); c.Rune != 'O' || c.Color != ColorBlue {
		t.Errorf("circle center cell = %+v, expected blue 'O'", c)
	}
	if s.Get(0, 0) != ' ' {
		t.Error("FillCircle should not draw far outside the circle")
	}

	// A circle much smaller than a cell still shows up.
	vp.FillCircle(s, NewCircle(55, 55, 1), '*', ColorYellow)
	if s.Get(5, 2) != '*' {
		t.Errorf("tiny circle should mark its center cell, got %q", s.Get(5, 2))
	}
}

func TestViewportZeroWorld(t *testing.T) {
	s := NewScreen(10, 10)
	vp := ViewportFor(0, 0, s)
	vp.FillCircle(s, NewCircle(1, 1, 1), 'O', ColorRed) // must not panic
	if s.Get(0, 0) != ' ' {
		t.Error("zero-sized world should draw nothing")
	}
}
