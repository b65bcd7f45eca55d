package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"same position", NewRectF(100, 100, 40, 40), NewRectF(100, 100, 40, 40), true},
		{"partial overlap", NewRectF(0, 0, 40, 40), NewRectF(39.5, 39.5, 100, 20), true},
		{"touching edges", NewRectF(0, 0, 40, 40), NewRectF(40, 0, 10, 10), false},
		{"separated beyond extents", NewRectF(0, 0, 40, 40), NewRectF(200, 200, 100, 20), false},
		{"zero-height rect never collides", NewRectF(0, 0, 40, 40), NewRectF(10, 10, 10, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"same center", NewCircle(200, 570, 10), NewCircle(200, 570, 30), true},
		{"just overlapping", NewCircle(0, 0, 10), NewCircle(39.9, 0, 30), true},
		{"exactly touching", NewCircle(0, 0, 10), NewCircle(40, 0, 30), false},
		{"diagonal overlap", NewCircle(0, 0, 10), NewCircle(25, 25, 30), true},
		{"diagonal separation", NewCircle(0, 0, 10), NewCircle(30, 30, 30), false},
		{"far apart", NewCircle(0, 0, 10), NewCircle(100, 100, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	b := NewCircle(200, 300, 20).Bounds()
	want := NewRectF(180, 280, 40, 40)
	if b != want {
		t.Errorf("Bounds() = %+v, expected %+v", b, want)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
