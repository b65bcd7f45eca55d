package core

import "math"

// Viewport maps world coordinates onto a grid of screen cells. Games simulate
// in world units and only use a Viewport when rendering.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport that stretches the world over cols x rows cells.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows}
}

// ViewportFor creates a viewport covering the whole screen.
func ViewportFor(worldW, worldH float64, dst *Screen) Viewport {
	return NewViewport(worldW, worldH, dst.Width(), dst.Height())
}

func (v Viewport) scale() (sx, sy float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	return float64(v.Cols) / v.WorldW, float64(v.Rows) / v.WorldH
}

// Cell returns the cell containing the world point p.
func (v Viewport) Cell(p Vec) (int, int) {
	sx, sy := v.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// RectCells returns the cells covered by a world rectangle. A rectangle with
// positive area always covers at least one cell.
func (v Viewport) RectCells(r RectF) Rect {
	if r.Empty() {
		return Rect{}
	}
	sx, sy := v.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect draws a world rectangle.
func (v Viewport) FillRect(dst *Screen, r RectF, ch rune, c Color) {
	if r.Empty() {
		return
	}
	dst.DrawRectColored(v.RectCells(r), ch, c)
}

// FillCircle draws a world circle, filling cells whose centers lie inside it.
// Circles smaller than a cell still mark the cell holding their center.
func (v Viewport) FillCircle(dst *Screen, circle Circle, ch rune, c Color) {
	sx, sy := v.scale()
	if sx == 0 || sy == 0 {
		return
	}

	bounds := v.RectCells(circle.Bounds())
	drawn := false
	for cy := bounds.Y; cy < bounds.Bottom(); cy++ {
		for cx := bounds.X; cx < bounds.Right(); cx++ {
			center := Vec{X: (float64(cx) + 0.5) / sx, Y: (float64(cy) + 0.5) / sy}
			if center.Dist(circle.Center()) < circle.R {
				dst.SetColored(cx, cy, ch, c)
				drawn = true
			}
		}
	}

	if !drawn {
		x, y := v.Cell(circle.Center())
		dst.SetColored(x, y, ch, c)
	}
}
