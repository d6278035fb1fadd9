// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in playfield coordinates.
// Y grows downward, so Top < Bottom for a well-formed rect.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromSize creates a rectangle from its top-left corner and dimensions.
func RectFromSize(left, top, w, h float64) Rect {
	return Rect{Left: left, Top: top, Right: left + w, Bottom: top + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 {
	return (r.Left + r.Right) / 2
}

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 {
	return (r.Top + r.Bottom) / 2
}

// MoveTo returns the rect with its top-left corner at (left, top), keeping its size.
func (r Rect) MoveTo(left, top float64) Rect {
	return RectFromSize(left, top, r.Width(), r.Height())
}

// Translate returns the rect shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Valid reports whether the rect has finite coordinates and positive size.
func (r Rect) Valid() bool {
	return Finite(r.Left, r.Top, r.Right, r.Bottom) && r.Right > r.Left && r.Bottom > r.Top
}

// CircleBounds returns the bounding square of a circle.
func CircleBounds(cx, cy, radius float64) Rect {
	return Rect{Left: cx - radius, Top: cy - radius, Right: cx + radius, Bottom: cy + radius}
}

// RectIntersectsCircle reports whether the circle's bounding square overlaps rect.
// This is the coarse test used for paddles.
func RectIntersectsCircle(rect Rect, cx, cy, radius float64) bool {
	return rect.Intersects(CircleBounds(cx, cy, radius))
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ClampF restricts a float64 value to be within [min, max].
// When min > max the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
