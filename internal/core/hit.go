package core

import "math"

// HitKind classifies how a circle overlaps a rectangle.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitTop
	HitBottom
	HitLeft
	HitRight
	HitTopLeft
	HitTopRight
	HitBottomLeft
	HitBottomRight
)

// String returns a human-readable name for the hit kind.
func (k HitKind) String() string {
	switch k {
	case HitNone:
		return "None"
	case HitTop:
		return "Top"
	case HitBottom:
		return "Bottom"
	case HitLeft:
		return "Left"
	case HitRight:
		return "Right"
	case HitTopLeft:
		return "TopLeft"
	case HitTopRight:
		return "TopRight"
	case HitBottomLeft:
		return "BottomLeft"
	case HitBottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// IsEdge reports whether the hit is on a flat edge.
func (k HitKind) IsEdge() bool {
	return k >= HitTop && k <= HitRight
}

// IsCorner reports whether the hit is on a corner.
func (k HitKind) IsCorner() bool {
	return k >= HitTopLeft && k <= HitBottomRight
}

// Vertical reports whether an edge hit should invert vertical velocity.
func (k HitKind) Vertical() bool {
	return k == HitTop || k == HitBottom
}

// Corner returns the coordinates of the rect corner named by k.
// ok is false for non-corner kinds.
func (k HitKind) Corner(r Rect) (x, y float64, ok bool) {
	switch k {
	case HitTopLeft:
		return r.Left, r.Top, true
	case HitTopRight:
		return r.Right, r.Top, true
	case HitBottomLeft:
		return r.Left, r.Bottom, true
	case HitBottomRight:
		return r.Right, r.Bottom, true
	default:
		return 0, 0, false
	}
}

// CircleRectHitKind classifies how a circle overlaps rect.
//
// A center outside the rect on both axes lies in a corner region and only
// counts when the corner itself is within radius. Otherwise the shape of the
// overlap decides: taller than wide is a side hit (Left/Right), anything else
// is a Top/Bottom hit, with the side picked by which half holds the center.
func CircleRectHitKind(rect Rect, cx, cy, radius float64) HitKind {
	bounds := CircleBounds(cx, cy, radius)
	if !rect.Intersects(bounds) {
		return HitNone
	}

	outsideX := cx < rect.Left || cx > rect.Right
	outsideY := cy < rect.Top || cy > rect.Bottom

	if outsideX && outsideY {
		var kind HitKind
		switch {
		case cx < rect.Left && cy < rect.Top:
			kind = HitTopLeft
		case cx > rect.Right && cy < rect.Top:
			kind = HitTopRight
		case cx < rect.Left:
			kind = HitBottomLeft
		default:
			kind = HitBottomRight
		}
		x, y, _ := kind.Corner(rect)
		if Distance(cx, cy, x, y) <= radius {
			return kind
		}
		return HitNone
	}

	overlapW := math.Min(rect.Right, bounds.Right) - math.Max(rect.Left, bounds.Left)
	overlapH := math.Min(rect.Bottom, bounds.Bottom) - math.Max(rect.Top, bounds.Top)

	if overlapH > overlapW {
		if cx < rect.CenterX() {
			return HitLeft
		}
		return HitRight
	}
	if cy < rect.CenterY() {
		return HitTop
	}
	return HitBottom
}
