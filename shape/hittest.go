package shape

import "math"

// SegmentTolerance is how close, in screen units, a point must be to a
// pencil segment for the eraser to take it. Divide by the viewport scale
// to get the equivalent world-space tolerance.
const SegmentTolerance = 5.0

// Hit reports whether the point (x, y) should erase s, using the default
// segment tolerance. Both are in world coordinates.
func Hit(s Shape, x, y float64) bool {
	return HitWithin(s, x, y, SegmentTolerance)
}

// HitWithin is Hit with an explicit pencil tolerance, for callers that
// have scaled the tolerance into world units.
func HitWithin(s Shape, x, y, tolerance float64) bool {
	switch v := s.(type) {
	case Rect:
		return hitRect(v, x, y)
	case Circle:
		return hitCircle(v, x, y)
	case Pencil:
		return distToSegment(x, y, v.StartX, v.StartY, v.EndX, v.EndY) <= tolerance
	default:
		return false
	}
}

func hitRect(r Rect, x, y float64) bool {
	minX, maxX := r.X, r.X+r.Width
	if r.Width < 0 {
		minX, maxX = maxX, minX
	}
	minY, maxY := r.Y, r.Y+r.Height
	if r.Height < 0 {
		minY, maxY = maxY, minY
	}
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

func hitCircle(c Circle, x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// distToSegment is the distance from (px, py) to the segment (x1,y1)-(x2,y2),
// clamped to the segment's extent rather than the infinite line through it.
func distToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
