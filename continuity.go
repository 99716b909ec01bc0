package valuecurve

import "math"

// The update pipeline turns authored point data into the control positions
// used for evaluation. It runs as four sweeps over the sorted point
// sequence. Each sweep is a free function keyed on the continuity type, so
// a point can change type at runtime without changing identity.

// clampRightHandles computes UsedRight for every point, left to right.
//
// A right handle never points backward: a negative x component is zeroed,
// keeping y. A handle never reaches past the next point either: if its x
// extent exceeds the gap, the whole vector is scaled down proportionally,
// preserving its direction.
func clampRightHandles(points []ControlPoint) {
	for i := range points {
		p := &points[i]
		if !p.Type.hasRight() {
			p.UsedRight = p.Position
			continue
		}
		h := p.RightHandle
		if h.X < 0 {
			h.X = 0
		}
		if i+1 < len(points) {
			if dx := points[i+1].Position.X - p.Position.X; h.X > dx {
				h = h.Mul(dx / h.X)
			}
		}
		p.UsedRight = p.Position.Translate(h)
	}
}

// clampLeftHandles is the mirror image of clampRightHandles for UsedLeft,
// sweeping right to left against the gap to the previous point.
func clampLeftHandles(points []ControlPoint) {
	for i := len(points) - 1; i >= 0; i-- {
		p := &points[i]
		if !p.Type.hasLeft() {
			p.UsedLeft = p.Position
			continue
		}
		h := p.LeftHandle
		if h.X > 0 {
			h.X = 0
		}
		if i > 0 {
			if dx := points[i-1].Position.X - p.Position.X; h.X < dx {
				h = h.Mul(dx / h.X)
			}
		}
		p.UsedLeft = p.Position.Translate(h)
	}
}

// propagateAutoRight derives UsedRight for AutoRight points, left to
// right. The handle continues the direction the previous segment arrives
// with: the vector from the left neighbor's effective outgoing control to
// the point, clipped against the half-span box toward the next point so the
// handle never overshoots the segment midpoint, horizontally or vertically.
//
// The first point has no incoming direction and the last point no outgoing
// segment; both fall back to their own position.
func propagateAutoRight(points []ControlPoint) {
	for i := range points {
		p := &points[i]
		if p.Type != AutoRight {
			continue
		}
		if i == 0 || i == len(points)-1 {
			p.UsedRight = p.Position
			continue
		}
		prev := points[i-1]
		from := prev.Position
		if prev.Type.hasRight() {
			from = prev.UsedRight
		}
		v := p.Position.Sub(from)
		span := points[i+1].Position.Sub(p.Position).Mul(0.5)
		p.UsedRight = p.Position.Translate(clipToHalfSpan(v, span))
	}
}

// propagateAutoLeft is the mirror image of propagateAutoRight for
// UsedLeft, sweeping right to left and continuing the direction the next
// segment leaves with.
func propagateAutoLeft(points []ControlPoint) {
	for i := len(points) - 1; i >= 0; i-- {
		p := &points[i]
		if p.Type != AutoLeft {
			continue
		}
		if i == 0 || i == len(points)-1 {
			p.UsedLeft = p.Position
			continue
		}
		next := points[i+1]
		from := next.Position
		if next.Type.hasLeft() {
			from = next.UsedLeft
		}
		v := p.Position.Sub(from)
		span := points[i-1].Position.Sub(p.Position).Mul(0.5)
		p.UsedLeft = p.Position.Translate(clipToHalfSpan(v, span))
	}
}

// clipToHalfSpan shortens v so that it stays inside the box spanned by the
// origin and span.X horizontally, and by ±|span.Y| vertically. The ray
// along v is intersected with the box's bounding lines; the nearest
// intersection that lies toward span and strictly shortens v wins. A
// vector that does not head toward span is returned unchanged.
func clipToHalfSpan(v, span Vec2) Vec2 {
	if v.X*span.X <= 0 {
		return v
	}
	best := math.Inf(1)
	if t := span.X / v.X; t > 0 {
		best = t
	}
	if v.Y != 0 {
		if t := math.Abs(span.Y) / math.Abs(v.Y); t > 0 && t < best {
			best = t
		}
	}
	if best < 1 {
		return v.Mul(best)
	}
	return v
}
