package valuecurve

// CubicSegment is one cubic Bézier arc between two consecutive control
// points of a curve. P0 and P3 are the point positions, P1 and P2 are the
// handle absolutes in use.
type CubicSegment struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Start returns the segment's start point.
func (cs CubicSegment) Start() Point { return cs.P0 }

// End returns the segment's end point.
func (cs CubicSegment) End() Point { return cs.P3 }

// Eval evaluates the segment at parameter t using the cubic Bernstein
// basis. The Bernstein weights are non-negative and sum to one, so the
// result always lies in the convex hull of the four control points.
func (cs CubicSegment) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cs.P0).Mul(mt * mt * mt)
	b := Vec2(cs.P1).Mul(mt * mt * 3.0)
	c := Vec2(cs.P2).Mul(mt * 3.0)
	d := Vec2(cs.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Derivative evaluates the segment's derivative at parameter t.
func (cs CubicSegment) Derivative(t float64) Vec2 {
	mt := 1.0 - t
	a := cs.P1.Sub(cs.P0).Mul(3.0 * mt * mt)
	b := cs.P2.Sub(cs.P1).Mul(6.0 * mt * t)
	c := cs.P3.Sub(cs.P2).Mul(3.0 * t * t)
	return a.Add(b).Add(c)
}

// SplitAt subdivides the segment at parameter t, using de Casteljau's
// algorithm. The two halves together trace the same curve as the original
// segment; the split position is the first half's P3 and the second half's
// P0.
func (cs CubicSegment) SplitAt(t float64) (CubicSegment, CubicSegment) {
	p01 := cs.P0.Lerp(cs.P1, t)
	p12 := cs.P1.Lerp(cs.P2, t)
	p23 := cs.P2.Lerp(cs.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicSegment{cs.P0, p01, p012, pm},
		CubicSegment{pm, p123, p23, cs.P3}
}

// SolveForX returns the parameters at which the segment's x component
// equals x, in increasing order. For segments whose handles stay within
// the x range of their end points, x is monotonic in t and at most one
// parameter is returned; free-standing segments can yield up to three.
func (cs CubicSegment) SolveForX(x float64) ([3]float64, int) {
	c0, c1, c2, c3 := bezierCoefficients(cs.P0.X, cs.P1.X, cs.P2.X, cs.P3.X)
	roots, n := SolveCubic(c0-x, c1, c2, c3)
	return filterUnitRoots(roots, n)
}

// bezierCoefficients returns the power basis coefficients of one coordinate
// of a cubic Bézier.
func bezierCoefficients(x0, x1, x2, x3 float64) (float64, float64, float64, float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}

// HullBoundsY returns the minimum and maximum y coordinate of the four
// control points. Eval cannot produce a y value outside these bounds.
func (cs CubicSegment) HullBoundsY() (float64, float64) {
	return min(cs.P0.Y, cs.P1.Y, cs.P2.Y, cs.P3.Y),
		max(cs.P0.Y, cs.P1.Y, cs.P2.Y, cs.P3.Y)
}

// remapX returns a copy of the segment with all x coordinates remapped
// from [x0, x1] to [0, 1].
func (cs CubicSegment) remapX(x0, x1 float64) CubicSegment {
	f := func(pt Point) Point {
		return Pt(Remap(pt.X, x0, x1, 0, 1), pt.Y)
	}
	return CubicSegment{f(cs.P0), f(cs.P1), f(cs.P2), f(cs.P3)}
}

// IsNaN reports whether any control point coordinate is NaN.
func (cs CubicSegment) IsNaN() bool {
	return cs.P0.IsNaN() || cs.P1.IsNaN() || cs.P2.IsNaN() || cs.P3.IsNaN()
}
