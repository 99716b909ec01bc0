package valuecurve

import (
	"math"
	"sort"
)

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// SolveCubic finds real roots of cubic equations.
//
// The implementation is not (yet) fully robust, but it does handle the case
// where c3 is zero (in that case, solving the quadratic equation).
//
// See: https://momentsingraphics.de/CubicRoots.html
//
// That implementation is in turn based on Jim Blinn's "How to Solve a Cubic
// Equation", which is masterful.
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0.0
//
// The second return value states how many roots were found.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1.0 / c3
	scaledC2 := c2 * (1.0 / 3.0 * c3Recip)
	scaledC1 := c1 * (1.0 / 3.0 * c3Recip)
	scaledC0 := c0 * c3Recip
	if math.IsInf(scaledC0, 0) || math.IsInf(scaledC1, 0) || math.IsInf(scaledC2, 0) {
		// cubic coefficient is zero or nearly so.
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2
	// (d0, d1, d2) is called "Delta" in article
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	// d is called "Discriminant"
	d := 4.0*d0*d2 - d1*d1
	// de is called "Depressed.x", Depressed.y = d0
	de := math.FMA(-2.0*c2, d0, d1)
	// TODO: handle the cases where these intermediate results overflow.
	if d < 0.0 {
		sq := math.Sqrt(-0.25 * d)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	} else if d == 0.0 {
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, -2.0*t1 - c2}, 2
	} else {
		th := math.Atan2(math.Sqrt(d), -de) * (1.0 / 3.0)
		// (thCos, thSin) is called "CubicRoot"
		thSin, thCos := math.Sincos(th)
		// (r0, r1, r2) is called "Root"
		r0 := thCos
		ss3 := thSin * math.Sqrt(3.0)
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2.0 * math.Sqrt(-d0)

		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}

// filterUnitRoots keeps the roots that lie in [0, 1] and returns them sorted
// in increasing order. Roots within eps outside either end snap onto the
// boundary, absorbing the error the solvers accrue near curve endpoints.
func filterUnitRoots(roots [3]float64, n int) ([3]float64, int) {
	const eps = 1e-12
	var out [3]float64
	outN := 0
	for _, root := range roots[:n] {
		switch {
		case root >= 0.0 && root <= 1.0:
		case root > -eps && root < 0.0:
			root = 0.0
		case root > 1.0 && root < 1.0+eps:
			root = 1.0
		default:
			continue
		}
		out[outN] = root
		outN++
	}
	sort.Float64s(out[:outN])
	return out, outN
}
