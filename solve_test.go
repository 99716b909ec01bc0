package valuecurve

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(-5, 0, 0, 1)), []float64{math.Cbrt(5)})
	checkRoots(t, slice(SolveCubic(-5.0, -1.0, 0.0, 1.0)), []float64{1.90416085913492})
	checkRoots(t, slice(SolveCubic(0.0, -1.0, 0.0, 1.0)), []float64{-1.0, 0.0, 1.0})
	checkRoots(t, slice(SolveCubic(-2.0, -3.0, 0.0, 1.0)), []float64{-1.0, 2.0})
	checkRoots(t, slice(SolveCubic(2.0, -3.0, 0.0, 1.0)), []float64{-2.0, 1.0})
	checkRoots(t, slice(SolveCubic(2.0-1e-12, 5.0, 4.0, 1.0)),
		[]float64{
			-1.9999999999989995,
			-1.0000010000848456,
			-0.9999989999161546,
		},
	)
	checkRoots(t, slice(SolveCubic(2.0+1e-12, 5.0, 4.0, 1.0)), []float64{-2.0})
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
}

func TestFilterUnitRoots(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	// Roots outside [0, 1] are dropped.
	checkRoots(t, slice(filterUnitRoots([3]float64{-0.5, 0.25, 1.5}, 3)), []float64{0.25})
	// Roots within the snap distance of an end land on it exactly.
	roots, n := filterUnitRoots([3]float64{-1e-13, 1 + 1e-13, 0.5}, 3)
	if n != 3 {
		t.Fatalf("got %d roots, expected 3", n)
	}
	if roots[0] != 0 || roots[2] != 1 {
		t.Errorf("got boundary roots %v and %v, expected exact 0 and 1", roots[0], roots[2])
	}
	// Results come back sorted even when the input is not.
	roots, n = filterUnitRoots([3]float64{0.75, 0.25, 0.5}, 3)
	checkRoots(t, slice(roots, n), []float64{0.25, 0.5, 0.75})
	// Unfilled tail slots are not considered.
	checkRoots(t, slice(filterUnitRoots([3]float64{2.0, 0.0, 0.0}, 1)), []float64{})
}
