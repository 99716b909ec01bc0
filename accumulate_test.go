package valuecurve

import (
	"errors"
	"math"
	"testing"
)

// flatSegment returns a degenerate segment tracing y over x0..x1.
func flatSegment(x0, x1, y float64) CubicSegment {
	return CubicSegment{Pt(x0, y), Pt(x0, y), Pt(x1, y), Pt(x1, y)}
}

func TestWeightedAccumulatorScatter(t *testing.T) {
	wa, err := NewWeightedAccumulator(5)
	if err != nil {
		t.Fatal(err)
	}
	wa.AddSegment(flatSegment(0, 1, 7), 4)
	if !wa.Finish() {
		t.Fatal("expected samples in the accumulator")
	}

	// A constant segment averages to its value in every bin it touched,
	// with no rounding residue.
	diff(t, []float64{7, 7, 7, 7, 7}, wa.values)
	diff(t, 7.0, wa.Lookup(0.3))

	for i, w := range wa.weights {
		if w <= 0 {
			t.Errorf("bin %d got weight %g, want > 0", i, w)
		}
	}
}

func TestWeightedAccumulatorGapFill(t *testing.T) {
	wa, err := NewWeightedAccumulator(8)
	if err != nil {
		t.Fatal(err)
	}
	// Seed two bins directly: bin 1 averages 10, bin 5 averages 20.
	wa.values[1], wa.weights[1] = 10, 1
	wa.values[5], wa.weights[5] = 40, 2
	if !wa.Finish() {
		t.Fatal("expected samples in the accumulator")
	}

	// Interior gaps interpolate between their reached neighbors; runs
	// touching an array end extend the single neighbor flat.
	diff(t, []float64{10, 10, 12.5, 15, 17.5, 20, 20, 20}, wa.values)
}

func TestWeightedAccumulatorPartialCoverage(t *testing.T) {
	wa, err := NewWeightedAccumulator(16)
	if err != nil {
		t.Fatal(err)
	}
	wa.AddSegment(flatSegment(0, 0.25, 8), 64)
	if !wa.Finish() {
		t.Fatal("expected samples in the accumulator")
	}

	// Everything right of the covered range extends flat.
	for i, v := range wa.values {
		if v != 8 {
			t.Errorf("bin %d is %g, want 8", i, v)
		}
	}
	diff(t, 8.0, wa.Lookup(1))
}

func TestWeightedAccumulatorFinish(t *testing.T) {
	wa, err := NewWeightedAccumulator(4)
	if err != nil {
		t.Fatal(err)
	}
	if wa.Finish() {
		t.Error("expected Finish to fail on an empty accumulator")
	}

	// Ignored inputs leave the accumulator empty.
	wa.AddSegment(flatSegment(0, 1, 3), 0)
	wa.AddSegment(CubicSegment{Pt(math.NaN(), 0), Pt(0, 0), Pt(1, 0), Pt(1, 0)}, 8)
	if wa.Finish() {
		t.Error("expected Finish to fail after ignored inputs")
	}

	wa.AddSegment(flatSegment(0, 1, 3), 8)
	if !wa.Finish() {
		t.Fatal("expected Finish to succeed")
	}
	if !wa.Finish() {
		t.Error("expected a second Finish to stay finished")
	}

	// A finished accumulator ignores further segments.
	wa.AddSegment(flatSegment(0, 1, 900), 8)
	diff(t, 3.0, wa.Lookup(0.5))
}

func TestWeightedAccumulatorLookup(t *testing.T) {
	wa, err := NewWeightedAccumulator(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range wa.values {
		wa.values[i] = float64(i) * 10
		wa.weights[i] = 1
	}

	if got := wa.Lookup(0.5); got != 0 {
		t.Errorf("got %g before Finish, want 0", got)
	}
	wa.Finish()

	diff(t, 0.0, wa.Lookup(0))
	diff(t, 15.0, wa.Lookup(0.5))
	diff(t, 30.0, wa.Lookup(1))
	diff(t, 0.0, wa.Lookup(-1))
	diff(t, 30.0, wa.Lookup(2))
	diff(t, 0.0, wa.Lookup(math.NaN()))
}

func TestNewWeightedAccumulator(t *testing.T) {
	for _, resolution := range []int{-1, 0, 1} {
		if _, err := NewWeightedAccumulator(resolution); !errors.Is(err, ErrBadResolution) {
			t.Errorf("resolution %d: got %v, want ErrBadResolution", resolution, err)
		}
	}
	wa, err := NewWeightedAccumulator(2)
	if err != nil {
		t.Fatal(err)
	}
	if n := wa.Resolution(); n != 2 {
		t.Errorf("got resolution %d, want 2", n)
	}
}
