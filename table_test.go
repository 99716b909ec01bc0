package valuecurve

import (
	"errors"
	"math"
	"testing"
)

func TestNewSampleTable(t *testing.T) {
	for _, resolution := range []int{-1, 0, 1} {
		if _, err := NewSampleTable(resolution); !errors.Is(err, ErrBadResolution) {
			t.Errorf("resolution %d: got %v, want ErrBadResolution", resolution, err)
		}
	}
	tbl, err := NewSampleTable(2)
	if err != nil {
		t.Fatal(err)
	}
	if n := tbl.Resolution(); n != 2 {
		t.Errorf("got resolution %d, want 2", n)
	}
}

func TestSampleTableLookup(t *testing.T) {
	tbl := &SampleTable{samples: []float64{0, 10, 20, 30}}

	diff(t, 0.0, tbl.Lookup(0))
	diff(t, 15.0, tbl.Lookup(0.5))
	diff(t, 30.0, tbl.Lookup(1))

	// Positions outside [0, 1] clamp onto the ends.
	diff(t, 0.0, tbl.Lookup(-3))
	diff(t, 30.0, tbl.Lookup(7))

	diff(t, 0.0, tbl.Lookup(math.NaN()))
	diff(t, 0.0, (&SampleTable{}).Lookup(0.5))
}

func TestSampleTableAt(t *testing.T) {
	tbl := &SampleTable{samples: []float64{4, 5, 6}}
	diff(t, 5.0, tbl.At(1))
	diff(t, 0.0, tbl.At(-1))
	diff(t, 0.0, tbl.At(3))
}

func TestSampleTableSetFromAccumulator(t *testing.T) {
	wa, err := NewWeightedAccumulator(3)
	if err != nil {
		t.Fatal(err)
	}
	wa.values[0], wa.weights[0] = 5, 1
	wa.values[1], wa.weights[1] = 12, 2
	wa.values[2], wa.weights[2] = 7, 1

	tbl, _ := NewSampleTable(3)
	if tbl.SetFromAccumulator(wa) {
		t.Error("expected an unfinished accumulator to be rejected")
	}
	wa.Finish()
	if !tbl.SetFromAccumulator(wa) {
		t.Fatal("expected the copy to succeed")
	}
	diff(t, []float64{5, 6, 7}, tbl.samples)

	// Mismatched resolutions leave the table untouched.
	other, _ := NewSampleTable(4)
	if other.SetFromAccumulator(wa) {
		t.Error("expected a resolution mismatch to be rejected")
	}
	diff(t, []float64{0, 0, 0, 0}, other.samples)

	if tbl.SetFromAccumulator(nil) {
		t.Error("expected nil to be rejected")
	}

	var got []float64
	for _, v := range tbl.All() {
		got = append(got, v)
	}
	diff(t, []float64{5, 6, 7}, got)
}
