package valuecurve

import (
	"iter"
	"math"
	"slices"
)

// SampleTable is the baked, directly addressable form of a curve: a fixed
// array of values over the normalized domain [0, 1], with interpolating
// lookup. Tables are what the audio thread reads; they carry no reference
// back to the curve they were filled from.
type SampleTable struct {
	samples []float64
}

// NewSampleTable returns a zeroed table with the given number of samples.
func NewSampleTable(resolution int) (*SampleTable, error) {
	if resolution < 2 {
		return nil, ErrBadResolution
	}
	return &SampleTable{samples: make([]float64, resolution)}, nil
}

// Resolution returns the number of samples.
func (st *SampleTable) Resolution() int {
	return len(st.samples)
}

// At returns the sample at index i, or 0 when i is out of range.
func (st *SampleTable) At(i int) float64 {
	if i < 0 || i >= len(st.samples) {
		return 0
	}
	return st.samples[i]
}

// Lookup interpolates the table at position t in [0, 1]. Sample 0 sits at
// t=0 and the last sample at t=1; positions outside clamp onto the ends.
func (st *SampleTable) Lookup(t float64) float64 {
	if len(st.samples) == 0 || math.IsNaN(t) {
		return 0
	}
	pos := Clamp(t, 0, 1) * float64(len(st.samples)-1)
	bin := int(pos)
	if bin >= len(st.samples)-1 {
		return st.samples[len(st.samples)-1]
	}
	return Lerp(st.samples[bin], st.samples[bin+1], pos-float64(bin))
}

// SetFromAccumulator copies a finished accumulator of matching resolution
// into the table in one step. It reports false, leaving the table
// untouched, when the resolutions differ or the accumulator has not been
// finished.
func (st *SampleTable) SetFromAccumulator(wa *WeightedAccumulator) bool {
	if wa == nil || !wa.finished || wa.Resolution() != st.Resolution() {
		return false
	}
	copy(st.samples, wa.values)
	return true
}

// All returns an iterator over (index, sample) pairs in table order.
func (st *SampleTable) All() iter.Seq2[int, float64] {
	return slices.All(st.samples)
}
