package valuecurve

import "math"

// DefaultInnerResolution is the number of steps a table fill walks along
// each segment when scattering samples.
const DefaultInnerResolution = 256

// WeightedAccumulator resamples curve evaluations into a fixed number of
// bins without needing an inverse of the x component. Segment walks
// scatter each sample's value into the two bins nearest its x position,
// weighted by proximity; Finish normalizes the accumulated sums and
// interpolates bins that no sample reached.
//
// Bin 0 sits at x=0 and the last bin at x=1, so samples at the domain ends
// land on a bin exactly.
type WeightedAccumulator struct {
	values   []float64
	weights  []float64
	finished bool
}

// NewWeightedAccumulator returns an accumulator with the given number of
// bins.
func NewWeightedAccumulator(resolution int) (*WeightedAccumulator, error) {
	if resolution < 2 {
		return nil, ErrBadResolution
	}
	return &WeightedAccumulator{
		values:  make([]float64, resolution),
		weights: make([]float64, resolution),
	}, nil
}

// Resolution returns the number of bins.
func (wa *WeightedAccumulator) Resolution() int {
	return len(wa.values)
}

// AddSegment walks the segment at innerResolution+1 evenly spaced
// parameters and scatters every sample into the two bins nearest its x
// position. The segment's x range must already be normalized to [0, 1];
// samples outside are clamped onto the boundary bins.
//
// Calls after Finish, non-positive inner resolutions and NaN segments are
// ignored.
func (wa *WeightedAccumulator) AddSegment(seg CubicSegment, innerResolution int) {
	if wa.finished || innerResolution < 1 || seg.IsNaN() {
		return
	}
	scale := float64(len(wa.values) - 1)
	for i := range innerResolution + 1 {
		t := float64(i) / float64(innerResolution)
		pt := seg.Eval(t)
		binPos := Clamp(pt.X, 0, 1) * scale
		bin := int(binPos)
		frac := binPos - float64(bin)
		wa.values[bin] += pt.Y * (1 - frac)
		wa.weights[bin] += 1 - frac
		if frac > 0 {
			wa.values[bin+1] += pt.Y * frac
			wa.weights[bin+1] += frac
		}
	}
}

// Finish turns the accumulated sums into per-bin values and makes the
// accumulator readable. Bins that received no sample are filled by linear
// interpolation between their nearest reached neighbors; runs touching an
// end of the array extend the single neighbor flat.
//
// Finish reports false when no sample reached any bin, leaving the
// accumulator unfinished. Calling it again on a finished accumulator is a
// no-op and returns true.
func (wa *WeightedAccumulator) Finish() bool {
	if wa.finished {
		return true
	}
	any := false
	for i, w := range wa.weights {
		if w > 0 {
			wa.values[i] /= w
			any = true
		}
	}
	if !any {
		return false
	}
	wa.fillGaps()
	wa.finished = true
	return true
}

// fillGaps interpolates runs of bins that no sample reached. The weights
// array doubles as the marker for missing bins: scattering always deposits
// a strictly positive weight.
func (wa *WeightedAccumulator) fillGaps() {
	n := len(wa.values)
	missing := 0
	for i := 0; i < n; {
		if wa.weights[i] > 0 {
			i++
			continue
		}
		run := i
		for i < n && wa.weights[i] == 0 {
			i++
		}
		missing += i - run
		switch {
		case run > 0 && i < n:
			span := float64(i - run + 1)
			for k := run; k < i; k++ {
				wa.values[k] = Lerp(wa.values[run-1], wa.values[i], float64(k-run+1)/span)
			}
		case i < n:
			for k := run; k < i; k++ {
				wa.values[k] = wa.values[i]
			}
		default:
			for k := run; k < i; k++ {
				wa.values[k] = wa.values[run-1]
			}
		}
	}
	if missing > 0 {
		Logger().Debug("filled accumulation gaps", "missing", missing, "bins", n)
	}
}

// Lookup interpolates the accumulated value at position t in [0, 1]
// between the two nearest bins. It returns 0 before Finish.
func (wa *WeightedAccumulator) Lookup(t float64) float64 {
	if !wa.finished || math.IsNaN(t) {
		return 0
	}
	pos := Clamp(t, 0, 1) * float64(len(wa.values)-1)
	bin := int(pos)
	if bin >= len(wa.values)-1 {
		return wa.values[len(wa.values)-1]
	}
	return Lerp(wa.values[bin], wa.values[bin+1], pos-float64(bin))
}
