package valuecurve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pointOpts makes cmp ignore the drag snapshot inside ControlPoint, which
// is unexported and irrelevant to shape comparisons.
var pointOpts = cmp.Options{cmpopts.IgnoreUnexported(ControlPoint{})}

func checkWithin(t *testing.T, v, lo, hi float64) {
	t.Helper()
	if !(v >= lo && v <= hi) {
		t.Errorf("%g outside [%g, %g]", v, lo, hi)
	}
}
