package valuecurve

import (
	"testing"
)

func TestRectAbs(t *testing.T) {
	f := func(r, want Rect) {
		if got := r.Abs(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	f(Rect{0.0, 0.0, 10.0, 20.0}, Rect{0.0, 0.0, 10.0, 20.0})
	f(Rect{10.0, 0.0, 0.0, 20.0}, Rect{0.0, 0.0, 10.0, 20.0})
	f(Rect{10.0, 20.0, 0.0, 0.0}, Rect{0.0, 0.0, 10.0, 20.0})

	if w := (Rect{10.0, 0.0, 0.0, 20.0}).Width(); w != -10 {
		t.Errorf("got width %v, want -10", w)
	}
	if w := (Rect{10.0, 0.0, 0.0, 20.0}).Abs().Width(); w != 10 {
		t.Errorf("got width %v, want 10", w)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0.0, 0.0, 10.0, 20.0}
	f := func(pt Point, want bool) {
		if got := r.Contains(pt); got != want {
			t.Errorf("Contains(%v) = %t, want %t", pt, got, want)
		}
	}
	f(Pt(5, 5), true)
	f(Pt(0, 0), true)
	// The maximum edges are exclusive.
	f(Pt(10, 20), false)
	f(Pt(5, 20), false)
	f(Pt(-1, 5), false)
	f(Pt(5, 25), false)
}

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(3, 4), Pt(3, 4))
	r = r.UnionPoint(Pt(0, 10))
	r = r.UnionPoint(Pt(7, 2))
	diff(t, Rect{0, 2, 7, 10}, r)
}

func TestRectCenter(t *testing.T) {
	diff(t, Pt(5, 10), Rect{0.0, 0.0, 10.0, 20.0}.Center())
	diff(t, Pt(0, 0), Rect{-10.0, -20.0, 10.0, 20.0}.Center())
}
