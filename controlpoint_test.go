package valuecurve

import "testing"

func TestContinuityTypeControls(t *testing.T) {
	f := func(ct ContinuityType, left, right bool) {
		if got := ct.hasLeft(); got != left {
			t.Errorf("%v.hasLeft() = %t, want %t", ct, got, left)
		}
		if got := ct.hasRight(); got != right {
			t.Errorf("%v.hasRight() = %t, want %t", ct, got, right)
		}
	}
	f(Linear, false, false)
	f(Corner, true, true)
	f(SymmetricSmooth, true, true)
	f(IndependentSmooth, true, true)
	f(AutoRight, false, true)
	f(AutoLeft, true, false)
}

func TestPointStatusHas(t *testing.T) {
	s := Selected | FixedY
	if !s.Has(Selected) || !s.Has(FixedY) || !s.Has(Selected|FixedY) {
		t.Error("expected set bits to be reported")
	}
	if s.Has(Undeletable) || s.Has(Selected|Undeletable) {
		t.Error("expected missing bits to be reported")
	}
}

func TestControlPointAbsolutes(t *testing.T) {
	p := ControlPoint{
		Position:    Pt(10, 20),
		LeftHandle:  Vec(-3, 1),
		RightHandle: Vec(4, -2),
	}
	diff(t, Pt(7, 21), p.LeftAbsolute())
	diff(t, Pt(14, 18), p.RightAbsolute())
}
