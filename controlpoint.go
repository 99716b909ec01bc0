package valuecurve

import "fmt"

// ContinuityType selects how a control point's handles take part in curve
// evaluation.
type ContinuityType int

const (
	// Linear points have no handles. Adjacent segments attach to the point
	// with degenerate, coincident controls.
	Linear ContinuityType = iota
	// Corner points have two independently authored handles that may form
	// a crease.
	Corner
	// SymmetricSmooth points keep their authored handles exactly mirrored,
	// so the curve passes through with a continuous tangent.
	SymmetricSmooth
	// IndependentSmooth points keep their authored handles collinear but
	// with independent lengths.
	IndependentSmooth
	// AutoRight points derive their right handle from the direction the
	// previous segment arrives with.
	AutoRight
	// AutoLeft points derive their left handle from the direction the next
	// segment leaves with.
	AutoLeft
)

func (ct ContinuityType) String() string {
	switch ct {
	case Linear:
		return "Linear"
	case Corner:
		return "Corner"
	case SymmetricSmooth:
		return "SymmetricSmooth"
	case IndependentSmooth:
		return "IndependentSmooth"
	case AutoRight:
		return "AutoRight"
	case AutoLeft:
		return "AutoLeft"
	default:
		return fmt.Sprintf("ContinuityType(%d)", int(ct))
	}
}

// hasLeft reports whether points of this type carry a left control distinct
// from their position.
func (ct ContinuityType) hasLeft() bool {
	switch ct {
	case Corner, SymmetricSmooth, IndependentSmooth, AutoLeft:
		return true
	default:
		return false
	}
}

// hasRight reports whether points of this type carry a right control
// distinct from their position.
func (ct ContinuityType) hasRight() bool {
	switch ct {
	case Corner, SymmetricSmooth, IndependentSmooth, AutoRight:
		return true
	default:
		return false
	}
}

// authored reports whether the handles of this type are set by the user
// rather than derived from neighbors.
func (ct ContinuityType) authored() bool {
	switch ct {
	case Corner, SymmetricSmooth, IndependentSmooth:
		return true
	default:
		return false
	}
}

// PointStatus is a bit set of per-point flags.
type PointStatus uint8

const (
	// Selected marks the point as part of the active selection.
	Selected PointStatus = 1 << iota
	// Undeletable protects the point from removal.
	Undeletable
	// FixedX pins the point's x coordinate against moves.
	FixedX
	// FixedY pins the point's y coordinate against moves.
	FixedY
	// DecayBegin marks the point at which an envelope's decay range begins.
	DecayBegin
)

// Has reports whether all bits of flags are set.
func (ps PointStatus) Has(flags PointStatus) bool {
	return ps&flags == flags
}

// ControlPoint is one vertex of a value curve.
//
// LeftHandle and RightHandle hold what the user authored; they are stored
// unvalidated. UsedLeft and UsedRight hold the absolute control positions
// evaluation actually uses, derived from the authored data by the curve's
// update pipeline. Code that renders or hit-tests handles must read the
// Used values.
type ControlPoint struct {
	// Position orders the point along the domain. The curve keeps its
	// points sorted by Position.X.
	Position Point
	// LeftHandle is the authored left handle, relative to Position.
	LeftHandle Vec2
	// RightHandle is the authored right handle, relative to Position.
	RightHandle Vec2
	// UsedLeft is the left control position in use, after validation.
	UsedLeft Point
	// UsedRight is the right control position in use, after validation.
	UsedRight Point
	Type   ContinuityType
	Status PointStatus

	remembered rememberedState
}

// rememberedState is the snapshot a drag gesture anchors to. Only the most
// recent snapshot is kept.
type rememberedState struct {
	position Point
	status   PointStatus
}

// LeftAbsolute returns the authored left handle in absolute coordinates.
func (p ControlPoint) LeftAbsolute() Point {
	return p.Position.Translate(p.LeftHandle)
}

// RightAbsolute returns the authored right handle in absolute coordinates.
func (p ControlPoint) RightAbsolute() Point {
	return p.Position.Translate(p.RightHandle)
}
