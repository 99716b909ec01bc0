package valuecurve

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
)

// CurveMode selects the consumer semantics of a curve.
type CurveMode int

const (
	// ModeStandard is a free-form value curve.
	ModeStandard CurveMode = iota
	// ModeEnvelope is a curve split at its decay point into an attack
	// range and a decay range, each baked into its own table.
	ModeEnvelope
	// ModeFilter is a curve edited as a frequency response. It follows the
	// standard evaluation rules.
	ModeFilter
)

func (m CurveMode) String() string {
	switch m {
	case ModeStandard:
		return "Standard"
	case ModeEnvelope:
		return "Envelope"
	case ModeFilter:
		return "Filter"
	default:
		return fmt.Sprintf("CurveMode(%d)", int(m))
	}
}

// ValueCurve is an editable piecewise cubic Bézier function of x.
//
// The curve keeps its control points sorted by x. Mutations only mark the
// point sequence dirty; re-sorting and the handle update pipeline run
// lazily on the next query. Every mutation that can change the curve's
// shape ticks a modification counter, which tags the curve's cached
// accumulation and lets callers invalidate derived state of their own.
//
// The zero value is not usable; construct curves with [NewValueCurve].
// A ValueCurve must be confined to a single goroutine.
type ValueCurve struct {
	mode   CurveMode
	limits Rect

	points []ControlPoint

	dirtySort     bool
	dirtyGeometry bool
	modCount      uint64

	cache option[accumSnapshot]
}

// accumSnapshot tags a finished accumulation with the fill request and
// curve generation it was built from.
type accumSnapshot struct {
	resolution int
	start, end int
	modCount   uint64
	accum      *WeightedAccumulator
}

// NewValueCurve returns an empty curve whose points are confined to the
// limits box.
func NewValueCurve(mode CurveMode, limits Rect) *ValueCurve {
	return &ValueCurve{
		mode:   mode,
		limits: limits.Abs(),
	}
}

// Mode returns the consumer semantics the curve was created with.
func (c *ValueCurve) Mode() CurveMode { return c.mode }

// Limits returns the box the curve's points are confined to.
func (c *ValueCurve) Limits() Rect { return c.limits }

// Len returns the number of control points.
func (c *ValueCurve) Len() int { return len(c.points) }

// SegmentCount returns the number of segments between consecutive points.
func (c *ValueCurve) SegmentCount() int { return max(len(c.points)-1, 0) }

// ModificationCount returns a counter that increases with every mutation
// that can change the curve's shape or its envelope ranges. Selection
// changes do not count. Callers caching derived data compare counters to
// detect staleness.
func (c *ValueCurve) ModificationCount() uint64 { return c.modCount }

// touch records a mutation. Mutations that can change the x order of the
// points pass resort.
func (c *ValueCurve) touch(resort bool) {
	if resort {
		c.dirtySort = true
	}
	c.dirtyGeometry = true
	c.modCount++
}

func (c *ValueCurve) ensureSorted() {
	if !c.dirtySort {
		return
	}
	slices.SortStableFunc(c.points, func(a, b ControlPoint) int {
		return cmp.Compare(a.Position.X, b.Position.X)
	})
	c.dirtySort = false
	c.dirtyGeometry = true
}

// ensureClean re-sorts the points and reruns the handle update pipeline if
// any mutation happened since the last query.
func (c *ValueCurve) ensureClean() {
	c.ensureSorted()
	if !c.dirtyGeometry {
		return
	}
	clampRightHandles(c.points)
	clampLeftHandles(c.points)
	propagateAutoRight(c.points)
	propagateAutoLeft(c.points)
	c.dirtyGeometry = false
}

// PointAt returns a copy of the point at index i in x order. The copy's
// Used handles reflect the current curve shape. The second return value is
// false when i is out of range.
func (c *ValueCurve) PointAt(i int) (ControlPoint, bool) {
	c.ensureClean()
	if i < 0 || i >= len(c.points) {
		return ControlPoint{}, false
	}
	return c.points[i], true
}

// SegmentAt returns the cubic segment spanning points k and k+1. The
// second return value is false when no such segment exists.
func (c *ValueCurve) SegmentAt(k int) (CubicSegment, bool) {
	c.ensureClean()
	if k < 0 || k+1 >= len(c.points) {
		return CubicSegment{}, false
	}
	a, b := c.points[k], c.points[k+1]
	return CubicSegment{a.Position, a.UsedRight, b.UsedLeft, b.Position}, true
}

// Points returns an iterator over (index, point) pairs in x order. The
// curve must not be mutated during iteration.
func (c *ValueCurve) Points() iter.Seq2[int, ControlPoint] {
	c.ensureClean()
	return slices.All(c.points)
}

// Segments returns an iterator over (index, segment) pairs in x order. The
// curve must not be mutated during iteration.
func (c *ValueCurve) Segments() iter.Seq2[int, CubicSegment] {
	return func(yield func(int, CubicSegment) bool) {
		c.ensureClean()
		for k := 0; k+1 < len(c.points); k++ {
			a, b := c.points[k], c.points[k+1]
			if !yield(k, CubicSegment{a.Position, a.UsedRight, b.UsedLeft, b.Position}) {
				return
			}
		}
	}
}

// AddPoint appends a point at pos, clamped into the limits box, and
// returns its index. The index is only valid until the next query, which
// re-sorts the sequence. NaN positions are refused with −1.
func (c *ValueCurve) AddPoint(pos Point, typ ContinuityType) int {
	if pos.IsNaN() {
		return -1
	}
	c.points = append(c.points, ControlPoint{
		Position: pos.Clamp(c.limits),
		Type:     typ,
	})
	c.touch(true)
	return len(c.points) - 1
}

// RemovePoint removes the point at index i and reports whether it did.
// Undeletable points are refused, as is the last point by index; the
// final point of a curve can only go through [ValueCurve.RemoveSelectedPoints].
func (c *ValueCurve) RemovePoint(i int) bool {
	c.ensureSorted()
	if i < 0 || i >= len(c.points)-1 {
		return false
	}
	if c.points[i].Status.Has(Undeletable) {
		return false
	}
	c.points = slices.Delete(c.points, i, i+1)
	c.touch(false)
	return true
}

// RemoveSelectedPoints removes every selected point not marked
// Undeletable and reports whether any point was removed.
func (c *ValueCurve) RemoveSelectedPoints() bool {
	n := len(c.points)
	c.points = slices.DeleteFunc(c.points, func(p ControlPoint) bool {
		return p.Status.Has(Selected) && !p.Status.Has(Undeletable)
	})
	if len(c.points) == n {
		return false
	}
	c.touch(false)
	return true
}

// SplitSegment subdivides segment k at parameter t and inserts a control
// point at the split position, leaving the traced shape unchanged. The new
// point is SymmetricSmooth with its handles taken from the subdivided
// controls, or Linear when both neighbors are Linear. Neighbors with
// authored handles get them shortened to the subdivided controls;
// IndependentSmooth neighbors become SymmetricSmooth, as their second
// handle no longer spans the original segment. With selectNew, the new
// point starts out selected.
//
// SplitSegment reports false for parameters outside (0, 1) and for
// nonexistent segments.
func (c *ValueCurve) SplitSegment(k int, t float64, selectNew bool) bool {
	if !(t > 0 && t < 1) {
		return false
	}
	seg, ok := c.SegmentAt(k)
	if !ok {
		return false
	}
	left, right := seg.SplitAt(t)

	a := &c.points[k]
	b := &c.points[k+1]
	typ := SymmetricSmooth
	if a.Type == Linear && b.Type == Linear {
		typ = Linear
	}
	np := ControlPoint{Position: left.P3, Type: typ}
	if typ != Linear {
		np.LeftHandle = left.P2.Sub(left.P3)
		np.RightHandle = right.P1.Sub(right.P0)
	}
	if selectNew {
		np.Status = Selected
	}

	if a.Type.authored() {
		a.RightHandle = left.P1.Sub(left.P0)
	}
	if b.Type.authored() {
		b.LeftHandle = right.P2.Sub(right.P3)
	}
	if a.Type == IndependentSmooth {
		a.Type = SymmetricSmooth
	}
	if b.Type == IndependentSmooth {
		b.Type = SymmetricSmooth
	}

	c.points = slices.Insert(c.points, k+1, np)
	c.touch(false)
	return true
}

// Remember snapshots every point's position and status. Drag gestures
// anchor to the snapshot: [ValueCurve.MoveRememberedSelectedPoints] offsets
// from remembered positions, and the additive flavor of
// [ValueCurve.SelectInRect] keeps remembered selections. Only the most
// recent snapshot is kept.
func (c *ValueCurve) Remember() {
	c.ensureSorted()
	for i := range c.points {
		p := &c.points[i]
		p.remembered = rememberedState{
			position: p.Position,
			status:   p.Status,
		}
	}
}

// MoveRememberedSelectedPoints places every selected point at its
// remembered position offset by delta, clamped into the limits box. Axes
// pinned by FixedX or FixedY keep their current coordinate. It reports
// whether any coordinate actually changed.
func (c *ValueCurve) MoveRememberedSelectedPoints(delta Vec2) bool {
	if delta.IsNaN() {
		return false
	}
	changed := false
	for i := range c.points {
		p := &c.points[i]
		if !p.Status.Has(Selected) {
			continue
		}
		pos := p.remembered.position.Translate(delta).Clamp(c.limits)
		if p.Status.Has(FixedX) {
			pos.X = p.Position.X
		}
		if p.Status.Has(FixedY) {
			pos.Y = p.Position.Y
		}
		if pos != p.Position {
			p.Position = pos
			changed = true
		}
	}
	if changed {
		c.touch(true)
	}
	return changed
}

// SetPointPosition moves point i to pos, clamped into the limits box. Axes
// pinned by FixedX or FixedY keep their current coordinate. It reports
// whether the position actually changed.
func (c *ValueCurve) SetPointPosition(i int, pos Point) bool {
	c.ensureSorted()
	if i < 0 || i >= len(c.points) || pos.IsNaN() {
		return false
	}
	p := &c.points[i]
	pos = pos.Clamp(c.limits)
	if p.Status.Has(FixedX) {
		pos.X = p.Position.X
	}
	if p.Status.Has(FixedY) {
		pos.Y = p.Position.Y
	}
	if pos == p.Position {
		return false
	}
	p.Position = pos
	c.touch(true)
	return true
}

// SetRightHandle authors the right handle of point i, relative to its
// position. SymmetricSmooth points mirror the new handle onto the left
// side; IndependentSmooth points re-aim the left handle to stay collinear,
// keeping its length. Points whose type derives the right handle refuse
// the edit. It reports whether a handle actually changed.
func (c *ValueCurve) SetRightHandle(i int, h Vec2) bool {
	c.ensureSorted()
	if i < 0 || i >= len(c.points) || h.IsNaN() {
		return false
	}
	p := &c.points[i]
	if !p.Type.authored() {
		return false
	}
	old := *p
	p.RightHandle = h
	switch p.Type {
	case SymmetricSmooth:
		p.LeftHandle = h.Negate()
	case IndependentSmooth:
		if l := p.LeftHandle.Hypot(); l > 0 && h != (Vec2{}) {
			p.LeftHandle = h.Normalize().Negate().Mul(l)
		}
	}
	if p.LeftHandle == old.LeftHandle && p.RightHandle == old.RightHandle {
		return false
	}
	c.touch(false)
	return true
}

// SetLeftHandle authors the left handle of point i, relative to its
// position. It mirrors [ValueCurve.SetRightHandle].
func (c *ValueCurve) SetLeftHandle(i int, h Vec2) bool {
	c.ensureSorted()
	if i < 0 || i >= len(c.points) || h.IsNaN() {
		return false
	}
	p := &c.points[i]
	if !p.Type.authored() {
		return false
	}
	old := *p
	p.LeftHandle = h
	switch p.Type {
	case SymmetricSmooth:
		p.RightHandle = h.Negate()
	case IndependentSmooth:
		if r := p.RightHandle.Hypot(); r > 0 && h != (Vec2{}) {
			p.RightHandle = h.Normalize().Negate().Mul(r)
		}
	}
	if p.LeftHandle == old.LeftHandle && p.RightHandle == old.RightHandle {
		return false
	}
	c.touch(false)
	return true
}

// SetTypeOfSelectedPoints changes the continuity type of every selected
// point. Authored handles are derived from the handles currently in use,
// so the curve does not jump visibly: adopting a smooth type from a type
// without a handle synthesizes one at a third of the chord to the
// respective neighbor, and switching to a derived or Linear type clears
// the authored handles. It reports whether any point changed.
func (c *ValueCurve) SetTypeOfSelectedPoints(typ ContinuityType) bool {
	c.ensureClean()
	changed := false
	for i := range c.points {
		p := &c.points[i]
		if !p.Status.Has(Selected) || p.Type == typ {
			continue
		}
		c.retype(i, typ)
		changed = true
	}
	if changed {
		c.touch(false)
	}
	return changed
}

// retype switches point i to typ, deriving authored handles from the
// pipeline results of the previous shape. The caller must have cleaned the
// curve beforehand; the Used values of all points still describe the shape
// being transitioned away from.
func (c *ValueCurve) retype(i int, typ ContinuityType) {
	p := &c.points[i]
	switch typ {
	case Linear, AutoRight, AutoLeft:
		p.LeftHandle = Vec2{}
		p.RightHandle = Vec2{}
	case Corner:
		p.LeftHandle = c.effectiveLeft(i)
		p.RightHandle = c.effectiveRight(i)
	case SymmetricSmooth:
		h := c.effectiveRight(i)
		if h == (Vec2{}) {
			h = c.effectiveLeft(i).Negate()
		}
		p.RightHandle = h
		p.LeftHandle = h.Negate()
	case IndependentSmooth:
		l := c.effectiveLeft(i)
		r := c.effectiveRight(i)
		switch {
		case r != (Vec2{}) && l != (Vec2{}):
			// Align the pair along the right handle, keeping both lengths.
			p.RightHandle = r
			p.LeftHandle = r.Normalize().Negate().Mul(l.Hypot())
		case r != (Vec2{}):
			p.RightHandle = r
			p.LeftHandle = r.Negate()
		case l != (Vec2{}):
			p.LeftHandle = l
			p.RightHandle = l.Negate()
		}
	}
	p.Type = typ
}

// effectiveRight returns the right handle point i currently evaluates
// with, relative to its position. Types without a right control get a
// default at a third of the chord to the next point.
func (c *ValueCurve) effectiveRight(i int) Vec2 {
	p := c.points[i]
	if p.Type.hasRight() {
		return p.UsedRight.Sub(p.Position)
	}
	if i+1 < len(c.points) {
		return c.points[i+1].Position.Sub(p.Position).Mul(1.0 / 3.0)
	}
	return Vec2{}
}

// effectiveLeft mirrors effectiveRight for the left handle.
func (c *ValueCurve) effectiveLeft(i int) Vec2 {
	p := c.points[i]
	if p.Type.hasLeft() {
		return p.UsedLeft.Sub(p.Position)
	}
	if i > 0 {
		return c.points[i-1].Position.Sub(p.Position).Mul(1.0 / 3.0)
	}
	return Vec2{}
}

// Select sets or clears the Selected flag of point i. Selection is not a
// shape mutation and does not tick the modification counter.
func (c *ValueCurve) Select(i int, on bool) bool {
	c.ensureSorted()
	if i < 0 || i >= len(c.points) {
		return false
	}
	if on {
		c.points[i].Status |= Selected
	} else {
		c.points[i].Status &^= Selected
	}
	return true
}

// SelectAll selects every point.
func (c *ValueCurve) SelectAll() {
	for i := range c.points {
		c.points[i].Status |= Selected
	}
}

// ClearSelection deselects every point.
func (c *ValueCurve) ClearSelection() {
	for i := range c.points {
		c.points[i].Status &^= Selected
	}
}

// SelectInRect selects exactly the points whose position lies in r. With
// additive set, points selected in the remembered snapshot stay selected
// regardless of r, which is what a marquee with a held modifier key wants.
func (c *ValueCurve) SelectInRect(r Rect, additive bool) {
	r = r.Abs()
	for i := range c.points {
		p := &c.points[i]
		on := r.Contains(p.Position)
		if additive && p.remembered.status.Has(Selected) {
			on = true
		}
		if on {
			p.Status |= Selected
		} else {
			p.Status &^= Selected
		}
	}
}

// SelectedCount returns the number of selected points.
func (c *ValueCurve) SelectedCount() int {
	n := 0
	for _, p := range c.points {
		if p.Status.Has(Selected) {
			n++
		}
	}
	return n
}

// SetStatus sets or clears status bits of point i. Toggling DecayBegin
// counts as a mutation, since it moves the envelope fill ranges. Prefer
// [ValueCurve.SetDecayBeginIndex] for that flag; it keeps it exclusive.
func (c *ValueCurve) SetStatus(i int, flags PointStatus, on bool) bool {
	c.ensureSorted()
	if i < 0 || i >= len(c.points) {
		return false
	}
	p := &c.points[i]
	old := p.Status
	if on {
		p.Status |= flags
	} else {
		p.Status &^= flags
	}
	if (old ^ p.Status).Has(DecayBegin) {
		c.modCount++
	}
	return true
}

// SetDecayBeginIndex flags point i as the start of the envelope's decay
// range, clearing the flag from every other point.
func (c *ValueCurve) SetDecayBeginIndex(i int) bool {
	c.ensureSorted()
	if i < 0 || i >= len(c.points) {
		return false
	}
	changed := false
	for j := range c.points {
		p := &c.points[j]
		if p.Status.Has(DecayBegin) != (j == i) {
			p.Status ^= DecayBegin
			changed = true
		}
	}
	if changed {
		c.modCount++
	}
	return true
}

// DecayBeginIndex returns the index of the point flagged DecayBegin, or −1
// if there is none.
func (c *ValueCurve) DecayBeginIndex() int {
	c.ensureSorted()
	for i, p := range c.points {
		if p.Status.Has(DecayBegin) {
			return i
		}
	}
	return -1
}

// selectionBounds returns the bounding box of the selected points'
// positions.
func (c *ValueCurve) selectionBounds() (Rect, bool) {
	var box Rect
	found := false
	for _, p := range c.points {
		if !p.Status.Has(Selected) {
			continue
		}
		if !found {
			box = NewRectFromPoints(p.Position, p.Position)
			found = true
		} else {
			box = box.UnionPoint(p.Position)
		}
	}
	return box, found
}

// AlignSelectedPoints levels every selected point to the mean y of the
// selection, skipping points pinned by FixedY. It reports whether anything
// moved.
func (c *ValueCurve) AlignSelectedPoints() bool {
	c.ensureSorted()
	sum := 0.0
	n := 0
	for _, p := range c.points {
		if p.Status.Has(Selected) {
			sum += p.Position.Y
			n++
		}
	}
	if n == 0 {
		return false
	}
	y := Clamp(sum/float64(n), c.limits.MinY(), c.limits.MaxY())
	changed := false
	for i := range c.points {
		p := &c.points[i]
		if !p.Status.Has(Selected) || p.Status.Has(FixedY) {
			continue
		}
		if p.Position.Y != y {
			p.Position.Y = y
			changed = true
		}
	}
	if changed {
		c.touch(false)
	}
	return changed
}

// HorizontalCenterSelectedPoints translates the selection so its bounding
// box is centered on the limits box horizontally. Points pinned by FixedX
// stay put; every moved coordinate still clamps into the limits box. It
// reports whether anything moved.
func (c *ValueCurve) HorizontalCenterSelectedPoints() bool {
	c.ensureSorted()
	box, ok := c.selectionBounds()
	if !ok {
		return false
	}
	dx := c.limits.Center().X - box.Center().X
	changed := false
	for i := range c.points {
		p := &c.points[i]
		if !p.Status.Has(Selected) || p.Status.Has(FixedX) {
			continue
		}
		x := Clamp(p.Position.X+dx, c.limits.MinX(), c.limits.MaxX())
		if x != p.Position.X {
			p.Position.X = x
			changed = true
		}
	}
	if changed {
		c.touch(true)
	}
	return changed
}

// VerticalCenterSelectedPoints translates the selection so its bounding
// box is centered on the limits box vertically. It mirrors
// [ValueCurve.HorizontalCenterSelectedPoints].
func (c *ValueCurve) VerticalCenterSelectedPoints() bool {
	c.ensureSorted()
	box, ok := c.selectionBounds()
	if !ok {
		return false
	}
	dy := c.limits.Center().Y - box.Center().Y
	changed := false
	for i := range c.points {
		p := &c.points[i]
		if !p.Status.Has(Selected) || p.Status.Has(FixedY) {
			continue
		}
		y := Clamp(p.Position.Y+dy, c.limits.MinY(), c.limits.MaxY())
		if y != p.Position.Y {
			p.Position.Y = y
			changed = true
		}
	}
	if changed {
		c.touch(false)
	}
	return changed
}

// FlipVertical mirrors the selected points about the horizontal midline of
// their bounding box, flipping handle directions with them. Points pinned
// by FixedY stay put entirely. It reports whether anything changed.
func (c *ValueCurve) FlipVertical() bool {
	c.ensureSorted()
	box, ok := c.selectionBounds()
	if !ok {
		return false
	}
	mid := box.Center().Y
	changed := false
	for i := range c.points {
		p := &c.points[i]
		if !p.Status.Has(Selected) || p.Status.Has(FixedY) {
			continue
		}
		y := Clamp(2*mid-p.Position.Y, c.limits.MinY(), c.limits.MaxY())
		if y != p.Position.Y || p.LeftHandle.Y != 0 || p.RightHandle.Y != 0 {
			changed = true
		}
		p.Position.Y = y
		p.LeftHandle.Y = -p.LeftHandle.Y
		p.RightHandle.Y = -p.RightHandle.Y
	}
	if changed {
		c.touch(false)
	}
	return changed
}

// Eval evaluates the curve at fraction u in [0, 1] of its point sequence.
// Each segment covers an equal share of u, regardless of its width in x;
// u=0 is the first point and u=1 the last. Fractions outside [0, 1] clamp
// onto the ends. The second return value is false when the curve has no
// points.
func (c *ValueCurve) Eval(u float64) (Point, bool) {
	if math.IsNaN(u) {
		return Point{}, false
	}
	c.ensureClean()
	switch len(c.points) {
	case 0:
		return Point{}, false
	case 1:
		return c.points[0].Position, true
	}
	u = Clamp(u, 0, 1)
	nseg := float64(len(c.points) - 1)
	k := min(int(u*nseg), len(c.points)-2)
	seg, _ := c.SegmentAt(k)
	return seg.Eval(u*nseg - float64(k)), true
}

// ValueAt returns the curve's value at x. Outside the points' x range the
// boundary point's value extends flat. The second return value is false
// when the curve has no points.
func (c *ValueCurve) ValueAt(x float64) (float64, bool) {
	if math.IsNaN(x) {
		return 0, false
	}
	c.ensureClean()
	n := len(c.points)
	if n == 0 {
		return 0, false
	}
	if x <= c.points[0].Position.X {
		return c.points[0].Position.Y, true
	}
	if x >= c.points[n-1].Position.X {
		return c.points[n-1].Position.Y, true
	}
	k, _ := slices.BinarySearchFunc(c.points, x, func(p ControlPoint, x float64) int {
		return cmp.Compare(p.Position.X, x)
	})
	// k is the first index whose point sits at or right of x; the covering
	// segment starts one before.
	if k > 0 {
		k--
	}
	seg, _ := c.SegmentAt(k)
	dx := seg.P3.X - seg.P0.X
	if dx <= 0 {
		return seg.P3.Y, true
	}
	if roots, n := seg.SolveForX(x); n > 0 {
		return seg.Eval(roots[0]).Y, true
	}
	// The solver can miss roots grazing the interval ends; estimate the
	// parameter linearly instead.
	return seg.Eval((x - seg.P0.X) / dx).Y, true
}

// Validate reports whether the curve is usable for its mode: at least two
// points, and for envelopes exactly one point flagged DecayBegin.
func (c *ValueCurve) Validate() error {
	c.ensureSorted()
	if len(c.points) < 2 {
		return ErrTooFewPoints
	}
	if c.mode == ModeEnvelope {
		n := 0
		for _, p := range c.points {
			if p.Status.Has(DecayBegin) {
				n++
			}
		}
		switch {
		case n == 0:
			return ErrNoDecayPoint
		case n > 1:
			return ErrMultipleDecayPoints
		}
	}
	return nil
}

// FillTable bakes the whole curve into tbl.
func (c *ValueCurve) FillTable(tbl *SampleTable) error {
	c.ensureSorted()
	return c.FillTableRange(tbl, 0, len(c.points)-1)
}

// FillAttackTable bakes the range from the first point to the decay point
// into tbl. It requires envelope mode and a decay point.
func (c *ValueCurve) FillAttackTable(tbl *SampleTable) error {
	if c.mode != ModeEnvelope {
		return ErrWrongMode
	}
	decay := c.DecayBeginIndex()
	if decay < 0 {
		return ErrNoDecayPoint
	}
	return c.FillTableRange(tbl, 0, decay)
}

// FillDecayTable bakes the range from the decay point to the last point
// into tbl. It requires envelope mode and a decay point.
func (c *ValueCurve) FillDecayTable(tbl *SampleTable) error {
	if c.mode != ModeEnvelope {
		return ErrWrongMode
	}
	decay := c.DecayBeginIndex()
	if decay < 0 {
		return ErrNoDecayPoint
	}
	return c.FillTableRange(tbl, decay, len(c.points)-1)
}

// FillTableRange bakes the curve between points start and end into tbl,
// with that x range normalized to the table's [0, 1] domain. The first and
// last sample are set to the range's boundary point values exactly.
//
// The accumulation behind the fill is cached: filling again with the same
// resolution and range on an unmodified curve reuses it and produces an
// identical table.
func (c *ValueCurve) FillTableRange(tbl *SampleTable, start, end int) error {
	if tbl == nil {
		return ErrNilTable
	}
	c.ensureClean()
	n := len(c.points)
	if n < 2 {
		return ErrTooFewPoints
	}
	if start < 0 || start >= n {
		return ErrStartIndex
	}
	if end <= start || end >= n {
		return ErrEndIndex
	}
	x0 := c.points[start].Position.X
	x1 := c.points[end].Position.X
	if x1-x0 <= 0 {
		return ErrRangeWidth
	}

	acc, err := c.accumulate(tbl.Resolution(), start, end, x0, x1)
	if err != nil {
		return err
	}
	if !tbl.SetFromAccumulator(acc) {
		return ErrBadResolution
	}
	// Resampling averages the endpoint bins from nearby samples; envelopes
	// need to start and end on their authored values exactly.
	tbl.samples[0] = c.points[start].Position.Y
	tbl.samples[len(tbl.samples)-1] = c.points[end].Position.Y
	return nil
}

// accumulate builds the accumulation for a fill request, or reuses the
// cached one when the request and the curve generation match.
func (c *ValueCurve) accumulate(resolution, start, end int, x0, x1 float64) (*WeightedAccumulator, error) {
	if s := c.cache.value; c.cache.isSet &&
		s.resolution == resolution && s.start == start && s.end == end &&
		s.modCount == c.modCount {
		Logger().Debug("reusing cached accumulation",
			"resolution", resolution, "start", start, "end", end)
		return s.accum, nil
	}
	acc, err := NewWeightedAccumulator(resolution)
	if err != nil {
		return nil, err
	}
	for k := start; k < end; k++ {
		seg, _ := c.SegmentAt(k)
		acc.AddSegment(seg.remapX(x0, x1), DefaultInnerResolution)
	}
	if !acc.Finish() {
		return nil, ErrRangeWidth
	}
	Logger().Debug("rebuilt accumulation",
		"resolution", resolution, "start", start, "end", end,
		"generation", c.modCount)
	c.cache.set(accumSnapshot{
		resolution: resolution,
		start:      start,
		end:        end,
		modCount:   c.modCount,
		accum:      acc,
	})
	return acc, nil
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
