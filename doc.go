// Package valuecurve provides editable piecewise cubic Bézier curves that
// describe a value as a function of one variable, together with a
// resampling pipeline that bakes curves into fixed-resolution lookup
// tables. It was designed to back curve editors in audio software, where a
// UI thread edits the curve and a rendered table is handed to code that
// cannot afford evaluating Béziers, but nothing in it is specific to audio.
//
// # Curves and control points
//
// A [ValueCurve] holds a sequence of [ControlPoint] values, kept sorted by
// their x coordinate, with one cubic Bézier segment between each pair of
// neighbors. Points are confined to the rectangle the curve was created
// with. Each point carries two authored handle vectors and a
// [ContinuityType] that decides how those handles are interpreted:
//
//   - [Linear] points have no handles at all.
//   - [Corner] points have two free handles that may form a crease.
//   - [SymmetricSmooth] points keep their handles exactly mirrored.
//   - [IndependentSmooth] points keep their handles collinear with
//     independent lengths.
//   - [AutoRight] and [AutoLeft] points derive one handle from the
//     neighboring segment's direction, for curves that stay smooth without
//     manual handle work.
//
// Authored handles are stored as-is and never validated on write. Instead,
// an update pipeline derives the control positions evaluation actually
// uses: handles are clamped to never point backward along x and to never
// reach past a neighboring point, then the automatic types get their
// handles propagated. The pipeline runs lazily before the next read. This
// split between authored and used data is what the editing operations rely
// on; see [ControlPoint] for the exact rules.
//
// Because the used controls never leave the x range of their segment, each
// segment's x component is monotonic in the curve parameter, and the curve
// remains a function of x. [ValueCurve.ValueAt] inverts x with the
// closed-form cubic solver, [SolveCubic].
//
// # Editing
//
// The editing surface is designed for direct manipulation: operations
// refuse bad input by reporting false rather than panicking, points can be
// selected individually or with a marquee rectangle, and drag gestures
// anchor to a snapshot taken with [ValueCurve.Remember] so that a drag is
// a pure function of its start state and the current pointer delta.
// Status bits pin points against deletion or movement along either axis.
// [ValueCurve.SplitSegment] inserts a point without changing the traced
// shape, using de Casteljau subdivision.
//
// # Baking tables
//
// A [SampleTable] is the baked form of a curve: a flat array over the
// normalized domain [0, 1] with interpolating lookup and no reference back
// to the curve. Tables are filled through a [WeightedAccumulator], which
// walks each segment and scatters samples into bins by proximity, then
// normalizes and fills bins that no sample reached. This sidesteps
// inverting x(t) for every bin and is robust against segments of very
// different widths.
//
// In [ModeEnvelope], a curve designates one point as the start of its
// decay range, and [ValueCurve.FillAttackTable] and
// [ValueCurve.FillDecayTable] bake the two ranges separately, each
// stretched to its table's full domain.
//
// Fills validate their input and return sentinel errors such as
// [ErrTooFewPoints] or [ErrRangeWidth]; see the error variables for the
// complete list.
//
// # Concurrency
//
// A ValueCurve and everything reachable from it must be confined to a
// single goroutine. The intended pattern hands finished [SampleTable]
// values across goroutine boundaries instead of sharing the curve. Only
// [SetLogger] and [Logger] are safe for concurrent use.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package valuecurve
