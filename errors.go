package valuecurve

import "errors"

// Table fill errors.
var (
	// ErrNilTable indicates that no sample table was provided.
	ErrNilTable = errors.New("nil sample table")

	// ErrTooFewPoints indicates that the curve holds fewer than two points
	// and spans no segment.
	ErrTooFewPoints = errors.New("curve has too few points")

	// ErrStartIndex indicates that the start point index is out of range.
	ErrStartIndex = errors.New("start index out of range")

	// ErrEndIndex indicates that the end point index is out of range or
	// does not lie after the start index.
	ErrEndIndex = errors.New("end index out of range")

	// ErrRangeWidth indicates that the requested point range spans a
	// non-positive width in x.
	ErrRangeWidth = errors.New("point range has non-positive width")
)

// Envelope errors.
var (
	// ErrWrongMode indicates that an operation is only available in
	// envelope mode.
	ErrWrongMode = errors.New("operation requires envelope mode")

	// ErrNoDecayPoint indicates that no point carries the DecayBegin flag.
	ErrNoDecayPoint = errors.New("no decay point set")

	// ErrMultipleDecayPoints indicates that more than one point carries
	// the DecayBegin flag.
	ErrMultipleDecayPoints = errors.New("multiple decay points set")
)

// Sizing errors.
var (
	// ErrBadResolution indicates that fewer than two bins were requested.
	ErrBadResolution = errors.New("resolution must be at least two")
)
