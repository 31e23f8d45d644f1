package pose

import "errors"

var (
	// ErrDegenerateGeometry is returned when an orientation cannot be built
	// from the given points/vectors (coincident eye and target, parallel
	// forward and up, or non-finite intermediate results).
	ErrDegenerateGeometry = errors.New("pose: degenerate geometry")

	// ErrNonInvertible is returned when a transform has no usable inverse
	// (a scale component near zero, or a singular world matrix).
	ErrNonInvertible = errors.New("pose: non-invertible transform")
)
