package experiment

import "errors"

var (
	// ErrStateOrder indicates a run transition invoked before its
	// predecessor's artifact exists, or after Report.
	ErrStateOrder = errors.New("experiment: state transition out of order")
	// ErrBadReplicates indicates a replicate count below 1.
	ErrBadReplicates = errors.New("experiment: replicates must be >= 1")
	// ErrShapeMismatch indicates labels and points of different lengths.
	ErrShapeMismatch = errors.New("experiment: labels and points differ in length")
	// ErrEmptyInput indicates an empty point or record set.
	ErrEmptyInput = errors.New("experiment: empty input")
)
