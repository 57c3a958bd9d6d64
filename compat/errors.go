package compat

import "errors"

var (
	// ErrInsufficientVocabulary is returned when fewer than two middles
	// survive frequency filtering. Callers must branch on it and skip the
	// experiment; a degenerate 1×1 or 0×0 matrix is never produced.
	ErrInsufficientVocabulary = errors.New("compat: fewer than 2 middles in vocabulary")

	// ErrNilSource indicates a nil corpus source was passed to Build.
	ErrNilSource = errors.New("compat: nil source")

	// ErrIndexOutOfBounds indicates a matrix index outside [0, Dim).
	ErrIndexOutOfBounds = errors.New("compat: index out of bounds")

	// ErrAsymmetric indicates ingested matrix data violating symmetry.
	ErrAsymmetric = errors.New("compat: matrix is not symmetric")
)
