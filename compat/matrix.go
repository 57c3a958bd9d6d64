package compat

import (
	"fmt"
	"math"
)

// Matrix is the symmetric compatibility matrix over a fixed vocabulary of
// middles. Row/column i corresponds to Vocab()[i]. The diagonal is zero by
// convention (identity compatibility is not the signal of interest).
//
// Storage is a flat row-major float64 slice. A Matrix is immutable once
// returned by the builder; the embedding step owns it exclusively from then
// on.
type Matrix struct {
	n     int
	data  []float64
	vocab []string
	index map[string]int
	count []int
}

// symmetryEps bounds the asymmetry tolerated by NewMatrix ingestion.
const symmetryEps = 1e-9

// NewMatrix assembles a Matrix from a vocabulary and flat row-major data,
// for deserialized artifacts and controlled test fixtures. The data must be
// square over the vocabulary, symmetric within a small epsilon, and at
// least 2×2; counts may be nil when occurrence counts are unknown.
func NewMatrix(vocab []string, data []float64, counts []int) (*Matrix, error) {
	n := len(vocab)
	if n < 2 {
		return nil, ErrInsufficientVocabulary
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("data length %d for dim %d: %w", len(data), n, ErrIndexOutOfBounds)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(data[i*n+j]-data[j*n+i]) > symmetryEps {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrAsymmetric)
			}
		}
	}
	m := &Matrix{
		n:     n,
		data:  append([]float64(nil), data...),
		vocab: append([]string(nil), vocab...),
		index: make(map[string]int, n),
		count: make([]int, n),
	}
	for i, mid := range m.vocab {
		m.index[mid] = i
	}
	if counts != nil {
		copy(m.count, counts)
	}
	return m, nil
}

// Dim returns the vocabulary size (matrix dimension).
func (m *Matrix) Dim() int { return m.n }

// Vocab returns the middles in index order. The returned slice is a copy.
func (m *Matrix) Vocab() []string { return append([]string(nil), m.vocab...) }

// IndexOf returns the row index of middle, or -1 when it is not in the
// vocabulary.
func (m *Matrix) IndexOf(middle string) int {
	if i, ok := m.index[middle]; ok {
		return i
	}
	return -1
}

// Count returns the corpus occurrence count of the middle at index i.
func (m *Matrix) Count(i int) (int, error) {
	if i < 0 || i >= m.n {
		return 0, fmt.Errorf("Count(%d): %w", i, ErrIndexOutOfBounds)
	}
	return m.count[i], nil
}

// At returns M[i][j]. Symmetry holds by construction: At(i,j) == At(j,i).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	return m.data[i*m.n+j], nil
}

// Raw returns a copy of the flat row-major backing data. Mainly for the
// embedding step, which hands it to the eigensolver.
func (m *Matrix) Raw() []float64 { return append([]float64(nil), m.data...) }
