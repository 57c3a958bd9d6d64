package embed

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/epilectrik/voynich-sub010/compat"
)

var (
	// ErrNilMatrix indicates a nil compatibility matrix was passed in.
	ErrNilMatrix = errors.New("embed: nil matrix")
	// ErrBadDimension indicates a requested dimensionality below 1.
	ErrBadDimension = errors.New("embed: K must be >= 1")
	// ErrEigenFailed indicates the eigen-decomposition did not converge.
	ErrEigenFailed = errors.New("embed: eigen decomposition failed")
)

// Embedding is the spectral embedding of one compatibility matrix: one
// K-dimensional coordinate row per vocabulary middle, plus the metadata
// callers need to interpret numerical degradation. Immutable once returned;
// a changed matrix or K yields a new Embedding, never a patch.
type Embedding struct {
	// Coords holds one row per middle, in the matrix's vocabulary order,
	// each of length EffectiveK.
	Coords [][]float64

	// Vocab is the middle per row, matching the source matrix exactly.
	Vocab []string

	// RequestedK is the dimensionality the caller asked for.
	RequestedK int

	// EffectiveK is the dimensionality actually delivered, clamped to
	// vocabulary size − 1. EffectiveK < RequestedK signals the documented
	// degradation, not an error.
	EffectiveK int

	// Eigenvalues are all eigenvalues sorted descending, hub included.
	Eigenvalues []float64

	// HubEigenvalue is the leading eigenvalue whose eigenvector was
	// excluded from the embedding.
	HubEigenvalue float64

	// NegativeMass is Σ|λ| over negative eigenvalues divided by the
	// leading eigenvalue — a data-quality signal. Zero when the matrix is
	// numerically positive semi-definite or the leading eigenvalue is
	// non-positive.
	NegativeMass float64
}

// Clamped reports whether the requested dimensionality was reduced.
func (e *Embedding) Clamped() bool { return e.EffectiveK < e.RequestedK }

// Row returns the coordinate vector of the middle at index i.
func (e *Embedding) Row(i int) []float64 { return e.Coords[i] }

// Embed decomposes m spectrally and returns the K-dimensional embedding
// with the hub eigenvector removed.
//
// K exceeding Dim−1 is silently clamped (visible via EffectiveK); K < 1 is
// a caller error. Row order of the result matches m's vocabulary indexing
// exactly.
func Embed(m *compat.Matrix, k int) (*Embedding, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if k < 1 {
		return nil, ErrBadDimension
	}
	n := m.Dim()

	var eig mat.EigenSym
	sym := mat.NewSymDense(n, m.Raw())
	if ok := eig.Factorize(sym, true); !ok {
		return nil, ErrEigenFailed
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// gonum returns eigenvalues ascending; re-index descending.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })

	sorted := make([]float64, n)
	for rank, idx := range order {
		sorted[rank] = values[idx]
	}

	// Drop the hub (rank 0), clamp K to what remains.
	effective := k
	if limit := n - 1; effective > limit {
		effective = limit
	}

	coords := make([][]float64, n)
	for i := range coords {
		coords[i] = make([]float64, effective)
	}
	for c := 0; c < effective; c++ {
		idx := order[c+1]
		scale := math.Sqrt(math.Max(values[idx], 0))
		for i := 0; i < n; i++ {
			coords[i][c] = vectors.At(i, idx) * scale
		}
	}

	lead := sorted[0]
	var negative float64
	for _, v := range sorted {
		if v < 0 {
			negative += -v
		}
	}
	var negMass float64
	if lead > 0 {
		negMass = negative / lead
	}

	return &Embedding{
		Coords:        coords,
		Vocab:         m.Vocab(),
		RequestedK:    k,
		EffectiveK:    effective,
		Eigenvalues:   sorted,
		HubEigenvalue: lead,
		NegativeMass:  negMass,
	}, nil
}
