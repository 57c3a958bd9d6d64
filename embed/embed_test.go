package embed_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epilectrik/voynich-sub010/compat"
	"github.com/epilectrik/voynich-sub010/embed"
)

// symmetricFixture builds an n×n deterministic symmetric test matrix with
// zero diagonal and non-negative entries.
func symmetricFixture(n int) *compat.Matrix {
	vocab := make([]string, n)
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		vocab[i] = fmt.Sprintf("m%02d", i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := float64((i*31+j*17)%7) + 0.5
			data[i*n+j] = v
			data[j*n+i] = v
		}
	}
	m, err := compat.NewMatrix(vocab, data, nil)
	if err != nil {
		panic(err)
	}
	return m
}

// TestEmbed_RankProperty verifies K ≤ dim−1 yields exactly K columns and a
// row per vocabulary entry, in matrix order.
func TestEmbed_RankProperty(t *testing.T) {
	m := symmetricFixture(6)

	e, err := embed.Embed(m, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, e.EffectiveK)
	assert.Equal(t, 3, e.RequestedK)
	assert.False(t, e.Clamped())
	require.Len(t, e.Coords, 6)
	for _, row := range e.Coords {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, m.Vocab(), e.Vocab, "row order must match matrix indexing")
}

// TestEmbed_ClampsOversizedK verifies K beyond dim−1 silently degrades to
// dim−1 with the clamp visible in metadata: K=500 over 50 middles yields 49
// columns.
func TestEmbed_ClampsOversizedK(t *testing.T) {
	m := symmetricFixture(50)

	e, err := embed.Embed(m, 500)
	require.NoError(t, err)

	assert.Equal(t, 500, e.RequestedK)
	assert.Equal(t, 49, e.EffectiveK)
	assert.True(t, e.Clamped())
	for _, row := range e.Coords {
		assert.Len(t, row, 49)
	}
}

// TestEmbed_EigenvaluesDescending verifies the reported spectrum ordering
// and that the hub eigenvalue is its head.
func TestEmbed_EigenvaluesDescending(t *testing.T) {
	m := symmetricFixture(8)

	e, err := embed.Embed(m, 2)
	require.NoError(t, err)

	require.Len(t, e.Eigenvalues, 8)
	for i := 1; i < len(e.Eigenvalues); i++ {
		assert.GreaterOrEqual(t, e.Eigenvalues[i-1], e.Eigenvalues[i])
	}
	assert.Equal(t, e.Eigenvalues[0], e.HubEigenvalue)
}

// TestEmbed_NegativeEigenvaluesClamped verifies the numerical policy on a
// matrix whose whole non-hub spectrum is negative: J−I has eigenvalues
// {n−1, −1, …, −1}, so every embedding coordinate must clamp to zero and
// NegativeMass must account for the full negative mass.
func TestEmbed_NegativeEigenvaluesClamped(t *testing.T) {
	n := 4
	vocab := []string{"a", "b", "c", "d"}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = 1
			}
		}
	}
	m, err := compat.NewMatrix(vocab, data, nil)
	require.NoError(t, err)

	e, err := embed.Embed(m, 2)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, e.HubEigenvalue, 1e-9)
	for _, row := range e.Coords {
		for _, v := range row {
			assert.InDelta(t, 0.0, v, 1e-9, "negative eigenvalues must clamp, not go complex")
		}
	}
	// Σ|λ<0| = 3 over hub eigenvalue 3.
	assert.InDelta(t, 1.0, e.NegativeMass, 1e-9)
}

// TestEmbed_HubDirectionExcluded verifies the excluded hub component: on a
// two-block matrix the hub and the first retained eigenvector both have
// eigenvalue 5, and the retained coordinates separate the blocks or carry
// uniform magnitude sqrt(5)/sqrt(2) per involved row.
func TestEmbed_HubDirectionExcluded(t *testing.T) {
	// Two independent 2-blocks: eigenvalues {5, 5, −5, −5}.
	vocab := []string{"a", "b", "c", "d"}
	data := []float64{
		0, 5, 0, 0,
		5, 0, 0, 0,
		0, 0, 0, 5,
		0, 0, 5, 0,
	}
	m, err := compat.NewMatrix(vocab, data, nil)
	require.NoError(t, err)

	e, err := embed.Embed(m, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, e.EffectiveK)
	assert.InDelta(t, 5.0, e.Eigenvalues[0], 1e-9)
	assert.InDelta(t, 5.0, e.Eigenvalues[1], 1e-9)

	// The retained column is a unit eigenvector of eigenvalue 5 scaled by
	// √5: its squared norm must be 5.
	var norm2 float64
	for _, row := range e.Coords {
		norm2 += row[0] * row[0]
	}
	assert.InDelta(t, 5.0, norm2, 1e-9)
}

// TestEmbed_Errors verifies the caller-error sentinels.
func TestEmbed_Errors(t *testing.T) {
	_, err := embed.Embed(nil, 3)
	assert.ErrorIs(t, err, embed.ErrNilMatrix)

	m := symmetricFixture(4)
	_, err = embed.Embed(m, 0)
	assert.ErrorIs(t, err, embed.ErrBadDimension)
}

// TestEmbed_Deterministic verifies repeated embedding of one matrix yields
// identical coordinates.
func TestEmbed_Deterministic(t *testing.T) {
	m := symmetricFixture(7)

	e1, err := embed.Embed(m, 3)
	require.NoError(t, err)
	e2, err := embed.Embed(m, 3)
	require.NoError(t, err)

	require.Equal(t, e1.EffectiveK, e2.EffectiveK)
	for i := range e1.Coords {
		for c := range e1.Coords[i] {
			assert.True(t, math.Abs(e1.Coords[i][c]-e2.Coords[i][c]) < 1e-12)
		}
	}
}
