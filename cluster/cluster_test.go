package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epilectrik/voynich-sub010/cluster"
)

// twoBlobs builds two tight, well-separated point groups of the given size.
func twoBlobs(size int) (points [][]float64, labels []int) {
	for i := 0; i < size; i++ {
		off := 0.01 * float64(i)
		points = append(points, []float64{0 + off, 0})
		labels = append(labels, 0)
	}
	for i := 0; i < size; i++ {
		off := 0.01 * float64(i)
		points = append(points, []float64{10 + off, 10})
		labels = append(labels, 1)
	}
	return points, labels
}

// sameSplit reports whether two labelings induce the same bipartition,
// regardless of which side is called 0.
func sameSplit(a, b []int) bool {
	direct, flipped := true, true
	for i := range a {
		if a[i] != b[i] {
			direct = false
		}
		if a[i] != 1-b[i] {
			flipped = false
		}
	}
	return direct || flipped
}

// TestFit_KMeansSeparatesBlobs verifies k-means recovers an obvious
// two-blob split.
func TestFit_KMeansSeparatesBlobs(t *testing.T) {
	points, want := twoBlobs(10)

	fit, err := cluster.Fit(points, cluster.KMeans, 2, 42)
	require.NoError(t, err)

	assert.True(t, sameSplit(want, fit.Labels), "k-means must recover the blob split")
	assert.Greater(t, fit.Score, 0.9, "well-separated blobs score near-perfect silhouette")
}

// TestFit_HierarchicalSeparatesBlobs verifies average-linkage agglomeration
// recovers the same split, deterministically (no seed involved).
func TestFit_HierarchicalSeparatesBlobs(t *testing.T) {
	points, want := twoBlobs(8)

	fit, err := cluster.Fit(points, cluster.Hierarchical, 2, 0)
	require.NoError(t, err)
	again, err := cluster.Fit(points, cluster.Hierarchical, 2, 999)
	require.NoError(t, err)

	assert.True(t, sameSplit(want, fit.Labels))
	assert.Equal(t, fit.Labels, again.Labels, "hierarchical fits ignore the seed")
}

// TestFit_GMMSeparatesBlobs verifies the mixture fit recovers the split and
// reports a finite validity score.
func TestFit_GMMSeparatesBlobs(t *testing.T) {
	points, want := twoBlobs(10)

	fit, err := cluster.Fit(points, cluster.GMM, 2, 7)
	require.NoError(t, err)

	assert.True(t, sameSplit(want, fit.Labels), "GMM must recover the blob split")
}

// TestFit_SeedReproducible verifies one seed yields one partition.
func TestFit_SeedReproducible(t *testing.T) {
	points, _ := twoBlobs(10)

	a, err := cluster.Fit(points, cluster.KMeans, 2, 123)
	require.NoError(t, err)
	b, err := cluster.Fit(points, cluster.KMeans, 2, 123)
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Score, b.Score)
}

// TestFit_ShapeErrors verifies the caller-error sentinels.
func TestFit_ShapeErrors(t *testing.T) {
	points, _ := twoBlobs(3)

	_, err := cluster.Fit(nil, cluster.KMeans, 2, 0)
	assert.ErrorIs(t, err, cluster.ErrEmptyInput)

	_, err = cluster.Fit(points, cluster.KMeans, 0, 0)
	assert.ErrorIs(t, err, cluster.ErrBadK)

	_, err = cluster.Fit(points, cluster.KMeans, 100, 0)
	assert.ErrorIs(t, err, cluster.ErrTooFewPoints)

	_, err = cluster.Fit([][]float64{{1, 2}, {1}}, cluster.KMeans, 1, 0)
	assert.ErrorIs(t, err, cluster.ErrDimensionMismatch)

	_, err = cluster.Fit(points, cluster.Method(99), 2, 0)
	assert.ErrorIs(t, err, cluster.ErrUnknownMethod)
}

// TestSilhouette_PerfectSplit verifies tight far-apart blobs approach the
// maximum coefficient and a single cluster scores zero.
func TestSilhouette_PerfectSplit(t *testing.T) {
	points, labels := twoBlobs(6)

	assert.Greater(t, cluster.Silhouette(points, labels), 0.95)

	all := make([]int, len(points))
	assert.Zero(t, cluster.Silhouette(points, all), "one cluster carries no separation signal")
}

// TestSilhouette_BadSplitScoresLower verifies a labeling that cuts across
// both blobs scores clearly worse than the true split.
func TestSilhouette_BadSplitScoresLower(t *testing.T) {
	points, labels := twoBlobs(6)
	bad := make([]int, len(points))
	for i := range bad {
		bad[i] = i % 2
	}

	assert.Less(t, cluster.Silhouette(points, bad), cluster.Silhouette(points, labels))
}

// TestSelect_FindsTwoAndBreaksTiesSmall verifies the scan picks k=2 on a
// two-blob set and requires strict improvement to move off the smaller k.
func TestSelect_FindsTwoAndBreaksTiesSmall(t *testing.T) {
	points, _ := twoBlobs(10)

	sel, err := cluster.Select(points, cluster.KMeans, 2, 5, 42)
	require.NoError(t, err)

	assert.Equal(t, 2, sel.Best.K)
	assert.Contains(t, sel.Scores, 2)
	assert.Contains(t, sel.Scores, 5)
}

// TestSelect_SkipsOversizedCounts verifies counts beyond the point total
// are skipped, not fatal.
func TestSelect_SkipsOversizedCounts(t *testing.T) {
	points, _ := twoBlobs(2) // 4 points

	sel, err := cluster.Select(points, cluster.KMeans, 2, 50, 1)
	require.NoError(t, err)

	assert.NotContains(t, sel.Scores, 5)
	assert.NotNil(t, sel.Best)
}

// TestSelect_BadRange verifies range validation.
func TestSelect_BadRange(t *testing.T) {
	points, _ := twoBlobs(4)

	_, err := cluster.Select(points, cluster.KMeans, 0, 3, 0)
	assert.ErrorIs(t, err, cluster.ErrBadRange)

	_, err = cluster.Select(points, cluster.KMeans, 4, 2, 0)
	assert.ErrorIs(t, err, cluster.ErrBadRange)
}

// TestDeriveRNG_IndependentStreams verifies distinct stream ids yield
// distinct deterministic sequences from one seed.
func TestDeriveRNG_IndependentStreams(t *testing.T) {
	a1 := cluster.DeriveRNG(42, 1).Int63()
	a2 := cluster.DeriveRNG(42, 1).Int63()
	b := cluster.DeriveRNG(42, 2).Int63()

	assert.Equal(t, a1, a2, "same seed and stream must replay")
	assert.NotEqual(t, a1, b, "distinct streams must decorrelate")
}
