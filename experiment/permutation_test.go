package experiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epilectrik/voynich-sub010/cluster"
	"github.com/epilectrik/voynich-sub010/corpus"
	"github.com/epilectrik/voynich-sub010/experiment"
)

// blobs builds two tight far-apart groups with their true labels.
func blobs(size int) (points [][]float64, labels []int) {
	for i := 0; i < size; i++ {
		points = append(points, []float64{0.01 * float64(i), 0})
		labels = append(labels, 0)
	}
	for i := 0; i < size; i++ {
		points = append(points, []float64{10 + 0.01*float64(i), 10})
		labels = append(labels, 1)
	}
	return points, labels
}

// TestPermutationTest_RealStructureIsSignificant verifies an obviously
// correct labeling beats every label shuffle: p reaches the add-one floor
// 1/(n+1) and the verdict is SIGNIFICANT.
func TestPermutationTest_RealStructureIsSignificant(t *testing.T) {
	points, labels := blobs(10)

	res, err := experiment.PermutationTest(points, labels, 200, 42, 1)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/201.0, res.PValue, 1e-12)
	assert.Equal(t, experiment.Significant, res.Verdict)
	assert.Greater(t, res.Observed, res.NullMean, "observed must exceed the null mean")
	assert.Equal(t, 200, res.Replicates)
}

// TestPermutationTest_WorkerCountInvariant verifies the p-value is
// identical for sequential and parallel execution of the same seed — the
// aggregation is a commutative count over fixed per-replicate streams.
func TestPermutationTest_WorkerCountInvariant(t *testing.T) {
	points, labels := blobs(8)

	seq, err := experiment.PermutationTest(points, labels, 100, 7, 1)
	require.NoError(t, err)
	par, err := experiment.PermutationTest(points, labels, 100, 7, 4)
	require.NoError(t, err)

	assert.Equal(t, seq.PValue, par.PValue)
	assert.Equal(t, seq.NullMean, par.NullMean)
	assert.Equal(t, seq.NullStd, par.NullStd)
}

// TestPermutationTest_SeedReproducible verifies one seed yields one result.
func TestPermutationTest_SeedReproducible(t *testing.T) {
	points, labels := blobs(6)

	a, err := experiment.PermutationTest(points, labels, 100, 3, 1)
	require.NoError(t, err)
	b, err := experiment.PermutationTest(points, labels, 100, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestPermutationTest_InputErrors verifies the shape sentinels.
func TestPermutationTest_InputErrors(t *testing.T) {
	points, labels := blobs(4)

	_, err := experiment.PermutationTest(nil, nil, 100, 0, 1)
	assert.ErrorIs(t, err, experiment.ErrEmptyInput)

	_, err = experiment.PermutationTest(points, labels[:3], 100, 0, 1)
	assert.ErrorIs(t, err, experiment.ErrShapeMismatch)

	_, err = experiment.PermutationTest(points, labels, 0, 0, 1)
	assert.ErrorIs(t, err, experiment.ErrBadReplicates)
}

// TestPositionPermutationTest_HoldsVocabularyFixed verifies the positional
// null model: a statistic reading only token text is invariant under the
// flag shuffle, so every replicate ties the observed value and p goes to 1.
func TestPositionPermutationTest_HoldsVocabularyFixed(t *testing.T) {
	records := []corpus.Record{
		{Text: "daiin", LineInitial: true},
		{Text: "chol"},
		{Text: "daiin"},
		{Text: "shedy", LineFinal: true},
	}
	textOnly := func(rs []corpus.Record) float64 {
		var n float64
		for _, r := range rs {
			if r.Text == "daiin" {
				n++
			}
		}
		return n
	}

	res, err := experiment.PositionPermutationTest(records, textOnly, 50, 11, 1)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.PValue, "text is held fixed; every replicate ties")
	assert.Equal(t, res.Observed, res.NullMean)
}

// TestPositionPermutationTest_ShufflesFlags verifies a flag-sensitive
// statistic actually varies under the null model.
func TestPositionPermutationTest_ShufflesFlags(t *testing.T) {
	records := make([]corpus.Record, 12)
	for i := range records {
		records[i].Text = "tok"
		records[i].LineInitial = i == 0
	}
	firstIsInitial := func(rs []corpus.Record) float64 {
		if rs[0].LineInitial {
			return 1
		}
		return 0
	}

	res, err := experiment.PositionPermutationTest(records, firstIsInitial, 300, 5, 1)
	require.NoError(t, err)

	// Under a uniform re-deal the single flag lands on index 0 about 1/12
	// of the time, so the null mean must sit well below the observed 1.
	assert.Equal(t, 1.0, res.Observed)
	assert.Greater(t, res.NullMean, 0.0)
	assert.Less(t, res.NullMean, 0.5)
}

// TestPermutationTest_NullCalibration verifies the test is unbiased: over
// many independent structureless corpora (random points, random labels)
// the p-values spread across [0,1] instead of piling up at either end.
func TestPermutationTest_NullCalibration(t *testing.T) {
	const corpora = 40
	var sum float64
	low, high := 0, 0
	for c := 0; c < corpora; c++ {
		rng := cluster.NewRNG(int64(1000 + c))
		points := make([][]float64, 12)
		labels := make([]int, 12)
		for i := range points {
			points[i] = []float64{rng.NormFloat64(), rng.NormFloat64()}
			labels[i] = rng.Intn(2)
		}
		res, err := experiment.PermutationTest(points, labels, 99, int64(c+1), 1)
		require.NoError(t, err)
		sum += res.PValue
		if res.PValue < 0.5 {
			low++
		} else {
			high++
		}
	}

	mean := sum / corpora
	assert.Greater(t, mean, 0.25, "p-values must not pile up near 0 without structure")
	assert.Less(t, mean, 0.75, "p-values must not pile up near 1 without structure")
	assert.Positive(t, low, "some corpora must land below 0.5")
	assert.Positive(t, high, "some corpora must land at or above 0.5")
}

// TestBootstrapTest_StableStructure verifies resampling a clean two-blob
// labeling keeps the statistic positive in essentially every replicate.
func TestBootstrapTest_StableStructure(t *testing.T) {
	points, labels := blobs(10)

	res, err := experiment.BootstrapTest(points, labels, 200, 9, 2)
	require.NoError(t, err)

	assert.Greater(t, res.Observed, 0.9)
	assert.Greater(t, res.NullMean, 0.8, "resampled silhouettes stay high for real structure")
	assert.Equal(t, experiment.Significant, res.Verdict)
}
