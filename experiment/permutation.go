package experiment

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/epilectrik/voynich-sub010/cluster"
	"github.com/epilectrik/voynich-sub010/corpus"
)

// DefaultReplicates is the customary null-model size across the analysis
// corpus.
const DefaultReplicates = 1000

// TestResult summarizes one permutation or bootstrap test. Immutable once
// produced; the verdict is data, not an error, even when it says no
// structure was found.
type TestResult struct {
	Observed   float64 `json:"observed"`
	NullMean   float64 `json:"null_mean"`
	NullStd    float64 `json:"null_std"`
	PValue     float64 `json:"p_value"`
	Replicates int     `json:"replicates"`
	Verdict    Verdict `json:"verdict"`
}

// PermutationTest certifies a cluster assignment by label shuffling: the
// observed mean silhouette is compared against n replicates in which labels
// are uniformly permuted over the same points.
//
// p = (1 + #{null ≥ observed}) / (n + 1), the add-one estimate, so a
// reported p is never exactly zero. Replicate r draws from the RNG stream
// derived as (seed, r); workers split the replicate index space and
// aggregate by a commutative count, so any worker count — including 1 —
// yields the same p for the same seed.
func PermutationTest(points [][]float64, labels []int, n int, seed int64, workers int) (*TestResult, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	if len(labels) != len(points) {
		return nil, ErrShapeMismatch
	}
	if n < 1 {
		return nil, ErrBadReplicates
	}

	observed := cluster.Silhouette(points, labels)
	nulls := make([]float64, n)
	eachReplicate(n, workers, func(r int) {
		rng := cluster.DeriveRNG(seed, uint64(r))
		shuffled := make([]int, len(labels))
		copy(shuffled, labels)
		cluster.ShuffleInts(shuffled, rng)
		nulls[r] = cluster.Silhouette(points, shuffled)
	})

	return summarize(observed, nulls), nil
}

// PositionStat reduces a record set to one scalar for positional
// hypotheses (e.g. the rate of a grammar class in line-initial position).
type PositionStat func(records []corpus.Record) float64

// PositionPermutationTest builds the null model for positional hypotheses:
// the three position flags travel as a bundle and are re-dealt uniformly
// across records, holding every token's text — and therefore the grammar
// and vocabulary — fixed.
//
// Each replicate permutes its own private copy of the record slice.
func PositionPermutationTest(records []corpus.Record, fn PositionStat, n int, seed int64, workers int) (*TestResult, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	if n < 1 {
		return nil, ErrBadReplicates
	}

	observed := fn(records)
	nulls := make([]float64, n)
	eachReplicate(n, workers, func(r int) {
		rng := cluster.DeriveRNG(seed, uint64(r))
		perm := make([]int, len(records))
		for i := range perm {
			perm[i] = i
		}
		cluster.ShuffleInts(perm, rng)
		shuffled := make([]corpus.Record, len(records))
		copy(shuffled, records)
		for i, src := range perm {
			shuffled[i].ParagraphInitial = records[src].ParagraphInitial
			shuffled[i].LineInitial = records[src].LineInitial
			shuffled[i].LineFinal = records[src].LineFinal
		}
		nulls[r] = fn(shuffled)
	})

	return summarize(observed, nulls), nil
}

// BootstrapTest measures the stability of the observed statistic by
// resampling points (with their labels) with replacement n times. The
// p-value here is the fraction of resamples whose statistic falls at or
// below zero — i.e. how often the apparent structure vanishes entirely.
func BootstrapTest(points [][]float64, labels []int, n int, seed int64, workers int) (*TestResult, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	if len(labels) != len(points) {
		return nil, ErrShapeMismatch
	}
	if n < 1 {
		return nil, ErrBadReplicates
	}

	observed := cluster.Silhouette(points, labels)
	size := len(points)
	nulls := make([]float64, n)
	eachReplicate(n, workers, func(r int) {
		rng := cluster.DeriveRNG(seed, uint64(r))
		rePoints := make([][]float64, size)
		reLabels := make([]int, size)
		for i := 0; i < size; i++ {
			idx := rng.Intn(size)
			rePoints[i] = points[idx]
			reLabels[i] = labels[idx]
		}
		nulls[r] = cluster.Silhouette(rePoints, reLabels)
	})

	mean, std := stat.MeanStdDev(nulls, nil)
	vanished := 0
	for _, v := range nulls {
		if v <= 0 {
			vanished++
		}
	}
	p := float64(1+vanished) / float64(n+1)
	return &TestResult{
		Observed:   observed,
		NullMean:   mean,
		NullStd:    std,
		PValue:     p,
		Replicates: n,
		Verdict:    verdictFor(p),
	}, nil
}

// summarize folds replicate values into the standard test result. The
// "at least as extreme" count is commutative over replicate order.
func summarize(observed float64, nulls []float64) *TestResult {
	asExtreme := 0
	for _, v := range nulls {
		if v >= observed {
			asExtreme++
		}
	}
	n := len(nulls)
	p := float64(1+asExtreme) / float64(n+1)
	mean, std := stat.MeanStdDev(nulls, nil)
	return &TestResult{
		Observed:   observed,
		NullMean:   mean,
		NullStd:    std,
		PValue:     p,
		Replicates: n,
		Verdict:    verdictFor(p),
	}
}

// eachReplicate runs fn(r) for r in [0, n) across the given worker count.
// Each replicate writes only its own slot, so no locking is needed; a
// worker count below 2 runs inline.
func eachReplicate(n, workers int, fn func(r int)) {
	if workers < 2 {
		for r := 0; r < n; r++ {
			fn(r)
		}
		return
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for r := start; r < n; r += workers {
				fn(r)
			}
		}(w)
	}
	wg.Wait()
}
