package compat

import (
	"sort"

	"github.com/epilectrik/voynich-sub010/corpus"
	"github.com/epilectrik/voynich-sub010/morph"
)

// VocabOrder selects the deterministic ordering of the matrix vocabulary.
type VocabOrder int

const (
	// FirstSeen indexes middles in the order the source first yields them.
	// The default: cheapest and stable under the restartable-source
	// contract.
	FirstSeen VocabOrder = iota
	// Lexicographic indexes middles sorted ascending, for callers that
	// compare vocabularies across differently-ordered sources.
	Lexicographic
)

// Options configures a Build run.
type Options struct {
	// MinCount excludes middles observed fewer than this many times.
	// Values below 1 are treated as 1 (keep everything).
	MinCount int

	// Window bounds co-occurrence to token pairs at most Window positions
	// apart within a line. Zero (the default) pairs every two tokens that
	// share a line.
	Window int

	// Statistic scores each unordered pair; nil means Cooccurrence.
	Statistic Statistic

	// Order selects the vocabulary ordering; default FirstSeen.
	Order VocabOrder
}

// DefaultOptions returns the options the analysis corpus uses most:
// whole-line co-occurrence counts over middles seen at least twice.
func DefaultOptions() Options {
	return Options{MinCount: 2, Window: 0, Statistic: Cooccurrence, Order: FirstSeen}
}

// Build constructs the compatibility matrix for src under opts.
//
// The source is iterated once; middles are derived via seg, grouped by
// (page, line) in arrival order, counted, frequency-filtered, and scored
// pairwise. The returned matrix is symmetric with a zero diagonal, and two
// builds over the same source are bit-identical.
//
// Returns ErrInsufficientVocabulary when fewer than two middles survive
// MinCount; callers must skip the experiment in that case.
func Build(src corpus.Source, seg *morph.Segmenter, opts Options) (*Matrix, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if seg == nil {
		seg = morph.NewSegmenter(nil)
	}
	stat := opts.Statistic
	if stat == nil {
		stat = Cooccurrence
	}
	minCount := opts.MinCount
	if minCount < 1 {
		minCount = 1
	}

	// Pass 1: derive middles, group them into lines, count occurrences.
	type lineKey struct{ page, line string }
	var (
		lines     [][]string
		curKey    lineKey
		cur       []string
		counts    = map[string]int{}
		firstSeen []string
		seen      = map[string]bool{}
	)
	err := src.Each(func(r *corpus.Record) error {
		mid := seg.Middle(r.Text)
		if mid == "" {
			return nil
		}
		key := lineKey{r.Page, r.Line}
		if key != curKey && cur != nil {
			lines = append(lines, cur)
			cur = nil
		}
		curKey = key
		cur = append(cur, mid)
		counts[mid]++
		if !seen[mid] {
			seen[mid] = true
			firstSeen = append(firstSeen, mid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cur != nil {
		lines = append(lines, cur)
	}

	// Vocabulary: frequency filter in deterministic order.
	vocab := make([]string, 0, len(firstSeen))
	for _, mid := range firstSeen {
		if counts[mid] >= minCount {
			vocab = append(vocab, mid)
		}
	}
	if opts.Order == Lexicographic {
		sort.Strings(vocab)
	}
	if len(vocab) < 2 {
		return nil, ErrInsufficientVocabulary
	}
	index := make(map[string]int, len(vocab))
	for i, mid := range vocab {
		index[mid] = i
	}

	// Pass 2 (over the grouped lines): accumulate joint counts per
	// unordered in-vocabulary pair within the window.
	joint := map[[2]int]int{}
	pairs := 0
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			ii, ok := index[line[i]]
			if !ok {
				continue
			}
			for j := i + 1; j < len(line); j++ {
				if opts.Window > 0 && j-i > opts.Window {
					break
				}
				jj, ok := index[line[j]]
				if !ok || jj == ii {
					continue
				}
				a, b := ii, jj
				if b < a {
					a, b = b, a
				}
				joint[[2]int{a, b}]++
				pairs++
			}
		}
	}

	// Finalize: score every pair cell; diagonal stays zero.
	n := len(vocab)
	m := &Matrix{
		n:     n,
		data:  make([]float64, n*n),
		vocab: vocab,
		index: index,
		count: make([]int, n),
	}
	for i, mid := range vocab {
		m.count[i] = counts[mid]
	}
	for key, jc := range joint {
		i, j := key[0], key[1]
		v := stat(m.count[i], m.count[j], jc, pairs)
		if v < 0 {
			v = 0
		}
		m.data[i*n+j] = v
		m.data[j*n+i] = v
	}
	return m, nil
}
