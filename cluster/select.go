package cluster

// Selection is the outcome of a model-selection scan over cluster counts.
type Selection struct {
	// Best is the winning fit.
	Best *Assignment
	// Scores maps each scanned k to its validity score.
	Scores map[int]float64
}

// Select fits every cluster count in [kMin, kMax] and returns the fit with
// the best validity score, ties broken toward the smaller count.
//
// The scan ascends k, and strict improvement is required to displace the
// incumbent, which realizes the smaller-count tie-break. Counts that exceed
// the point total are skipped rather than failing the scan (exploratory
// callers hand in wide ranges).
func Select(points [][]float64, method Method, kMin, kMax int, seed int64) (*Selection, error) {
	if _, err := validatePoints(points); err != nil {
		return nil, err
	}
	if kMin < 1 || kMax < kMin {
		return nil, ErrBadRange
	}

	sel := &Selection{Scores: make(map[int]float64)}
	for k := kMin; k <= kMax; k++ {
		if k > len(points) {
			break
		}
		fit, err := Fit(points, method, k, seed)
		if err != nil {
			return nil, err
		}
		sel.Scores[k] = fit.Score
		if sel.Best == nil || fit.Score > sel.Best.Score {
			sel.Best = fit
		}
	}
	if sel.Best == nil {
		return nil, ErrBadRange
	}
	return sel, nil
}
