package cluster

import "fmt"

// Fit partitions points into k clusters with the selected method.
//
// Fitting never fails on valid input — every method converges to some
// partition — so errors only reflect shape problems: empty input, ragged
// rows, k < 1, or more clusters than points. Randomized methods draw from
// the explicit seed (0 ⇒ fixed default); hierarchical fitting ignores the
// seed entirely.
func Fit(points [][]float64, method Method, k int, seed int64) (*Assignment, error) {
	if _, err := validatePoints(points); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, ErrBadK
	}
	if k > len(points) {
		return nil, fmt.Errorf("k=%d over %d points: %w", k, len(points), ErrTooFewPoints)
	}

	var (
		labels []int
		score  float64
	)
	switch method {
	case KMeans:
		labels = fitKMeans(points, k, NewRNG(seed))
		score = Silhouette(points, labels)
	case Hierarchical:
		labels = fitHierarchical(points, k)
		score = Silhouette(points, labels)
	case GMM:
		var model *gmmModel
		labels, model = fitGMM(points, k, NewRNG(seed))
		score = -model.bic(len(points))
	default:
		return nil, ErrUnknownMethod
	}

	return &Assignment{Labels: labels, K: k, Method: method, Score: score}, nil
}
