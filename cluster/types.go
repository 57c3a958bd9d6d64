package cluster

import "errors"

// Method selects the clustering family.
type Method int

const (
	// KMeans is Lloyd's algorithm with k-means++ seeding.
	KMeans Method = iota
	// Hierarchical is agglomerative clustering with average linkage.
	Hierarchical
	// GMM is a diagonal-covariance Gaussian mixture fitted by EM, labels
	// by maximum posterior responsibility.
	GMM
)

// String returns the stable report label of a method.
func (m Method) String() string {
	switch m {
	case KMeans:
		return "kmeans"
	case Hierarchical:
		return "hierarchical"
	case GMM:
		return "gmm"
	default:
		return "unknown"
	}
}

var (
	// ErrTooFewPoints indicates fewer points than requested clusters.
	ErrTooFewPoints = errors.New("cluster: fewer points than clusters")
	// ErrBadK indicates a cluster count below 1.
	ErrBadK = errors.New("cluster: k must be >= 1")
	// ErrBadRange indicates an empty or inverted model-selection range.
	ErrBadRange = errors.New("cluster: invalid k range")
	// ErrEmptyInput indicates no points were supplied.
	ErrEmptyInput = errors.New("cluster: empty input")
	// ErrUnknownMethod indicates a Method value outside the enum.
	ErrUnknownMethod = errors.New("cluster: unknown method")
	// ErrDimensionMismatch indicates rows of differing dimensionality.
	ErrDimensionMismatch = errors.New("cluster: points must share one dimensionality")
)

// Assignment is a fitted partition: one label per input row, labels in
// [0, K). Immutable once produced.
type Assignment struct {
	// Labels holds the cluster id of each input row.
	Labels []int
	// K is the number of clusters of the fitted model.
	K int
	// Method is the family that produced the partition.
	Method Method
	// Score is the internal validity value of the fit: mean silhouette for
	// KMeans/Hierarchical (higher is better), negative BIC for GMM
	// (likewise higher is better).
	Score float64
}

// validatePoints checks shape invariants shared by all fitters.
func validatePoints(points [][]float64) (dim int, err error) {
	if len(points) == 0 {
		return 0, ErrEmptyInput
	}
	dim = len(points[0])
	for _, p := range points {
		if len(p) != dim {
			return 0, ErrDimensionMismatch
		}
	}
	return dim, nil
}
