package compat

import "math"

// Statistic maps pair evidence onto a matrix cell value. It receives the
// corpus occurrence counts of the two middles, their joint (windowed)
// co-occurrence count, and the total number of accumulated pairs.
//
// Implementations must be symmetric in (ci, cj) and non-negative; the
// builder applies them to unordered pairs only, and clamps negatives to
// zero as a safety net.
type Statistic func(ci, cj, joint, pairs int) float64

// Cooccurrence scores a pair by its raw joint count. The default.
func Cooccurrence(_, _, joint, _ int) float64 {
	return float64(joint)
}

// JointRatio scores a pair by joint count normalized by the smaller
// marginal, yielding values in [0, 1].
func JointRatio(ci, cj, joint, _ int) float64 {
	m := ci
	if cj < m {
		m = cj
	}
	if m == 0 {
		return 0
	}
	return float64(joint) / float64(m)
}

// PositivePMI scores a pair by pointwise mutual information clamped at
// zero: log( joint*pairs / (ci*cj) ), negatives discarded.
func PositivePMI(ci, cj, joint, pairs int) float64 {
	if joint == 0 || ci == 0 || cj == 0 || pairs == 0 {
		return 0
	}
	v := math.Log(float64(joint) * float64(pairs) / (float64(ci) * float64(cj)))
	if v < 0 {
		return 0
	}
	return v
}
