package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Silhouette returns the mean silhouette coefficient of a labeled point
// set: for each point, (b−a)/max(a,b) with a the mean distance to its own
// cluster and b the smallest mean distance to any other cluster.
//
// Values lie in [−1, 1]; higher means tighter, better-separated clusters.
// Points in singleton clusters contribute 0, the conventional neutral
// value. A single-cluster labeling scores 0 overall: one cluster carries no
// separation signal.
func Silhouette(points [][]float64, labels []int) float64 {
	n := len(points)
	if n == 0 || len(labels) != n {
		return 0
	}
	k := 0
	for _, l := range labels {
		if l+1 > k {
			k = l + 1
		}
	}
	if k < 2 {
		return 0
	}

	size := make([]int, k)
	for _, l := range labels {
		size[l]++
	}

	var total float64
	for i, p := range points {
		if size[labels[i]] <= 1 {
			continue // singleton contributes 0
		}
		// Mean distance from point i to every cluster.
		sum := make([]float64, k)
		for j, q := range points {
			if j == i {
				continue
			}
			sum[labels[j]] += floats.Distance(p, q, 2)
		}
		own := labels[i]
		a := sum[own] / float64(size[own]-1)
		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || size[c] == 0 {
				continue
			}
			if m := sum[c] / float64(size[c]); m < b {
				b = m
			}
		}
		if math.IsInf(b, 1) {
			continue // no other populated cluster to compare against
		}
		if denom := math.Max(a, b); denom > 0 {
			total += (b - a) / denom
		}
	}
	return total / float64(n)
}
