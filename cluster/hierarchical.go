package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// fitHierarchical performs agglomerative clustering with average linkage,
// merging the closest pair of clusters until exactly k remain.
//
// Deterministic: the pairwise scan is fixed i→j order and distance ties
// resolve to the first pair encountered, so repeated fits over the same
// points yield the same partition. O(n³) time, fine at vocabulary scale.
func fitHierarchical(points [][]float64, k int) []int {
	n := len(points)

	// Pairwise point distances, computed once.
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := 0; j < i; j++ {
			d := floats.Distance(points[i], points[j], 2)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	// Each point starts as its own cluster.
	members := make([][]int, n)
	for i := range members {
		members[i] = []int{i}
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	remaining := n

	for remaining > k {
		bi, bj, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if d := avgLinkage(members[i], members[j], dist); d < best {
					bi, bj, best = i, j, d
				}
			}
		}
		members[bi] = append(members[bi], members[bj]...)
		members[bj] = nil
		active[bj] = false
		remaining--
	}

	labels := make([]int, n)
	next := 0
	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}
		for _, p := range members[i] {
			labels[p] = next
		}
		next++
	}
	return labels
}

// avgLinkage is the mean pairwise distance between two member sets.
func avgLinkage(a, b []int, dist [][]float64) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += dist[i][j]
		}
	}
	return sum / float64(len(a)*len(b))
}
