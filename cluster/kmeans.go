package cluster

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// kMeansMaxIter caps Lloyd iterations; fits on corpus-scale vocabularies
// converge far earlier.
const kMeansMaxIter = 200

// fitKMeans runs k-means++ seeding followed by Lloyd iterations until the
// assignment is stable or the iteration cap is hit.
func fitKMeans(points [][]float64, k int, rng *rand.Rand) []int {
	n := len(points)
	dim := len(points[0])
	centers := seedPlusPlus(points, k, rng)
	labels := make([]int, n)
	prev := make([]int, n)

	for iter := 0; iter < kMeansMaxIter; iter++ {
		// Assign each point to its nearest center; ties to the lower index.
		for i, p := range points {
			best, bestD := 0, math.Inf(1)
			for c := range centers {
				if d := floats.Distance(p, centers[c], 2); d < bestD {
					best, bestD = c, d
				}
			}
			labels[i] = best
		}
		if iter > 0 && equalInts(labels, prev) {
			break
		}
		copy(prev, labels)

		// Recompute centers; an emptied cluster keeps its old center.
		size := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, dim)
		}
		for i, p := range points {
			floats.Add(next[labels[i]], p)
			size[labels[i]]++
		}
		for c := range next {
			if size[c] == 0 {
				copy(next[c], centers[c])
				continue
			}
			floats.Scale(1/float64(size[c]), next[c])
		}
		centers = next
	}
	return labels
}

// seedPlusPlus picks k initial centers by the k-means++ rule: the first
// uniformly, each next with probability proportional to squared distance
// from the nearest already-chosen center.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centers := make([][]float64, 0, k)
	centers = append(centers, clone(points[rng.Intn(n)]))

	d2 := make([]float64, n)
	for len(centers) < k {
		var total float64
		for i, p := range points {
			best := math.Inf(1)
			for _, c := range centers {
				if d := floats.Distance(p, c, 2); d*d < best {
					best = d * d
				}
			}
			d2[i] = best
			total += best
		}
		// All residual distances zero means duplicated points; fall back
		// to a uniform pick.
		idx := 0
		if total > 0 {
			target := rng.Float64() * total
			var acc float64
			for i, w := range d2 {
				acc += w
				if acc >= target {
					idx = i
					break
				}
			}
		} else {
			idx = rng.Intn(n)
		}
		centers = append(centers, clone(points[idx]))
	}
	return centers
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}

func equalInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
