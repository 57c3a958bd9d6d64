package cluster

import (
	"math"
	"math/rand"
)

const (
	// gmmMaxIter caps EM iterations.
	gmmMaxIter = 100
	// gmmTol stops EM when log-likelihood improves by less than this.
	gmmTol = 1e-6
	// gmmVarFloor keeps per-dimension variances away from zero.
	gmmVarFloor = 1e-6
)

// gmmModel is a diagonal-covariance Gaussian mixture.
type gmmModel struct {
	weights [][]float64 // responsibilities, n×k
	mix     []float64   // mixing proportions, k
	means   [][]float64 // k×dim
	vars    [][]float64 // k×dim, diagonal covariances
	logL    float64     // final log-likelihood
	k, dim  int
}

// fitGMM runs EM from a k-means++ style initialization and returns labels
// by maximum posterior responsibility together with the fitted model.
func fitGMM(points [][]float64, k int, rng *rand.Rand) ([]int, *gmmModel) {
	n := len(points)
	dim := len(points[0])
	m := &gmmModel{
		weights: make([][]float64, n),
		mix:     make([]float64, k),
		means:   seedPlusPlus(points, k, rng),
		vars:    make([][]float64, k),
		k:       k,
		dim:     dim,
	}
	for i := range m.weights {
		m.weights[i] = make([]float64, k)
	}

	// Initial variances: global per-dimension variance of the data.
	global := globalVariance(points)
	for c := 0; c < k; c++ {
		m.mix[c] = 1 / float64(k)
		m.vars[c] = clone(global)
	}

	prevL := math.Inf(-1)
	for iter := 0; iter < gmmMaxIter; iter++ {
		// E-step: responsibilities via log-sum-exp.
		var logL float64
		for i, p := range points {
			logs := make([]float64, k)
			for c := 0; c < k; c++ {
				logs[c] = math.Log(m.mix[c]) + logGaussDiag(p, m.means[c], m.vars[c])
			}
			lse := logSumExp(logs)
			logL += lse
			for c := 0; c < k; c++ {
				m.weights[i][c] = math.Exp(logs[c] - lse)
			}
		}
		m.logL = logL

		// M-step: update mixing proportions, means, variances.
		for c := 0; c < k; c++ {
			var nc float64
			for i := 0; i < n; i++ {
				nc += m.weights[i][c]
			}
			if nc < gmmVarFloor {
				nc = gmmVarFloor
			}
			m.mix[c] = nc / float64(n)
			mean := make([]float64, dim)
			for i, p := range points {
				w := m.weights[i][c]
				for d := 0; d < dim; d++ {
					mean[d] += w * p[d]
				}
			}
			for d := 0; d < dim; d++ {
				mean[d] /= nc
			}
			vr := make([]float64, dim)
			for i, p := range points {
				w := m.weights[i][c]
				for d := 0; d < dim; d++ {
					diff := p[d] - mean[d]
					vr[d] += w * diff * diff
				}
			}
			for d := 0; d < dim; d++ {
				vr[d] = vr[d]/nc + gmmVarFloor
			}
			m.means[c] = mean
			m.vars[c] = vr
		}

		if logL-prevL < gmmTol && iter > 0 {
			break
		}
		prevL = logL
	}

	labels := make([]int, n)
	for i := range points {
		best, bestW := 0, -1.0
		for c := 0; c < k; c++ {
			if m.weights[i][c] > bestW {
				best, bestW = c, m.weights[i][c]
			}
		}
		labels[i] = best
	}
	return labels, m
}

// bic is the Bayesian information criterion of the fitted mixture: lower is
// better. Free parameters: k-1 mixing weights + k means + k diagonal
// covariances.
func (m *gmmModel) bic(n int) float64 {
	params := float64((m.k - 1) + 2*m.k*m.dim)
	return params*math.Log(float64(n)) - 2*m.logL
}

// logGaussDiag is the log-density of a diagonal-covariance Gaussian.
func logGaussDiag(p, mean, vars []float64) float64 {
	var s float64
	for d := range p {
		diff := p[d] - mean[d]
		s += math.Log(2*math.Pi*vars[d]) + diff*diff/vars[d]
	}
	return -0.5 * s
}

// logSumExp computes log Σ exp(x) stably.
func logSumExp(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	if math.IsInf(m, -1) {
		return m
	}
	var s float64
	for _, x := range xs {
		s += math.Exp(x - m)
	}
	return m + math.Log(s)
}

// globalVariance is the per-dimension variance over all points, floored.
func globalVariance(points [][]float64) []float64 {
	n := len(points)
	dim := len(points[0])
	mean := make([]float64, dim)
	for _, p := range points {
		for d := 0; d < dim; d++ {
			mean[d] += p[d]
		}
	}
	for d := 0; d < dim; d++ {
		mean[d] /= float64(n)
	}
	vr := make([]float64, dim)
	for _, p := range points {
		for d := 0; d < dim; d++ {
			diff := p[d] - mean[d]
			vr[d] += diff * diff
		}
	}
	for d := 0; d < dim; d++ {
		vr[d] = vr[d]/float64(n) + gmmVarFloor
	}
	return vr
}
