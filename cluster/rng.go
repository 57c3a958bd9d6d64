// Package cluster - RNG utilities shared by fitters and the significance
// layer.
//
// All stochastic steps (k-means++ seeding, GMM initialization, permutation
// shuffles) draw from generators constructed here. Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//   - Independence: derived streams for parallel replicates, decorrelated
//     by a SplitMix64-style mix.
//
// math/rand.Rand is not goroutine-safe: never share one *rand.Rand across
// workers — derive one stream per worker instead.
package cluster

import "math/rand"

// defaultSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep zero-value behavior reproducible.
const defaultSeed int64 = 1

// NewRNG returns a deterministic generator for seed. Policy: seed==0 ⇒
// defaultSeed; anything else is used verbatim.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via the canonical SplitMix64 finalizer, so per-replicate streams are
// decorrelated even for adjacent stream ids.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG returns an independent generator for one replicate/worker
// stream, derived from the base seed. Intended for setup, not hot loops.
func DeriveRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(seed, stream)))
}

// ShuffleInts performs an in-place Fisher–Yates shuffle of a using rng.
func ShuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
