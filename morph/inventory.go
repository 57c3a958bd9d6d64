package morph

import "sort"

// TieBreak selects the total order applied to same-length affix candidates.
// The legacy scripts this engine replaces resolved ties by accidental list
// construction order; here the order is an explicit, tested configuration
// knob with a deterministic default.
type TieBreak int

const (
	// LexAsc orders same-length candidates lexicographically ascending.
	// This is the default.
	LexAsc TieBreak = iota
	// LexDesc orders same-length candidates lexicographically descending.
	LexDesc
)

// Inventory holds the affix candidate sets used by segmentation.
// Prefixes and suffixes are kept sorted by length descending, ties resolved
// by the configured TieBreak, so the first literal match is always the
// longest-match winner. An Inventory is immutable after construction and is
// safe for concurrent use.
type Inventory struct {
	prefixes []string
	suffixes []string
	kernels  map[string]bool
	tie      TieBreak
}

// NewInventory builds an Inventory from candidate sets. The inputs are
// copied, de-duplicated, and sorted; the caller's slices stay untouched.
// Empty-string candidates are dropped (an empty affix never matches).
func NewInventory(prefixes, suffixes, kernels []string, tie TieBreak) *Inventory {
	inv := &Inventory{
		prefixes: normalize(prefixes, tie),
		suffixes: normalize(suffixes, tie),
		kernels:  make(map[string]bool, len(kernels)),
		tie:      tie,
	}
	for _, k := range kernels {
		if k != "" {
			inv.kernels[k] = true
		}
	}
	return inv
}

// DefaultInventory returns the EVA affix inventory used across the analysis
// corpus. Changing these literals is a configuration change, not a runtime
// operation.
func DefaultInventory() *Inventory {
	return NewInventory(defaultPrefixes, defaultSuffixes, defaultKernels, LexAsc)
}

// EVA affix literals. Prefixes and suffixes are the recurring gallows /
// bench onsets and line-internal terminators observed across both Currier
// hands; kernels are the multi-character stems frequent enough to treat as
// known vocabulary.
var (
	defaultPrefixes = []string{
		"qo", "o", "y", "d", "s",
		"ch", "sh", "cth", "ckh", "cph", "cfh",
		"k", "t", "p", "f",
	}

	defaultSuffixes = []string{
		"aiin", "aiir", "ain", "air", "iin", "in", "ir",
		"eey", "edy", "ey", "dy", "y",
		"ol", "or", "al", "ar", "am", "om", "o",
	}

	defaultKernels = []string{
		"k", "t", "p", "f",
		"ke", "te", "pe", "fe",
		"ked", "ted", "ped", "fed",
		"kee", "tee",
		"ch", "sh", "che", "she",
		"lch", "lsh", "lk", "lt",
		"d", "l", "r", "s", "e", "ee",
	}
)

// Prefixes returns the prefix candidates in match order (longest first).
// The returned slice is a copy.
func (inv *Inventory) Prefixes() []string { return append([]string(nil), inv.prefixes...) }

// Suffixes returns the suffix candidates in match order (longest first).
// The returned slice is a copy.
func (inv *Inventory) Suffixes() []string { return append([]string(nil), inv.suffixes...) }

// IsKernel reports whether s is a known kernel stem.
func (inv *Inventory) IsKernel(s string) bool { return inv.kernels[s] }

// normalize copies, de-duplicates, drops empties, and sorts candidates into
// match order: length descending, same-length ties by the configured order.
func normalize(in []string, tie TieBreak) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		if tie == LexDesc {
			return out[i] > out[j]
		}
		return out[i] < out[j]
	})
	return out
}
