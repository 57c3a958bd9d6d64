// Package voynichsub010 is the shared analysis core behind the sub-system
// 010 manuscript experiments: morphological segmentation of transcribed
// tokens and spectral embedding of their stem-compatibility structure.
//
// The dozens of hypothesis scripts around this module all lean on the same
// pipeline:
//
//	corpus records → segmenter → middles → compatibility matrix
//	              → spectral embedding → clustering → significance verdict
//
// organized as small focused packages:
//
//	corpus/     — token records, restartable sources, sub-corpus filters
//	morph/      — affix inventories and the longest-match segmenter
//	grammar/    — instruction-class lookup over the closed 49-class set
//	compat/     — symmetric stem-compatibility matrices, pluggable statistics
//	embed/      — hub-dropped spectral embedding (gonum eigen-decomposition)
//	cluster/    — k-means / hierarchical / GMM fits and model selection
//	experiment/ — run state machine, permutation nulls, result artifacts
//
// Everything is deterministic by construction: iteration orders are stable,
// affix tie-breaks are a fixed total order, and every random draw flows
// from an explicit seed. Rebuilding any artifact from the same inputs
// yields the same bytes — the shuffle tests downstream depend on it.
package voynichsub010
