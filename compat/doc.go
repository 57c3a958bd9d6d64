// Package compat builds the pairwise compatibility matrix over the stems
// ("middles") of a sub-corpus.
//
// The builder iterates a restartable corpus.Source, derives each token's
// middle through the morphological segmenter, groups middles by
// transcription line, and accumulates a symmetric non-negative pairwise
// statistic over co-occurring distinct middles. Middles observed fewer than
// a configured minimum number of times are excluded so that noise does not
// dominate the spectrum.
//
// Determinism is a hard guarantee: vocabulary order is first-seen order
// under the source's stable iteration, and two builds over the same source
// produce bit-identical matrices. Downstream shuffle tests compare matrices
// across runs and must agree on indexing.
//
// The exact pairwise statistic is pluggable — the analysis corpus uses
// plain co-occurrence, joint-frequency ratios, and positive PMI
// interchangeably — as long as it is symmetric and non-negative.
// Cooccurrence is the default.
package compat
