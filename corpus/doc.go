// Package corpus defines the token-record data model for the transcribed
// manuscript and the restartable iteration interfaces the analysis core
// consumes.
//
// A Record is one transcribed token together with its location (page, line),
// its sub-system tag (Currier hand), its section, and three position flags.
// Records are created once at ingestion time and never mutated; downstream
// components read them through borrowed pointers only.
//
// Iteration is modeled by Source, a finite, restartable sequence: calling
// Each twice must replay the exact same records in the exact same order.
// This restartability is load-bearing — the compatibility matrix is rebuilt
// many times across experiments with different filters, and determinism of
// downstream indexing depends on stable iteration order.
//
// Two Source implementations are provided:
//
//	SliceSource          — in-memory records, mainly for tests and small runs
//	TranscriptionReader  — parses a tab-separated transliteration file
//
// Filter wraps any Source with sub-system/section/line-length predicates and
// drops tokens carrying the uncertain-glyph marker, preserving order and
// restartability.
package corpus
