// Package grammar maps token surface forms onto a small closed set of
// instruction-equivalence classes, grouped into a handful of functional
// roles, for transition-grammar analysis.
//
// Classification is a pure exact-match lookup against a table built once at
// process start. Absence from the table is a valid, expected outcome — most
// of the vocabulary lies outside the closed grammar — and is reported as the
// Unclassified sentinel, never as an error.
package grammar
