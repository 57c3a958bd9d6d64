// Package experiment orchestrates one analysis run end to end and certifies
// cluster structure against chance.
//
// A Run walks a fixed state machine —
//
//	Configured → MatrixBuilt → Embedded → Clustered → Validated → Reported
//
// — where each transition requires the previous state's artifact and
// out-of-order calls return ErrStateOrder. Report is terminal and yields an
// immutable Result carrying the cluster assignment, the significance
// statistics, and every degradation flag accumulated along the way
// (clamped dimensionality, negative eigenvalue mass).
//
// Significance is empirical: the observed validity statistic is compared
// against a null distribution built by shuffling cluster labels (or, for
// positional hypotheses, by permuting record position flags while holding
// the vocabulary fixed) a fixed number of times, commonly 1,000. The
// p-value is the fraction of null replicates at least as extreme as the
// observed value. "No structure" is a first-class verdict, never an error.
//
// Replicates share no mutable state and may run on several workers; each
// worker derives its own RNG stream from the run seed and the aggregation
// is a commutative count, so worker scheduling cannot change the p-value.
package experiment
