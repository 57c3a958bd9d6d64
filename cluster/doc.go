// Package cluster partitions embedded middles into coherent groups.
//
// Three method families are supported — k-means (k-means++ seeding),
// agglomerative hierarchical clustering with average linkage, and a
// diagonal-covariance Gaussian mixture fitted by EM — behind one Fit entry
// point. Given valid input, fitting always converges to some partition;
// "no structure" is a verdict for the significance layer, never a fitting
// error.
//
// Model selection scans a candidate range of cluster counts and scores each
// fit by an internal validity metric: mean silhouette for k-means and
// hierarchical, BIC for mixtures. Ties break toward the smaller count.
//
// All randomness (k-means++ seeding, GMM initialization) flows from an
// explicit caller-supplied seed; seed 0 selects a fixed default. Parallel
// and sequential use therefore produce reproducible results.
package cluster
