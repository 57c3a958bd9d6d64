// Package embed turns a compatibility matrix into a K-dimensional
// coordinate per middle via spectral decomposition.
//
// The matrix is real symmetric, so its eigen-decomposition yields real
// eigenvalues and orthonormal eigenvectors. Eigenpairs are ordered by
// descending eigenvalue; the single leading ("hub") eigenvector is dropped
// — in this corpus it reflects one dominant global factor, not
// discriminating structure — and the next K eigenvectors, each scaled by
// the square root of its eigenvalue, become the embedding columns.
//
// Numerical policy: compatibility matrices are not exactly positive
// semi-definite, so small negative eigenvalues appear from floating-point
// noise. They are clamped to zero before the square-root scaling, and their
// aggregate magnitude relative to the leading eigenvalue is reported as
// NegativeMass so callers can judge data quality. K larger than the
// available eigenvector count is clamped, not rejected — exploratory
// callers scan wide K ranges — with the clamp visible in the result.
package embed
