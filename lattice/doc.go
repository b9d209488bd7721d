// Package lattice provides fixed-dimension (d=3) integer vector algebra
// and an integer-exact test of ℚ-linear independence via the Gram
// determinant.
//
// TranslationVector is the value type carried by every edge of a periodic
// graph: the displacement, in whole periodic-cell copies, from an edge's
// tail to its head. Independent decides whether a candidate vector would
// extend an existing linearly-independent set, which is the core
// primitive the percolation-dimension analysis in package percolate
// builds on.
//
// Why Gram determinant, not elimination: inputs are integers, and the
// Gram determinant det(M·Mᵀ) reduces a non-square rank test to a square
// determinant while staying in exact integer arithmetic — no fractions,
// no epsilon tolerance. For d=3 the determinant is always a 1×1, 2×2, or
// 3×3 closed form.
package lattice
