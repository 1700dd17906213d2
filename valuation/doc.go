// Package valuation implements the matroid-rank valuation: an agent's
// utility for a bundle is the size of the largest independent sub-bundle
// it contains, where independence is "satisfies every declared
// LinearConstraint, and never exceeds any item's capacity."
//
// Value uses greedy augmentation as its production path (correct for any
// matroid-rank valuation and linear in bundle size once Independent is
// O(1) amortized via memoization). BruteForceValue recomputes the same
// quantity by the original project-fair's recursive drop-one-item scheme,
// kept only as a test oracle to cross-check Value on small fixtures.
package valuation
