// Package matroidcheck provides power-set based law checkers for a
// matroid-rank valuation: non-negativity, monotonicity, submodularity,
// and rank-bounded-by-cardinality. It is a direct Go port of the original
// project-fair's set_tools module, kept test-only since nothing in this
// module needs these checks in production — only valuation's tests do,
// per the testable properties a matroid-rank valuation must satisfy.
package matroidcheck
