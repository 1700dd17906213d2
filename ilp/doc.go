// Package ilp assembles per-agent matroid-rank valuations into a single
// block-diagonal 0/1 program and solves it with an in-process
// branch-and-bound search.
//
// It mirrors the original project-fair's IntegerLinearProgram: each
// agent contributes its compiled valuation's (A, b) as a diagonal block
// of a combined constraint matrix acting on the concatenation of every
// agent's own indicator vector, the objective is -1 on every variable
// (minimizing that maximizes the utilitarian sum), and variables are
// bounded to [0, 1]. Unlike the original, which hands the assembled
// program to scipy.optimize.milp, no MILP or general LP solver appears
// anywhere in this module's retrieved reference pack, so Program.Solve
// is a small DFS branch-and-bound instead — adequate for the test-oracle
// role this package plays (cross-checking swap's output on instances
// small enough that pool capacity is never the binding constraint).
package ilp
