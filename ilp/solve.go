package ilp

import "context"

// Solve runs a depth-first branch-and-bound search over the program's 0/1
// variables and returns the allocation reshaped to (numItems, numAgents):
// result[i][j] is 1 iff item i is assigned to agent j in the optimal
// solution. It maximizes the number of assigned units (equivalently,
// minimizes Σ -x_k), which is utilitarian welfare under the per-agent
// feasibility constraints alone — pool capacity across agents is not
// enforced, matching the bridge's documented role as a small-instance
// test oracle.
func (p *Program) Solve(ctx context.Context) ([][]int, error) {
	width := p.Width()
	if width == 0 {
		return nil, ErrNoOptimalSolution
	}

	s := &solver{p: p, ctx: ctx, bestCount: -1}
	s.assigned = make([]int8, width)
	s.rowSum = make([]int64, len(p.b))

	s.search(0, 0)

	if s.best == nil {
		return nil, ErrNoOptimalSolution
	}
	return reshape(s.best, p.numItems, p.numAgents), nil
}

type solver struct {
	p         *Program
	ctx       context.Context
	assigned  []int8
	rowSum    []int64
	best      []int8
	bestCount int
}

// search explores column col onward, count being the number of 1s fixed
// so far. The bound "count plus every remaining column" is loose (it
// ignores feasibility of setting them all to 1) but still prunes well in
// practice because infeasible 1-branches are rejected by tryAssign before
// recursing, so the search rarely reaches columns where the bound alone
// has to do the work.
func (s *solver) search(col, count int) {
	if s.ctx != nil {
		select {
		case <-s.ctx.Done():
			return
		default:
		}
	}

	if count+(len(s.assigned)-col) <= s.bestCount {
		return
	}

	if col == len(s.assigned) {
		for r, sum := range s.rowSum {
			if sum > s.p.b[r] {
				return
			}
		}
		if count > s.bestCount {
			s.bestCount = count
			s.best = append([]int8(nil), s.assigned...)
		}
		return
	}

	// Branch x[col] = 1 first: more promising toward maximizing count.
	touched := touchedRows(s.p.a, col)
	if s.tryAssign(col, touched) {
		s.search(col+1, count+1)
		s.undoAssign(col, touched)
	}
	s.assigned[col] = 0
	s.search(col+1, count)
	s.assigned[col] = -1
}

// tryAssign sets column col to 1 if doing so keeps every row (among
// touched, the rows with a non-zero coefficient in this column) at or
// under its bound, given the rows already accumulated from columns < col.
// On success rowSum is left updated and s.assigned[col] set to 1; the
// caller must call undoAssign once it is done exploring that branch. On
// failure rowSum and s.assigned are left untouched.
func (s *solver) tryAssign(col int, touched []int) bool {
	for i, r := range touched {
		s.rowSum[r] += s.p.a[r][col]
		if s.rowSum[r] > s.p.b[r] {
			for _, r2 := range touched[:i+1] {
				s.rowSum[r2] -= s.p.a[r2][col]
			}
			return false
		}
	}
	s.assigned[col] = 1
	return true
}

// undoAssign reverses tryAssign's rowSum bookkeeping for col.
func (s *solver) undoAssign(col int, touched []int) {
	for _, r := range touched {
		s.rowSum[r] -= s.p.a[r][col]
	}
	s.assigned[col] = -1
}

func touchedRows(a [][]int64, col int) []int {
	var out []int
	for r, row := range a {
		if row[col] != 0 {
			out = append(out, r)
		}
	}
	return out
}

func reshape(assigned []int8, numItems, numAgents int) [][]int {
	out := make([][]int, numItems)
	for i := range out {
		out[i] = make([]int, numAgents)
		for j := 0; j < numAgents; j++ {
			out[i][j] = int(assigned[j*numItems+i])
		}
	}
	return out
}
