package swap

import (
	"sort"

	"github.com/fairsched/allocate/agent"
	"github.com/fairsched/allocate/item"
)

// SerialDictatorship lets agents claim items in order: each agent, in turn,
// greedily takes every item remaining in the pool that improves its value,
// most-improving first. SPIRE is an alias used by the scheduling literature
// for the same procedure.
func SerialDictatorship(agents []agent.Agent, items item.Bundle) *Matrix {
	X := NewMatrix(items, len(agents))
	for agentIdx, a := range agents {
		claimGreedily(X, a, items, agentIdx)
	}
	return X
}

// SPIRE is an alias for SerialDictatorship.
func SPIRE(agents []agent.Agent, items item.Bundle) *Matrix {
	return SerialDictatorship(agents, items)
}

func claimGreedily(X *Matrix, a agent.Agent, items item.Bundle, agentIdx int) {
	for {
		bundle := X.Bundle(agentIdx)
		best, bestGain := -1, 0
		for i, it := range items {
			if X.At(i, X.PoolColumn()) <= 0 {
				continue
			}
			gain := a.MarginalContribution(bundle, it)
			if gain > bestGain {
				best, bestGain = i, gain
			}
		}
		if best == -1 {
			return
		}
		X.set(best, agentIdx, X.At(best, agentIdx)+1)
		X.set(best, X.PoolColumn(), X.At(best, X.PoolColumn())-1)
	}
}

// RoundRobinOption configures RoundRobin.
type RoundRobinOption func(*roundRobinOptions)

type roundRobinOptions struct {
	weights []float64
}

// WithWeights orders agents within each round by descending weight,
// ascending index breaking ties; agents without an entry default to
// weight 1.
func WithWeights(weights []float64) RoundRobinOption {
	return func(o *roundRobinOptions) { o.weights = weights }
}

// RoundRobin allocates one item per agent per round, in per-round
// weight-descending (index-ascending tie-break) order, each agent taking
// its single most-improving remaining item; a round with no agent able to
// improve ends the process.
func RoundRobin(agents []agent.Agent, items item.Bundle, opts ...RoundRobinOption) *Matrix {
	o := roundRobinOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	order := make([]int, len(agents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weightOf(o.weights, order[a]) > weightOf(o.weights, order[b])
	})

	X := NewMatrix(items, len(agents))
	for {
		progressed := false
		for _, agentIdx := range order {
			bundle := X.Bundle(agentIdx)
			best, bestGain := -1, 0
			for i, it := range items {
				if X.At(i, X.PoolColumn()) <= 0 {
					continue
				}
				gain := agents[agentIdx].MarginalContribution(bundle, it)
				if gain > bestGain {
					best, bestGain = i, gain
				}
			}
			if best == -1 {
				continue
			}
			X.set(best, agentIdx, X.At(best, agentIdx)+1)
			X.set(best, X.PoolColumn(), X.At(best, X.PoolColumn())-1)
			progressed = true
		}
		if !progressed {
			return X
		}
	}
}
