package metrics

import (
	"math"

	"github.com/fairsched/allocate/agent"
	"github.com/fairsched/allocate/swap"
)

// UtilitarianWelfare returns the mean valuation across all agents of
// their current bundle.
func UtilitarianWelfare(X *swap.Matrix, agents []agent.Agent) float64 {
	var total float64
	for i, a := range agents {
		total += float64(a.Value(X.Bundle(i)))
	}
	return total / float64(len(agents))
}

// NashWelfare returns the number of agents with zero valuation and the
// geometric mean valuation of the remaining agents (the n-th root of the
// product of their non-zero valuations). When every agent values their
// bundle at nothing, zeros is len(agents) and the geometric mean is 0.
func NashWelfare(X *swap.Matrix, agents []agent.Agent) (zeros int, geometricMean float64) {
	var logSum float64
	for i, a := range agents {
		v := a.Value(X.Bundle(i))
		if v == 0 {
			zeros++
			continue
		}
		logSum += math.Log(float64(v))
	}
	nonZero := len(agents) - zeros
	if nonZero == 0 {
		return zeros, 0
	}
	return zeros, math.Exp(logSum / float64(nonZero))
}

// Leximin returns every agent's current valuation, sorted descending —
// the vector a leximin-fair allocation lexicographically maximizes from
// the bottom up.
func Leximin(X *swap.Matrix, agents []agent.Agent) []int {
	out := make([]int, len(agents))
	for i, a := range agents {
		out[i] = a.Value(X.Bundle(i))
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] < out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
