package swap

import (
	"math"
	"time"

	"github.com/fairsched/allocate/agent"
	"github.com/fairsched/allocate/bfs"
	"github.com/fairsched/allocate/core"
	"github.com/fairsched/allocate/item"
)

// GeneralYankeeSwap runs General Yankee Swap to completion over agents and
// items, returning the final allocation, a monotonically non-decreasing
// elapsed-time trace (one entry per iteration), and the count of agents
// touched by each iteration's augmentation (0 on a drop iteration).
func GeneralYankeeSwap(agents []agent.Agent, items item.Bundle, opts ...Option) (*Matrix, []time.Duration, []int, error) {
	if len(agents) == 0 || len(items) == 0 {
		return nil, nil, nil, ErrEmptyInstance
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(items)
	m := len(agents)

	X := NewMatrix(items, m)
	eg := newExchangeGraph(n)
	for i := 0; i < n; i++ {
		eg.setSinkEdge(i, X.At(i, X.PoolColumn()) > 0)
	}

	gain := make([]float64, m)
	active := make([]bool, m)
	for i := range active {
		active[i] = true
	}

	var timeTrace []time.Duration
	var involvedTrace []int
	start := time.Now()

	for anyActive(active) {
		picked := argmaxActive(gain, active)

		addAgentToExchangeGraph(eg, X, items, agents, picked)
		path := findAugmentingPath(eg.g)
		eg.g.RemoveVertex(core.SourceID)

		if path == nil {
			active[picked] = false
			gain[picked] = math.Inf(-1)
			timeTrace = append(timeTrace, time.Since(start))
			involvedTrace = append(involvedTrace, 0)
			continue
		}

		involved := updateAllocation(X, eg, path, picked)
		updateExchangeGraph(eg, X, items, agents, involved, path)

		gain[picked] = gainValue(o.criterion, agents[picked].Value(X.Bundle(picked)), weightOf(o.weights, picked))

		timeTrace = append(timeTrace, time.Since(start))
		involvedTrace = append(involvedTrace, len(involved))
	}

	return X, timeTrace, involvedTrace, nil
}

func anyActive(active []bool) bool {
	for _, a := range active {
		if a {
			return true
		}
	}
	return false
}

// argmaxActive returns the active index with the greatest gain value,
// the lowest index winning ties (ascending scan, strict '>').
func argmaxActive(gain []float64, active []bool) int {
	best := -1
	for i, a := range active {
		if !a {
			continue
		}
		if best == -1 || gain[i] > gain[best] {
			best = i
		}
	}
	return best
}

func gainValue(criterion Criterion, value int, weight float64) float64 {
	v := float64(value)
	switch criterion {
	case WeightedLeximin:
		return -v / weight
	case WeightedNash:
		if value == 0 {
			return math.Inf(1)
		}
		return math.Pow(1+1/v, weight)
	case WeightedHarmonic:
		return weight / (v + 1)
	default: // LorenzDominance
		return -v
	}
}

// addAgentToExchangeGraph wires a transient source vertex to every item
// the picked agent does not currently hold but would gain value from
// taking outright.
func addAgentToExchangeGraph(eg *exchangeGraph, X *Matrix, items item.Bundle, agents []agent.Agent, picked int) {
	eg.g.AddVertex(core.SourceID)
	bundle := X.Bundle(picked)
	a := agents[picked]
	for _, idx := range a.DesiredItemIndices() {
		if idx < 0 || idx >= len(items) {
			continue
		}
		if bundle.Contains(idx) {
			continue
		}
		if a.MarginalContribution(bundle, items[idx]) > 0 {
			eg.g.AddEdge(core.SourceID, eg.vertexID(idx))
		}
	}
}

// findAugmentingPath returns the item-vertex-ID path from s to t
// (inclusive of both endpoints), or nil if t is unreachable.
func findAugmentingPath(g *core.Graph) []string {
	res, err := bfs.BFS(g, core.SourceID)
	if err != nil {
		return nil
	}
	path, err := res.PathTo(core.SinkID)
	if err != nil {
		return nil
	}
	return path
}

// updateAllocation applies the augmenting path's chain of swaps to X,
// walking from the pool end back toward the picked agent, and returns the
// list of agent indices touched (picked agent first).
func updateAllocation(X *Matrix, eg *exchangeGraph, path []string, picked int) []int {
	trimmed := path[1 : len(path)-1]
	idxs := make([]int, len(trimmed))
	for i, v := range trimmed {
		idxs[i] = eg.itemIndex(v)
	}

	involved := []int{picked}
	last := idxs[len(idxs)-1]
	X.set(last, X.PoolColumn(), X.At(last, X.PoolColumn())-1)

	for i := len(idxs) - 1; i >= 0; i-- {
		last = idxs[i]
		if i > 0 {
			nextToLast := idxs[i-1]
			currentAgent := eg.firstWitness(nextToLast, last)
			involved = append(involved, currentAgent)
			X.set(last, currentAgent, 1)
			X.set(nextToLast, currentAgent, 0)
			for j := 0; j < eg.n; j++ {
				eg.removeWitness(nextToLast, j, currentAgent)
			}
		} else {
			X.set(last, picked, 1)
		}
	}

	return involved
}

// updateExchangeGraph refreshes the sink edge for the item that left the
// pool, then recomputes every witness edge that could have changed for
// the agents touched by this iteration's augmentation.
func updateExchangeGraph(eg *exchangeGraph, X *Matrix, items item.Bundle, agents []agent.Agent, involved []int, path []string) {
	lastItemIdx := eg.itemIndex(path[len(path)-2])
	eg.setSinkEdge(lastItemIdx, X.At(lastItemIdx, X.PoolColumn()) > 0)

	for _, agentIdx := range involved {
		a := agents[agentIdx]
		bundle := X.Bundle(agentIdx)
		bundleIdxs := X.BundleIndices(agentIdx)
		desired := a.DesiredItemIndices()

		for _, i1 := range bundleIdxs {
			for _, i2 := range desired {
				if i1 == i2 || i2 < 0 || i2 >= len(items) {
					continue
				}
				contributes := a.ExchangeContribution(bundle, items[i2], items[i1]) >= 0
				has := eg.hasWitness(i1, i2, agentIdx)
				switch {
				case has && !contributes:
					eg.removeWitness(i1, i2, agentIdx)
				case !has && contributes:
					eg.addWitness(i1, i2, agentIdx)
				}
			}
		}
	}
}
