package metrics

import (
	"github.com/fairsched/allocate/agent"
	"github.com/fairsched/allocate/item"
	"github.com/fairsched/allocate/swap"
)

// SubAgentBuilder rebuilds the agent at originalAgentIndex's valuation
// against a sub-schedule: subItems is the re-indexed combined item set
// (as built by item.SubSchedule) and remap maps an item's original index
// to its index within subItems. Implementations typically re-derive each
// of the agent's LinearConstraints against subItems via remap before
// calling valuation.NewValuation and agent.New — the constraint
// restriction is necessarily domain-specific, so PMMS takes it as a
// callback rather than assuming a particular constraint representation.
type SubAgentBuilder func(originalAgentIndex int, subItems item.Bundle, remap map[int]int) agent.Agent

// PMMS reports pairwise maximin share violations: for every pair of
// agents (i, j), each agent's guaranteed share is bounded by running
// General Yankee Swap between two clones of that agent's own valuation
// over the pair's combined items (item.SubSchedule), then taking the
// worse of the two clones' resulting values — the 1-out-of-2 maximin
// share a agent could guarantee itself by splitting the pair's combined
// bundle as evenly as its own preferences allow. A violation is recorded
// whenever an agent's actual value falls below that guaranteed share.
func PMMS(X *swap.Matrix, agents []agent.Agent, build SubAgentBuilder) (violations, enviers int) {
	n := len(agents)
	envious := make([]bool, n)

	for i := 0; i < n; i++ {
		bundleI := X.Bundle(i)
		for j := i + 1; j < n; j++ {
			bundleJ := X.Bundle(j)
			if len(bundleI) == 0 && len(bundleJ) == 0 {
				continue
			}

			subItems, remap := item.SubSchedule(bundleI, bundleJ)

			if agents[i].Value(bundleI) < maximinShare(i, subItems, remap, build) {
				violations++
				envious[i] = true
			}
			if agents[j].Value(bundleJ) < maximinShare(j, subItems, remap, build) {
				violations++
				envious[j] = true
			}
		}
	}

	for _, e := range envious {
		if e {
			enviers++
		}
	}
	return violations, enviers
}

// maximinShare runs General Yankee Swap between two independent clones
// of the agent at agentIdx's rebuilt valuation over subItems and returns
// the lower of the two clones' resulting values.
func maximinShare(agentIdx int, subItems item.Bundle, remap map[int]int, build SubAgentBuilder) int {
	clone := build(agentIdx, subItems, remap)
	twin := build(agentIdx, subItems, remap)

	X, _, _, err := swap.GeneralYankeeSwap([]agent.Agent{clone, twin}, subItems)
	if err != nil {
		return 0
	}

	v0 := clone.Value(X.Bundle(0))
	v1 := twin.Value(X.Bundle(1))
	if v0 < v1 {
		return v0
	}
	return v1
}
