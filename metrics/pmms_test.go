package metrics_test

import (
	"testing"

	"github.com/fairsched/allocate/agent"
	"github.com/fairsched/allocate/feature"
	"github.com/fairsched/allocate/item"
	"github.com/fairsched/allocate/metrics"
	"github.com/fairsched/allocate/swap"
	"github.com/fairsched/allocate/valuation"
	"github.com/stretchr/testify/require"
)

// flatPreferenceBuilder builds a metrics.SubAgentBuilder for agents whose
// only constraint is capacity (no LinearConstraint to remap), preferring
// every item in the sub-schedule in index order.
func flatPreferenceBuilder() metrics.SubAgentBuilder {
	return func(_ int, subItems item.Bundle, _ map[int]int) agent.Agent {
		v, err := valuation.NewValuation(subItems, nil)
		if err != nil {
			panic(err)
		}
		return agent.New(v, subItems)
	}
}

func TestPMMSNoViolationsWhenBundlesAreBalanced(t *testing.T) {
	f, err := feature.NewFeature("course", []string{"X", "Y"})
	require.NoError(t, err)

	itemX, err := item.NewItem("course", []feature.Feature{f}, []string{"X"}, 0, 1)
	require.NoError(t, err)
	itemY, err := item.NewItem("course", []feature.Feature{f}, []string{"Y"}, 1, 1)
	require.NoError(t, err)
	items := item.Bundle{itemX, itemY}

	agents := []agent.Agent{}
	for range []int{0, 1} {
		v, err := valuation.NewValuation(items, nil)
		require.NoError(t, err)
		agents = append(agents, agent.New(v, items))
	}

	alloc, _, _, err := swap.GeneralYankeeSwap(agents, items)
	require.NoError(t, err)

	violations, enviers := metrics.PMMS(alloc, agents, flatPreferenceBuilder())
	require.Zero(t, violations)
	require.Zero(t, enviers)
}

func TestPMMSSkipsPairsWithNoItemsAtAll(t *testing.T) {
	f, err := feature.NewFeature("course", []string{"X"})
	require.NoError(t, err)
	itemX, err := item.NewItem("course", []feature.Feature{f}, []string{"X"}, 0, 1)
	require.NoError(t, err)
	items := item.Bundle{itemX}

	var agents []agent.Agent
	for i := 0; i < 3; i++ {
		v, err := valuation.NewValuation(items, nil)
		require.NoError(t, err)
		agents = append(agents, agent.New(v, item.Bundle{}))
	}

	alloc := swap.NewMatrix(items, len(agents))
	violations, enviers := metrics.PMMS(alloc, agents, flatPreferenceBuilder())
	require.Zero(t, violations)
	require.Zero(t, enviers)
}
