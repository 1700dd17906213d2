package swap_test

import (
	"testing"

	"github.com/fairsched/allocate/item"
	"github.com/fairsched/allocate/swap"
	"github.com/stretchr/testify/require"
)

func TestSerialDictatorshipGivesFirstAgentPriority(t *testing.T) {
	items := buildCourseItems(t, []int{1})
	agents := buildAgents(t, items, []item.Bundle{
		{items[0]},
		{items[0]},
	})

	X := swap.SerialDictatorship(agents, items)
	require.Equal(t, int64(1), X.At(0, 0))
	require.Equal(t, int64(0), X.At(0, 1))
}

func TestRoundRobinAlternatesByWeight(t *testing.T) {
	items := buildCourseItems(t, []int{1, 1})
	agents := buildAgents(t, items, []item.Bundle{
		{items[0], items[1]},
		{items[1], items[0]},
	})

	X := swap.RoundRobin(agents, items, swap.WithWeights([]float64{1, 2}))
	for i := range items {
		require.Zero(t, X.At(i, X.PoolColumn()))
	}
	// Agent 1 has the higher weight and goes first in the round, claiming
	// the lowest-index item with positive marginal contribution.
	require.Equal(t, int64(1), X.At(0, 1))
	require.Equal(t, int64(1), X.At(1, 0))
}
