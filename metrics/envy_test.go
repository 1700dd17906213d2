package metrics_test

import (
	"testing"

	"github.com/fairsched/allocate/agent"
	"github.com/fairsched/allocate/item"
	"github.com/fairsched/allocate/metrics"
	"github.com/fairsched/allocate/swap"
	"github.com/stretchr/testify/require"
)

func TestEFNoViolationsOnDisjointPreferences(t *testing.T) {
	items := buildTwoItems(t)
	agents := buildAgentsOverItems(t, items, []item.Bundle{{items[0]}, {items[1]}})
	alloc, _, _, err := swap.GeneralYankeeSwap(agents, items)
	require.NoError(t, err)

	violations, enviers := metrics.EF(alloc, agents)
	require.Zero(t, violations)
	require.Zero(t, enviers)
}

func TestEFNoEnvyWhenEachAgentHoldsOneItem(t *testing.T) {
	items := buildTwoItems(t)
	// Agent 0 desires both items, agent 1 only item 1; swap gives agent 0
	// item 0 and agent 1 item 1.
	agents := buildAgentsOverItems(t, items, []item.Bundle{
		{items[0], items[1]},
		{items[1]},
	})
	alloc, _, _, err := swap.GeneralYankeeSwap(agents, items)
	require.NoError(t, err)

	// Whatever the exact split, nobody should envy a bundle when both
	// items are fully allocated and each agent holds at least one.
	violations, _ := metrics.EF(alloc, agents)
	require.Zero(t, violations)
}

func TestEF1NeverExceedsEF(t *testing.T) {
	items := buildTwoItems(t)
	agents := buildAgentsOverItems(t, items, []item.Bundle{
		{items[0], items[1]},
		{items[1], items[0]},
	})
	alloc, _, _, err := swap.GeneralYankeeSwap(agents, items)
	require.NoError(t, err)

	efViolations, _ := metrics.EF(alloc, agents)
	ef1Violations, _ := metrics.EF1(alloc, agents)
	require.LessOrEqual(t, ef1Violations, efViolations)
}

func TestEF1NeverExceedsEFX(t *testing.T) {
	// EF1 only counts envy that survives every possible single-item
	// removal; EFX counts envy as soon as it survives some single-item
	// removal, so every EF1 violation is also an EFX violation.
	items := buildTwoItems(t)
	agents := buildAgentsOverItems(t, items, []item.Bundle{
		{items[0], items[1]},
		{items[1], items[0]},
	})
	alloc, _, _, err := swap.GeneralYankeeSwap(agents, items)
	require.NoError(t, err)

	ef1Violations, _ := metrics.EF1(alloc, agents)
	efxViolations, _ := metrics.EFX(alloc, agents)
	require.LessOrEqual(t, ef1Violations, efxViolations)
}
