package matroidcheck_test

import (
	"testing"

	"github.com/fairsched/allocate/constraint"
	"github.com/fairsched/allocate/feature"
	"github.com/fairsched/allocate/item"
	"github.com/fairsched/allocate/matroidcheck"
	"github.com/fairsched/allocate/valuation"
	"github.com/stretchr/testify/require"
)

func buildUniverse(t *testing.T, n int) item.Bundle {
	t.Helper()
	domain := make([]string, n)
	for i := range domain {
		domain[i] = string(rune('a' + i))
	}
	f, err := feature.NewFeature("slot", domain)
	require.NoError(t, err)

	var out item.Bundle
	for i := 0; i < n; i++ {
		it, err := item.NewItem("course", []feature.Feature{f}, []string{domain[i]}, i, 1)
		require.NoError(t, err)
		out = append(out, it)
	}
	return out
}

func TestPowersetHasTwoToTheNSubsets(t *testing.T) {
	universe := buildUniverse(t, 3)
	require.Len(t, matroidcheck.Powerset(universe), 8)
}

func TestUnconstrainedValuationIsAMatroidRankFunction(t *testing.T) {
	universe := buildUniverse(t, 4)
	v, err := valuation.NewValuation(universe, nil)
	require.NoError(t, err)

	require.True(t, matroidcheck.IsMatroidRankFunction(v, universe))
}

func TestConstrainedValuationIsAMatroidRankFunction(t *testing.T) {
	universe := buildUniverse(t, 4)
	c, err := constraint.PreferenceConstraint([][]int{{0, 1, 2, 3}}, []int64{2}, len(universe))
	require.NoError(t, err)
	v, err := valuation.NewValuation(universe, []constraint.Constraint{c})
	require.NoError(t, err)

	require.True(t, matroidcheck.IsMatroidRankFunction(v, universe))
}

// constantValuer gives the empty bundle value 1, breaking rank <= cardinality.
func TestConstantValuerFailsTheCheck(t *testing.T) {
	universe := buildUniverse(t, 2)
	require.False(t, matroidcheck.IsMatroidRankFunction(constantValuer{}, universe))
}

type constantValuer struct{}

func (constantValuer) Value(item.Bundle) int { return 1 }
