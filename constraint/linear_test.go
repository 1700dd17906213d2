package constraint_test

import (
	"testing"

	"github.com/fairsched/allocate/constraint"
	"github.com/fairsched/allocate/feature"
	"github.com/fairsched/allocate/item"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, value string, index int) item.Item {
	t.Helper()
	f, err := feature.NewFeature("section", []string{"A", "B", "C"})
	require.NoError(t, err)
	it, err := item.NewItem("course", []feature.Feature{f}, []string{value}, index, 1)
	require.NoError(t, err)
	return it
}

func TestLinearConstraintSatisfies(t *testing.T) {
	a := [][]int64{{1, 1, 0}}
	b := []int64{1}
	lc, err := constraint.NewLinearConstraint(a, b, 3)
	require.NoError(t, err)

	it0 := mustItem(t, "A", 0)
	it1 := mustItem(t, "B", 1)

	require.True(t, lc.Satisfies(item.Bundle{it0}))
	require.False(t, lc.Satisfies(item.Bundle{it0, it1}))
}

func TestLinearConstraintShapeMismatch(t *testing.T) {
	_, err := constraint.NewLinearConstraint([][]int64{{1, 2}}, []int64{1, 2}, 2)
	require.ErrorIs(t, err, constraint.ErrShapeMismatch)
}

func TestLinearConstraintConstrainedItems(t *testing.T) {
	lc, err := constraint.NewLinearConstraint([][]int64{{1, 0, 1}}, []int64{1}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, lc.ConstrainedItems())
}

func TestLinearConstraintPruneDropsZeroRows(t *testing.T) {
	lc, err := constraint.NewLinearConstraint([][]int64{{0, 0}, {1, 0}}, []int64{5, 1}, 2)
	require.NoError(t, err)
	pruned := lc.Prune()
	require.Equal(t, 1, pruned.Rows())
}

func TestStackCombinesAndPrunes(t *testing.T) {
	c1, _ := constraint.NewLinearConstraint([][]int64{{1, 0}}, []int64{1}, 2)
	c2, _ := constraint.NewLinearConstraint([][]int64{{1, 0}}, []int64{1}, 2)
	stacked, err := constraint.Stack(c1, c2)
	require.NoError(t, err)
	require.Equal(t, 1, stacked.Rows(), "duplicate rows should be pruned")
}

func TestAddRejectsExtentMismatch(t *testing.T) {
	c1, _ := constraint.NewLinearConstraint([][]int64{{1}}, []int64{1}, 1)
	c2, _ := constraint.NewLinearConstraint([][]int64{{1, 1}}, []int64{1}, 2)
	_, err := c1.Add(c2)
	require.ErrorIs(t, err, constraint.ErrShapeMismatch)
}
