package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvomatic/solvomatic/constraint"
	"github.com/solvomatic/solvomatic/core"
	"github.com/solvomatic/solvomatic/lattice"
)

func sumTable(t *testing.T) *core.Table[int] {
	t.Helper()
	tbl, err := core.New([]core.VarID{"A", "B"}, map[core.VarID][]int{
		"A": {1, 2, 3, 4, 5, 6, 7, 8, 9},
		"B": {0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	})
	require.NoError(t, err)
	return tbl
}

func TestEvaluate_Sum(t *testing.T) {
	tbl := sumTable(t)
	b, err := constraint.NewBinding[int](lattice.NewSum[int](3), []core.VarID{"A", "B"}, nil)
	require.NoError(t, err)

	require.Equal(t, lattice.Maybe, constraint.Evaluate(tbl, b))
}

func TestEvaluate_UnsatisfiableSum(t *testing.T) {
	tbl := sumTable(t)
	b, err := constraint.NewBinding[int](lattice.NewSum[int](100), []core.VarID{"A", "B"}, nil)
	require.NoError(t, err)

	require.Equal(t, lattice.No, constraint.Evaluate(tbl, b))
}

func TestWouldPruneTuple_Sum(t *testing.T) {
	tbl := sumTable(t)
	b, err := constraint.NewBinding[int](lattice.NewSum[int](3), []core.VarID{"A", "B"}, nil)
	require.NoError(t, err)

	// A=9: min possible sum is 9+0=9 > 3, so pinning A=9 must prune.
	idx := -1
	for i, tup := range tbl.Partitions[0].Tuples {
		if tup[0] == 9 {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	prune, err := constraint.WouldPruneTuple(tbl, b, 0, idx)
	require.NoError(t, err)
	require.True(t, prune)

	// A=1: sum could be 1+2=3, so pinning A=1 must not prune.
	idx = -1
	for i, tup := range tbl.Partitions[0].Tuples {
		if tup[0] == 1 {
			idx = i
		}
	}
	prune, err = constraint.WouldPruneTuple(tbl, b, 0, idx)
	require.NoError(t, err)
	require.False(t, prune)
}

func TestNewBinding_RejectsMismatchedMapLength(t *testing.T) {
	_, err := constraint.NewBinding[int](lattice.NewSum[int](1), []core.VarID{"A", "B"}, []func(int) int{func(v int) int { return v }})
	require.ErrorIs(t, err, constraint.ErrMapLength)
}

func TestEvaluate_MappedConstraint(t *testing.T) {
	tbl, err := core.New([]core.VarID{"A"}, map[core.VarID][]int{"A": {3}})
	require.NoError(t, err)

	double := func(v int) int { return v * 2 }
	b, err := constraint.NewBinding[int](lattice.NewSum[int](6), []core.VarID{"A"}, []func(int) int{double})
	require.NoError(t, err)

	require.Equal(t, lattice.Yes, constraint.Evaluate(tbl, b))
}

func TestEvaluate_RepeatedVariable(t *testing.T) {
	tbl, err := core.New([]core.VarID{"A"}, map[core.VarID][]int{"A": {5}})
	require.NoError(t, err)

	b, err := constraint.NewBinding[int](lattice.NewSum[int](10), []core.VarID{"A", "A"}, nil)
	require.NoError(t, err)

	require.Equal(t, lattice.Yes, constraint.Evaluate(tbl, b))
}
