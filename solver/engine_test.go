package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvomatic/solvomatic/core"
	"github.com/solvomatic/solvomatic/lattice"
	"github.com/solvomatic/solvomatic/solver"
)

func TestEngine_VarConstraintSolveTable(t *testing.T) {
	e := solver.New[int]()
	require.NoError(t, e.Var("A", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, e.Var("B", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, e.Constraint(lattice.NewSum[int](3), []core.VarID{"A", "B"}))

	require.NoError(t, e.Solve())
	require.True(t, e.Table().IsSolved())
	require.Len(t, e.Table().Partitions[0].Tuples, 3)
}

func TestEngine_MappedConstraint(t *testing.T) {
	e := solver.New[int]()
	require.NoError(t, e.Var("A", []int{3}))
	double := func(v int) int { return v * 2 }
	require.NoError(t, e.MappedConstraint(lattice.NewSum[int](6), []core.VarID{"A"}, []func(int) int{double}))

	require.NoError(t, e.Solve())
	require.True(t, e.Table().IsSolved())
}

func TestEngine_DuplicateVariable(t *testing.T) {
	e := solver.New[int]()
	require.NoError(t, e.Var("A", []int{1}))
	err := e.Var("A", []int{2})
	require.ErrorIs(t, err, core.ErrDuplicateVariable)
}

func TestEngine_UnknownVariableInConstraint(t *testing.T) {
	e := solver.New[int]()
	require.NoError(t, e.Var("A", []int{1}))
	err := e.Constraint(lattice.NewSum[int](1), []core.VarID{"A", "Z"})
	require.ErrorIs(t, err, core.ErrUnknownVariable)
}

func TestEngine_AlreadySolved(t *testing.T) {
	e := solver.New[int]()
	require.NoError(t, e.Var("A", []int{1}))
	require.NoError(t, e.Constraint(lattice.NewSum[int](1), []core.VarID{"A"}))
	require.NoError(t, e.Solve())

	require.ErrorIs(t, e.Solve(), solver.ErrAlreadySolved)
	require.ErrorIs(t, e.Var("B", []int{1}), solver.ErrAlreadySolved)
	require.ErrorIs(t, e.Constraint(lattice.NewSum[int](1), []core.VarID{"A"}), solver.ErrAlreadySolved)
}

func TestEngine_Unsatisfiable(t *testing.T) {
	e := solver.New[int]()
	require.NoError(t, e.Var("A", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, e.Var("B", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	require.NoError(t, e.Constraint(lattice.NewSum[int](100), []core.VarID{"A", "B"}))

	err := e.Solve()
	require.ErrorIs(t, err, solver.ErrUnsatisfiable)
}
