package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvomatic/solvomatic/lattice"
)

func TestInOrder_Classify(t *testing.T) {
	f := lattice.NewInOrder[int]()

	require.Equal(t, lattice.Yes, f.Classify(fold[int](f, []int{1, 2, 3})))
	require.Equal(t, lattice.No, f.Classify(fold[int](f, []int{3, 2, 1})))
	require.Equal(t, lattice.No, f.Classify(fold[int](f, []int{1, 1})))
}

func TestInReverseOrder_Classify(t *testing.T) {
	f := lattice.NewInReverseOrder[int]()

	require.Equal(t, lattice.Yes, f.Classify(fold[int](f, []int{3, 2, 1})))
	require.Equal(t, lattice.No, f.Classify(fold[int](f, []int{1, 2, 3})))
}

func TestInOrder_SingleValueIsVacuouslyOrdered(t *testing.T) {
	f := lattice.NewInOrder[int]()
	require.Equal(t, lattice.Yes, f.Classify(fold[int](f, []int{5})))
}

// TestInOrder_OrWeakensDisagreementToMaybe checks spec.md §4.1's "or weakens
// ok to Maybe if the two alternatives disagree": one alternative tuple
// satisfies InOrder, another doesn't, so the combined verdict for the
// partition alone must be Maybe, never strengthened to No.
func TestInOrder_OrWeakensDisagreementToMaybe(t *testing.T) {
	f := lattice.NewInOrder[int]()

	yes := fold[int](f, []int{1, 2}) // 1 < 2: satisfies
	no := fold[int](f, []int{3, 2})  // 3 < 2 is false: violates
	require.Equal(t, lattice.Maybe, f.Classify(yes.Or(no)))
}

// TestInOrder_OrThenAndNeverFalselyPrunesValidExtension is the exact
// counterexample a maintainer found: partition M1={A,B} holds alternatives
// (1,2) [satisfies A<B] and (3,2) [violates A<B]; partition M2={C} holds
// only C=4. The fully valid assignment (A=1,B=2,C=4) satisfies 1<2<4, so
// folding M1's Or across M2's Single via And must never classify as No —
// that would let solver.pruneSweep delete C=4 and discard a genuine
// solution (spec.md §8 property 1).
func TestInOrder_OrThenAndNeverFalselyPrunesValidExtension(t *testing.T) {
	f := lattice.NewInOrder[int]()

	m1 := fold[int](f, []int{1, 2}).Or(fold[int](f, []int{3, 2}))
	m2 := f.Single(0, 4)

	require.NotEqual(t, lattice.No, f.Classify(m1.And(m2)))
	require.Equal(t, lattice.Maybe, f.Classify(m1.And(m2)))
}
