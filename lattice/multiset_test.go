package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvomatic/solvomatic/lattice"
)

func fold[V any](f lattice.Family[V], vals []V) lattice.Value {
	var v lattice.Value
	for i, val := range vals {
		sv := f.Single(i, val)
		if v == nil {
			v = sv
		} else {
			v = v.And(sv)
		}
	}
	return v
}

func TestPermutation_Classify(t *testing.T) {
	target := lattice.NewMultiset(1, 2, 3)
	f := lattice.NewPermutation[int](target)

	require.Equal(t, lattice.Yes, f.Classify(fold[int](f, []int{1, 2, 3})))
	require.Equal(t, lattice.No, f.Classify(fold[int](f, []int{1, 1, 3})))
}

func TestPermutation_OrAcrossAlternatives(t *testing.T) {
	target := lattice.NewMultiset(1, 2)
	f := lattice.NewPermutation[int](target)

	alt1 := fold[int](f, []int{1, 2})
	alt2 := fold[int](f, []int{2, 1})
	or := alt1.Or(alt2)
	require.Equal(t, lattice.Yes, f.Classify(or))
}

func TestSubsetSuperset_Classify(t *testing.T) {
	pool := lattice.NewMultiset(1, 2, 3, 4)

	sub := lattice.NewSubset[int](pool)
	require.Equal(t, lattice.Yes, sub.Classify(fold[int](sub, []int{1, 2})))
	require.Equal(t, lattice.No, sub.Classify(fold[int](sub, []int{9})))

	super := lattice.NewSuperset[int](lattice.NewMultiset(1, 2))
	require.Equal(t, lattice.Yes, super.Classify(fold[int](super, []int{1, 2, 3})))
	require.Equal(t, lattice.No, super.Classify(fold[int](super, []int{1})))
}
