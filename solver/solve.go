package solver

import (
	"math/big"

	"github.com/solvomatic/solvomatic/constraint"
	"github.com/solvomatic/solvomatic/core"
)

// Solve runs spec.md §4.4's outer loop to completion: Simplify, then (unless
// already solved) try every unordered partition pair, keep the merge whose
// simplified result minimizes table size (ties broken by possibility count,
// then by partition index pair, per spec.md §5's determinism requirement),
// and repeat. Returns ErrUnsatisfiable if Simplify ever empties a partition
// and no candidate merge rescues it.
func Solve[V core.Value](t *core.Table[V], bindings []*constraint.Binding[V], opts ...Option) (*core.Table[V], error) {
	cfg := newConfig(opts)
	step := 0

	if err := Simplify(t, bindings); err != nil {
		return nil, err
	}
	step++
	reportStep(cfg, t, StepInfo{Step: step, Kind: StepSimplify, Partitions: len(t.Partitions), Size: t.Size(), Possibilities: t.Possibilities()})

	for !t.IsSolved() {
		candidate, err := bestMerge(t, bindings)
		if err != nil {
			return nil, err
		}
		t = candidate
		step++
		reportStep(cfg, t, StepInfo{Step: step, Kind: StepMerge, Partitions: len(t.Partitions), Size: t.Size(), Possibilities: t.Possibilities()})
	}

	return t, nil
}

// bestMerge evaluates every unordered partition pair of t, simplifying each
// candidate merge, and returns the one minimizing size (spec.md §4.4 bullet
// "pick the one minimizing size(T_pq); ties broken by minimizing possibility
// count, then by partition indices").
func bestMerge[V core.Value](t *core.Table[V], bindings []*constraint.Binding[V]) (*core.Table[V], error) {
	n := len(t.Partitions)
	var best *core.Table[V]
	var bestSize int
	var bestPoss *big.Int
	found := false

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cand := t.Clone()
			if err := cand.MergePartitions(i, j); err != nil {
				return nil, err
			}
			if err := Simplify(cand, bindings); err != nil {
				continue // this pair proves Unsatisfiable; try the next
			}

			size := cand.Size()
			poss := cand.Possibilities()
			if !found || size < bestSize || (size == bestSize && poss.Cmp(bestPoss) < 0) {
				best, bestSize, bestPoss, found = cand, size, poss, true
			}
		}
	}

	if !found {
		return nil, ErrUnsatisfiable
	}
	return best, nil
}
