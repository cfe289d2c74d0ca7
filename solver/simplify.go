package solver

import (
	"errors"
	"sort"

	"github.com/solvomatic/solvomatic/constraint"
	"github.com/solvomatic/solvomatic/core"
)

// ErrUnsatisfiable is the only failure Simplify/Solve report: pruning
// (or a failed speculative merge search) emptied a partition, which spec.md
// §3 treats as "a terminal error state, not a representable table".
var ErrUnsatisfiable = errors.New("solver: unsatisfiable")

func bindingTouches[V core.Value](b *constraint.Binding[V], sig []core.VarID) bool {
	for _, v := range b.Vars {
		for _, s := range sig {
			if v == s {
				return true
			}
		}
	}
	return false
}

// Simplify runs spec.md §4.4's fixpoint pruning pass in place on t: repeat
// until a full sweep deletes no tuple and performs no singleton-pair merge.
// Returns ErrUnsatisfiable if any partition's tuples are all provably
// falsifying (emptying it).
func Simplify[V core.Value](t *core.Table[V], bindings []*constraint.Binding[V]) error {
	for {
		changed, err := pruneSweep(t, bindings)
		if err != nil {
			return err
		}
		merged := mergeSingletons(t)
		if !changed && !merged {
			break
		}
	}
	return nil
}

// pruneSweep deletes every tuple that provably falsifies some binding when
// pinned alone in its partition (spec.md §4.4 bullet 1). Marks are collected
// per partition before any deletion so in-sweep index shifts never apply to
// stale marks; if marking would empty a partition, Simplify reports
// Unsatisfiable instead of deleting down to zero tuples.
func pruneSweep[V core.Value](t *core.Table[V], bindings []*constraint.Binding[V]) (bool, error) {
	changed := false
	for pi, p := range t.Partitions {
		relevant := make([]*constraint.Binding[V], 0, len(bindings))
		for _, b := range bindings {
			if bindingTouches(b, p.Signature) {
				relevant = append(relevant, b)
			}
		}
		if len(relevant) == 0 {
			continue
		}

		marked := make(map[int]struct{})
		for ti := range p.Tuples {
			for _, b := range relevant {
				prune, err := constraint.WouldPruneTuple(t, b, pi, ti)
				if err != nil {
					return changed, err
				}
				if prune {
					marked[ti] = struct{}{}
					break
				}
			}
		}
		if len(marked) == 0 {
			continue
		}
		if len(marked) == len(p.Tuples) {
			return changed, ErrUnsatisfiable
		}

		idxs := make([]int, 0, len(marked))
		for ti := range marked {
			idxs = append(idxs, ti)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
		for _, ti := range idxs {
			if err := t.DeleteTuple(pi, ti); err != nil {
				return changed, err
			}
		}
		changed = true
	}
	return changed, nil
}

// mergeSingletons merges any pair of partitions that have both been reduced
// to exactly one tuple (spec.md §4.4 bullet 3): the merge is free of search
// cost and consolidates context for subsequent constraint evaluation.
func mergeSingletons[V core.Value](t *core.Table[V]) bool {
	merged := false
	for {
		i, j := -1, -1
		for a := 0; a < len(t.Partitions) && i < 0; a++ {
			if len(t.Partitions[a].Tuples) != 1 {
				continue
			}
			for b := a + 1; b < len(t.Partitions); b++ {
				if len(t.Partitions[b].Tuples) == 1 {
					i, j = a, b
					break
				}
			}
		}
		if i < 0 {
			return merged
		}
		_ = t.MergePartitions(i, j)
		merged = true
	}
}
