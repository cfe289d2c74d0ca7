package core

import "fmt"

// DeleteTuple removes one tuple from a partition (spec.md §4.2). It fails
// without mutating anything if tupleIdx is the partition's only tuple —
// emptying a partition is not a representable table, so the solver must
// interpret ErrLastTuple as Unsatisfiable rather than retry.
func (t *Table[V]) DeleteTuple(partitionIdx, tupleIdx int) error {
	if partitionIdx < 0 || partitionIdx >= len(t.Partitions) {
		return fmt.Errorf("core: partition %d: %w", partitionIdx, ErrPartitionIndex)
	}
	p := t.Partitions[partitionIdx]
	if tupleIdx < 0 || tupleIdx >= len(p.Tuples) {
		return fmt.Errorf("core: tuple %d: %w", tupleIdx, ErrTupleIndex)
	}
	if len(p.Tuples) == 1 {
		return fmt.Errorf("core: partition %d: %w", partitionIdx, ErrLastTuple)
	}
	p.Tuples = append(p.Tuples[:tupleIdx], p.Tuples[tupleIdx+1:]...)
	return nil
}

// MergePartitions replaces partitions i and j with a single partition whose
// signature is their concatenation and whose tuples are the full Cartesian
// product (spec.md §4.2). No deduplication pass is needed here (unlike
// Project): i and j have disjoint signatures and each is already
// duplicate-free, so every (tuple_i, tuple_j) pair is already a distinct
// combined tuple.
//
// The merged partition is appended at the end; callers that care about
// stable indices (the solver's speculative search) should re-derive
// partition indices from Table.Partitions after calling this, since i and j
// are removed and every later index shifts down by one or two.
func (t *Table[V]) MergePartitions(i, j int) error {
	n := len(t.Partitions)
	if i < 0 || i >= n {
		return fmt.Errorf("core: partition %d: %w", i, ErrPartitionIndex)
	}
	if j < 0 || j >= n {
		return fmt.Errorf("core: partition %d: %w", j, ErrPartitionIndex)
	}
	if i == j {
		return fmt.Errorf("core: cannot merge partition %d with itself: %w", i, ErrPartitionIndex)
	}
	if i > j {
		i, j = j, i
	}

	pi, pj := t.Partitions[i], t.Partitions[j]
	sig := make([]VarID, 0, len(pi.Signature)+len(pj.Signature))
	sig = append(sig, pi.Signature...)
	sig = append(sig, pj.Signature...)

	tuples := make([]Tuple[V], 0, len(pi.Tuples)*len(pj.Tuples))
	for _, a := range pi.Tuples {
		for _, b := range pj.Tuples {
			combined := make(Tuple[V], 0, len(a)+len(b))
			combined = append(combined, a...)
			combined = append(combined, b...)
			tuples = append(tuples, combined)
		}
	}

	merged := &Partition[V]{Signature: sig, Tuples: tuples}

	next := make([]*Partition[V], 0, n-1)
	for idx, p := range t.Partitions {
		if idx == i || idx == j {
			continue
		}
		next = append(next, p)
	}
	next = append(next, merged)
	t.Partitions = next
	return nil
}

// Clone returns a deep copy of the table, used by the solver's speculative
// merge search to try a merge without disturbing the table the other
// candidates are evaluated against.
func (t *Table[V]) Clone() *Table[V] {
	out := &Table[V]{Partitions: make([]*Partition[V], len(t.Partitions))}
	for i, p := range t.Partitions {
		sig := make([]VarID, len(p.Signature))
		copy(sig, p.Signature)
		tuples := make([]Tuple[V], len(p.Tuples))
		for j, tup := range p.Tuples {
			tuples[j] = tup.clone()
		}
		out.Partitions[i] = &Partition[V]{Signature: sig, Tuples: tuples}
	}
	return out
}
