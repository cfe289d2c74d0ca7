package core

import "math/big"

// Possibilities is the product of partition tuple counts — the number of
// concrete assignments the table denotes (spec.md §3). It is returned as a
// big.Int because realistic puzzles (a 4x4 magic square's 16 cells at up to
// 16 values each, before any pruning) overflow a machine word quickly.
func (t *Table[V]) Possibilities() *big.Int {
	n := big.NewInt(1)
	for _, p := range t.Partitions {
		n.Mul(n, big.NewInt(int64(len(p.Tuples))))
	}
	return n
}

// Project forms a new table containing only the variables in vars
// (spec.md §4.2). Partitions whose signature is disjoint from vars are
// dropped entirely — their tuples are "free" and contribute only
// multiplicity, which a projected view discards. Partitions whose
// signature intersects vars are restricted to those columns and
// deduplicated. The projected signature of each surviving partition lists
// its variables in the order they appear in vars, not the original
// partition order, per spec.md §4.2 ("Ordering of S in the projected
// signatures follows the caller-supplied order").
func (t *Table[V]) Project(vars []VarID) *Table[V] {
	out := &Table[V]{Partitions: make([]*Partition[V], 0, len(t.Partitions))}
	for _, p := range t.Partitions {
		var cols []int
		var sig []VarID
		for _, v := range vars {
			if col := p.columnOf(v); col >= 0 {
				cols = append(cols, col)
				sig = append(sig, v)
			}
		}
		if len(cols) == 0 {
			continue // disjoint from vars: drop, contributes only multiplicity
		}

		tuples := make([]Tuple[V], 0, len(p.Tuples))
		dedup := make(map[string]struct{}, len(p.Tuples))
		for _, tup := range p.Tuples {
			restricted := make(Tuple[V], len(cols))
			for i, c := range cols {
				restricted[i] = tup[c]
			}
			k := restricted.key()
			if _, seen := dedup[k]; seen {
				continue
			}
			dedup[k] = struct{}{}
			tuples = append(tuples, restricted)
		}
		out.Partitions = append(out.Partitions, &Partition[V]{Signature: sig, Tuples: tuples})
	}

	return out
}
