package constraint

import (
	"errors"
	"fmt"
	"sort"

	"github.com/solvomatic/solvomatic/core"
	"github.com/solvomatic/solvomatic/lattice"
)

// ErrMapLength is returned by NewBinding when a non-nil Maps slice does not
// have exactly one entry per bound variable (spec.md §3, "optional
// per-position value-mapping functions").
var ErrMapLength = errors.New("constraint: maps length must match vars length")

// Binding attaches a lattice.Family to a sequence of variables, with
// optional per-position value maps — spec.md §3's "constraint binding": "a
// constraint kind plus a sequence of variables (with a multiplicity — the
// same variable may appear multiple times) plus optional per-position
// value-mapping functions".
type Binding[V core.Value] struct {
	Family lattice.Family[V]
	Vars   []core.VarID
	Maps   []func(V) V // nil, or exactly len(Vars) entries; a nil entry is the identity map
}

// NewBinding validates and constructs a Binding. maps may be omitted
// entirely (plain, unmapped constraint) or supplied with one entry per
// variable in vars; individual nil entries fall back to the identity map.
func NewBinding[V core.Value](family lattice.Family[V], vars []core.VarID, maps []func(V) V) (*Binding[V], error) {
	if maps != nil && len(maps) != len(vars) {
		return nil, fmt.Errorf("constraint: %d vars, %d maps: %w", len(vars), len(maps), ErrMapLength)
	}
	return &Binding[V]{Family: family, Vars: vars, Maps: maps}, nil
}

// distinctVars returns the variables referenced by b, each exactly once, in
// first-occurrence order — spec.md §4.3 step 1's "S = set of distinct
// variables in v₁..vₙ".
func (b *Binding[V]) distinctVars() []core.VarID {
	out := make([]core.VarID, 0, len(b.Vars))
	seen := make(map[core.VarID]struct{}, len(b.Vars))
	for _, v := range b.Vars {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// mapAt applies the position-i map to v, or returns v unchanged if no map
// was supplied for that position.
func (b *Binding[V]) mapAt(pos int, v V) V {
	if b.Maps == nil || pos >= len(b.Maps) || b.Maps[pos] == nil {
		return v
	}
	return b.Maps[pos](v)
}

// columnOf returns the index of v within sig, or -1 if sig does not contain it.
func columnOf(sig []core.VarID, v core.VarID) int {
	for i, s := range sig {
		if s == v {
			return i
		}
	}
	return -1
}

// Evaluate folds t through b, implementing spec.md §4.3 steps 1-5: project
// to the binding's distinct variables, fold each projected partition's
// tuples with Or, fold the per-partition results with And (in order of each
// partition's first bound position), then classify.
func Evaluate[V core.Value](t *core.Table[V], b *Binding[V]) lattice.Verdict {
	proj := t.Project(b.distinctVars())
	// Fold partitions in the order of their first bound position, so that a
	// partition holding earlier positions is folded before one holding later
	// positions regardless of where each sits in the table.
	firstPos := func(p *core.Partition[V]) int {
		for i, v := range b.Vars {
			if columnOf(p.Signature, v) >= 0 {
				return i
			}
		}
		return len(b.Vars)
	}
	sort.SliceStable(proj.Partitions, func(i, j int) bool {
		return firstPos(proj.Partitions[i]) < firstPos(proj.Partitions[j])
	})

	var folded lattice.Value
	for _, p := range proj.Partitions {
		var positions []int
		for i, v := range b.Vars {
			if columnOf(p.Signature, v) >= 0 {
				positions = append(positions, i)
			}
		}
		if len(positions) == 0 {
			continue
		}

		var partVal lattice.Value
		for _, tup := range p.Tuples {
			var tupVal lattice.Value
			for _, pos := range positions {
				col := columnOf(p.Signature, b.Vars[pos])
				v := b.mapAt(pos, tup[col])
				single := b.Family.Single(pos, v)
				if tupVal == nil {
					tupVal = single
				} else {
					tupVal = tupVal.And(single)
				}
			}
			if partVal == nil {
				partVal = tupVal
			} else {
				partVal = partVal.Or(tupVal)
			}
		}

		if folded == nil {
			folded = partVal
		} else {
			folded = folded.And(partVal)
		}
	}

	if folded == nil {
		// Binding references no variable present in t; vacuously unknowable.
		return lattice.Maybe
	}
	return b.Family.Classify(folded)
}

// WouldPruneTuple answers spec.md §4.3's pruning primitive: if partition
// partitionIdx were temporarily restricted to just its tuple at tupleIdx,
// would b classify as No? It neither mutates t nor requires the caller to
// clone it — only the one named partition is shadowed for the check.
func WouldPruneTuple[V core.Value](t *core.Table[V], b *Binding[V], partitionIdx, tupleIdx int) (bool, error) {
	if partitionIdx < 0 || partitionIdx >= len(t.Partitions) {
		return false, fmt.Errorf("constraint: partition %d: %w", partitionIdx, core.ErrPartitionIndex)
	}
	p := t.Partitions[partitionIdx]
	if tupleIdx < 0 || tupleIdx >= len(p.Tuples) {
		return false, fmt.Errorf("constraint: tuple %d: %w", tupleIdx, core.ErrTupleIndex)
	}

	pinned := &core.Partition[V]{Signature: p.Signature, Tuples: []core.Tuple[V]{p.Tuples[tupleIdx]}}
	shadow := &core.Table[V]{Partitions: make([]*core.Partition[V], len(t.Partitions))}
	copy(shadow.Partitions, t.Partitions)
	shadow.Partitions[partitionIdx] = pinned

	return Evaluate(shadow, b) == lattice.No, nil
}
