package core

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core table operations (spec.md §7).
var (
	// ErrUnknownVariable indicates an operation referenced a variable the
	// table was never built with.
	ErrUnknownVariable = errors.New("core: unknown variable")
	// ErrDuplicateVariable indicates the same variable was declared twice.
	ErrDuplicateVariable = errors.New("core: variable declared twice")
	// ErrEmptyDomain indicates a variable was declared with no candidate
	// values at all.
	ErrEmptyDomain = errors.New("core: empty domain")
	// ErrLastTuple indicates DeleteTuple was asked to remove the only
	// remaining tuple in a partition; an empty partition is not a
	// representable table (spec.md §3), so the deletion is refused and the
	// caller (the solver) must treat this as Unsatisfiable instead.
	ErrLastTuple = errors.New("core: cannot delete the last tuple in a partition")
	// ErrPartitionIndex indicates an out-of-range partition index.
	ErrPartitionIndex = errors.New("core: partition index out of range")
	// ErrTupleIndex indicates an out-of-range tuple index.
	ErrTupleIndex = errors.New("core: tuple index out of range")
	// ErrSignatureOverlap is the defensive invariant check of spec.md §7:
	// a table whose partitions do not have pairwise-disjoint signatures is
	// a bug, not a recoverable condition.
	ErrSignatureOverlap = errors.New("core: partition signatures overlap")
)

// VarID is the opaque, totally-ordered, hashable variable identifier
// spec.md §3 calls for. It is a plain string: the puzzle front-end encodes
// block/row/column coordinates into it, but core never interprets the
// contents.
type VarID string

// Value is the capability set spec.md §9 asks of the engine's value type:
// equality, hashing (via Go's map key rules, which comparable already
// grants) and a total order for deterministic output.
type Value interface {
	cmp.Ordered
}

// Tuple is a dense assignment of values to one partition's variables, in
// that partition's signature order (spec.md §3).
type Tuple[V Value] []V

func (t Tuple[V]) equal(other Tuple[V]) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

func (t Tuple[V]) clone() Tuple[V] {
	out := make(Tuple[V], len(t))
	copy(out, t)
	return out
}

func (t Tuple[V]) key() string {
	var b strings.Builder
	for i, v := range t {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	return b.String()
}

// Partition is an ordered, non-empty list of variables (its Signature)
// together with a non-empty, duplicate-free list of Tuples matching that
// signature; it denotes the disjunction of its tuples (spec.md §3).
type Partition[V Value] struct {
	Signature []VarID    `cbor:"signature"`
	Tuples    []Tuple[V] `cbor:"tuples"`
}

// columnOf returns the tuple position of v within this partition's
// signature, or -1 if v does not belong to it.
func (p *Partition[V]) columnOf(v VarID) int {
	for i, sv := range p.Signature {
		if sv == v {
			return i
		}
	}
	return -1
}

// hasVar reports whether v belongs to this partition's signature.
func (p *Partition[V]) hasVar(v VarID) bool {
	return p.columnOf(v) >= 0
}

// Table is an ordered list of Partitions whose signatures are pairwise
// disjoint and whose union is the full variable set; it denotes the
// conjunction (Cartesian product) of its partitions (spec.md §3).
type Table[V Value] struct {
	Partitions []*Partition[V] `cbor:"partitions"`
}

// New builds a Table with one partition per variable, each holding
// single-value tuples spanning that variable's domain, in declaration
// order (spec.md §3 "Lifecycle", §4.2 "new").
//
// order fixes the deterministic iteration order of vars (declaration
// order); domains maps each variable to its non-empty initial domain.
func New[V Value](order []VarID, domains map[VarID][]V) (*Table[V], error) {
	t := &Table[V]{Partitions: make([]*Partition[V], 0, len(order))}
	seen := make(map[VarID]struct{}, len(order))
	for _, v := range order {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("core: %s: %w", v, ErrDuplicateVariable)
		}
		seen[v] = struct{}{}
		dom, ok := domains[v]
		if !ok {
			return nil, fmt.Errorf("core: %s: %w", v, ErrUnknownVariable)
		}
		if len(dom) == 0 {
			return nil, fmt.Errorf("core: %s: %w", v, ErrEmptyDomain)
		}
		tuples := make([]Tuple[V], 0, len(dom))
		dedup := make(map[string]struct{}, len(dom))
		for _, val := range dom {
			tup := Tuple[V]{val}
			k := tup.key()
			if _, ok := dedup[k]; ok {
				continue
			}
			dedup[k] = struct{}{}
			tuples = append(tuples, tup)
		}
		t.Partitions = append(t.Partitions, &Partition[V]{
			Signature: []VarID{v},
			Tuples:    tuples,
		})
	}
	return t, nil
}

// Size is the sum of tuple counts across all partitions (spec.md §3).
func (t *Table[V]) Size() int {
	n := 0
	for _, p := range t.Partitions {
		n += len(p.Tuples)
	}
	return n
}

// IsSolved reports whether the table has been reduced to a single
// partition; its tuples are then the complete solution set (spec.md §4.2).
func (t *Table[V]) IsSolved() bool {
	return len(t.Partitions) == 1
}

// CheckInvariants defensively re-verifies signature disjointness,
// non-emptiness and tuple lengths (spec.md §7), reporting any violation as
// an error wrapping ErrSignatureOverlap. The solver does not call it; it is
// available to callers and tests that want to check a table.
func (t *Table[V]) CheckInvariants() error {
	seen := make(map[VarID]int, t.varCountHint())
	for pi, p := range t.Partitions {
		if len(p.Tuples) == 0 {
			return fmt.Errorf("core: partition %d: empty: %w", pi, ErrSignatureOverlap)
		}
		if len(p.Signature) == 0 {
			return fmt.Errorf("core: partition %d: empty signature: %w", pi, ErrSignatureOverlap)
		}
		for _, v := range p.Signature {
			if other, dup := seen[v]; dup {
				return fmt.Errorf("core: variable %s in both partition %d and %d: %w", v, other, pi, ErrSignatureOverlap)
			}
			seen[v] = pi
		}
		for _, tup := range p.Tuples {
			if len(tup) != len(p.Signature) {
				return fmt.Errorf("core: partition %d: tuple length %d != signature length %d: %w",
					pi, len(tup), len(p.Signature), ErrSignatureOverlap)
			}
		}
	}
	return nil
}

func (t *Table[V]) varCountHint() int {
	n := 0
	for _, p := range t.Partitions {
		n += len(p.Signature)
	}
	return n
}
