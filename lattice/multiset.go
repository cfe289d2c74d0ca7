package lattice

// Multiset is a value-to-multiplicity map over a comparable alphabet, used
// as the lo/hi bound in MultisetValue (spec.md §4.1, Permutation/Subset/
// Superset).
type Multiset[V comparable] map[V]int

// NewMultiset builds a Multiset counting the occurrences of each element.
func NewMultiset[V comparable](elems ...V) Multiset[V] {
	m := make(Multiset[V], len(elems))
	for _, e := range elems {
		m[e]++
	}
	return m
}

func (m Multiset[V]) clone() Multiset[V] {
	out := make(Multiset[V], len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// sum returns the multiset sum (⊎): multiplicities add.
func (m Multiset[V]) sum(other Multiset[V]) Multiset[V] {
	out := m.clone()
	for k, v := range other {
		out[k] += v
	}
	return out
}

// intersect returns the multiset intersection (∩): multiplicities take the
// minimum, keys absent from either side drop out.
func (m Multiset[V]) intersect(other Multiset[V]) Multiset[V] {
	out := make(Multiset[V], len(m))
	for k, v := range m {
		if w, ok := other[k]; ok {
			out[k] = min(v, w)
		}
	}
	return out
}

// union returns the multiset union (∪): multiplicities take the maximum.
func (m Multiset[V]) union(other Multiset[V]) Multiset[V] {
	out := m.clone()
	for k, v := range other {
		if w, ok := out[k]; !ok || v > w {
			out[k] = v
		}
	}
	return out
}

// isSubMultiset reports whether m ⊆ other: every element of m appears in
// other at least as many times.
func (m Multiset[V]) isSubMultiset(other Multiset[V]) bool {
	for k, v := range m {
		if other[k] < v {
			return false
		}
	}
	return true
}

// equal reports whether m and other have identical multiplicities.
func (m Multiset[V]) equal(other Multiset[V]) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		if other[k] != v {
			return false
		}
	}
	return true
}

// MultisetValue is the lattice for Permutation/Subset/Superset: a pair
// (Lo, Hi) of multisets meaning "at least Lo must be present, at most Hi may
// be present" (spec.md §4.1).
type MultisetValue[V comparable] struct {
	Lo, Hi Multiset[V]
}

// And combines two independent sources: required elements accumulate
// (multiset sum), and so do the elements that may be present.
func (a MultisetValue[V]) And(other Value) Value {
	b := other.(MultisetValue[V])
	return MultisetValue[V]{Lo: a.Lo.sum(b.Lo), Hi: a.Hi.sum(b.Hi)}
}

// Or combines two alternatives: only elements required by both stay
// required (intersection), while anything possible under either stays
// possible (union).
func (a MultisetValue[V]) Or(other Value) Value {
	b := other.(MultisetValue[V])
	return MultisetValue[V]{Lo: a.Lo.intersect(b.Lo), Hi: a.Hi.union(b.Hi)}
}

type multisetFamily[V comparable] struct {
	kind   Kind
	target Multiset[V]
}

// NewPermutation builds the Permutation(target) family: the bound
// variables, taken together, must form exactly the multiset target.
func NewPermutation[V comparable](target Multiset[V]) Family[V] {
	return multisetFamily[V]{kind: Permutation, target: target}
}

// NewSubset builds the Subset(target) family: every bound variable's value
// must be drawn from target (target's multiplicities are upper bounds).
func NewSubset[V comparable](target Multiset[V]) Family[V] {
	return multisetFamily[V]{kind: Subset, target: target}
}

// NewSuperset builds the Superset(target) family: the bound variables must,
// between them, cover every element of target.
func NewSuperset[V comparable](target Multiset[V]) Family[V] {
	return multisetFamily[V]{kind: Superset, target: target}
}

func (f multisetFamily[V]) Kind() Kind { return f.kind }

func (multisetFamily[V]) Single(_ int, v V) Value {
	one := Multiset[V]{v: 1}
	return MultisetValue[V]{Lo: one, Hi: one}
}

func (f multisetFamily[V]) Classify(v Value) Verdict {
	mv := v.(MultisetValue[V])
	switch f.kind {
	case Permutation:
		if mv.Lo.equal(f.target) && mv.Hi.equal(f.target) {
			return Yes
		}
		if !mv.Lo.isSubMultiset(f.target) || !f.target.isSubMultiset(mv.Hi) {
			return No
		}
		return Maybe
	case Subset:
		if mv.Hi.isSubMultiset(f.target) {
			return Yes
		}
		if !mv.Lo.isSubMultiset(f.target) {
			return No
		}
		return Maybe
	case Superset:
		if f.target.isSubMultiset(mv.Lo) {
			return Yes
		}
		if !f.target.isSubMultiset(mv.Hi) {
			return No
		}
		return Maybe
	default:
		return Maybe
	}
}
