package lattice

import "cmp"

// OrderValue is the position-local lattice for InOrder/InReverseOrder
// (spec.md §4.1). Because ordering depends on adjacency, not just presence,
// And here is evaluated strictly in the left-to-right position order the
// constraint evaluator folds positions in (spec.md §4.3 step 2); this is the
// one family that is not a commutative lattice in the strict sense, a
// deviation spec.md §4.1 explicitly allows ("implementers may treat
// ordering as a single-pass check ... producing position-wise intervals").
//
// First/Last are carried as closed intervals, not single values: a tuple
// freshly folded through Single/And (one concrete assignment, no
// alternatives yet) always has FirstLo==FirstHi and LastLo==LastHi, but once
// Or combines two or more alternative tuples from the same partition, the
// boundary values genuinely vary across alternatives and must be widened to
// cover all of them — collapsing to one side's value the way a plain
// min/max-free field would is what silently turns a later And's relation
// check into a false No. Ok carries the running verdict: Yes means every
// adjacent pair seen so far satisfies the relation on every alternative, No
// means every alternative violates it, Maybe means either an individual
// alternative's internal order was already ambiguous or two alternatives
// disagreed on the boundary values (spec.md §4.1, "or weakens ok to Maybe if
// the two alternatives disagree").
type OrderValue[V cmp.Ordered] struct {
	FirstLo, FirstHi V
	LastLo, LastHi   V
	HasValue         bool
	Ok               Verdict
	increasing       bool
}

func (a OrderValue[V]) And(other Value) Value {
	b := other.(OrderValue[V])
	if !a.HasValue {
		return b
	}
	if !b.HasValue {
		return a
	}

	var related Verdict
	if a.increasing {
		switch {
		case a.LastHi < b.FirstLo:
			related = Yes
		case a.LastLo >= b.FirstHi:
			related = No
		default:
			related = Maybe
		}
	} else {
		switch {
		case a.LastLo > b.FirstHi:
			related = Yes
		case a.LastHi <= b.FirstLo:
			related = No
		default:
			related = Maybe
		}
	}

	return OrderValue[V]{
		FirstLo: a.FirstLo, FirstHi: a.FirstHi,
		LastLo: b.LastLo, LastHi: b.LastHi,
		HasValue:   true,
		Ok:         combineAndOk(a.Ok, b.Ok, related),
		increasing: a.increasing,
	}
}

func (a OrderValue[V]) Or(other Value) Value {
	b := other.(OrderValue[V])
	if !a.HasValue {
		return b
	}
	if !b.HasValue {
		return a
	}

	ok := Maybe
	switch {
	case a.Ok == Yes && b.Ok == Yes:
		ok = Yes
	case a.Ok == No && b.Ok == No:
		ok = No
	}

	return OrderValue[V]{
		FirstLo: min(a.FirstLo, b.FirstLo), FirstHi: max(a.FirstHi, b.FirstHi),
		LastLo: min(a.LastLo, b.LastLo), LastHi: max(a.LastHi, b.LastHi),
		HasValue:   true,
		Ok:         ok,
		increasing: a.increasing,
	}
}

// combineAndOk folds two upstream verdicts together with the verdict of the
// relation check between them: No dominates (any No forces No), then Maybe
// (any Maybe forces Maybe), and only Yes/Yes/Yes produces Yes.
func combineAndOk(a, b, related Verdict) Verdict {
	if a == No || b == No || related == No {
		return No
	}
	if a == Maybe || b == Maybe || related == Maybe {
		return Maybe
	}
	return Yes
}

type orderFamily[V cmp.Ordered] struct {
	kind       Kind
	increasing bool
}

// NewInOrder builds the InOrder family: values at the bound positions, in
// binding order, must be strictly increasing.
func NewInOrder[V cmp.Ordered]() Family[V] {
	return orderFamily[V]{kind: InOrder, increasing: true}
}

// NewInReverseOrder builds the InReverseOrder family: strictly decreasing.
func NewInReverseOrder[V cmp.Ordered]() Family[V] {
	return orderFamily[V]{kind: InReverseOrder, increasing: false}
}

func (f orderFamily[V]) Kind() Kind { return f.kind }

func (f orderFamily[V]) Single(_ int, v V) Value {
	return OrderValue[V]{FirstLo: v, FirstHi: v, LastLo: v, LastHi: v, HasValue: true, Ok: Yes, increasing: f.increasing}
}

func (orderFamily[V]) Classify(v Value) Verdict {
	ov := v.(OrderValue[V])
	if !ov.HasValue {
		return Maybe
	}
	return ov.Ok
}
