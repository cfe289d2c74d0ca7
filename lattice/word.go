package lattice

import "github.com/solvomatic/solvomatic/dict"

// WordValue represents a (possibly non-deterministic) transition relation
// over a dict.Dictionary's prefix-states: Rel[s] is the set of states
// reachable from s by whatever symbols have been folded into this value so
// far. Single seeds a one-symbol relation over every state in the trie; And
// composes two relations sequentially (spec.md §4.1: "and concatenates");
// Or unions two relations (spec.md §4.1: "or unions"), accumulating the
// branching that comes from alternative tuples in the same partition.
//
// Like OrderValue, this is only a true (associative) monoid when And is
// applied in the left-to-right position order the evaluator already uses
// (spec.md §4.3 step 2), since relation composition is not commutative;
// spec.md §4.1 explicitly sanctions an automaton-based realization of this
// family, which relation composition is.
type WordValue struct {
	d   *dict.Dictionary
	Rel map[dict.State]map[dict.State]struct{}
}

func (a WordValue) And(other Value) Value {
	b := other.(WordValue)
	rel := make(map[dict.State]map[dict.State]struct{}, len(a.Rel))
	for s, mids := range a.Rel {
		for m := range mids {
			ends, ok := b.Rel[m]
			if !ok {
				continue
			}
			set := rel[s]
			if set == nil {
				set = make(map[dict.State]struct{})
				rel[s] = set
			}
			for e := range ends {
				set[e] = struct{}{}
			}
		}
	}
	return WordValue{d: a.d, Rel: rel}
}

func (a WordValue) Or(other Value) Value {
	b := other.(WordValue)
	rel := make(map[dict.State]map[dict.State]struct{}, len(a.Rel)+len(b.Rel))
	merge := func(src map[dict.State]map[dict.State]struct{}) {
		for s, ends := range src {
			set := rel[s]
			if set == nil {
				set = make(map[dict.State]struct{}, len(ends))
				rel[s] = set
			}
			for e := range ends {
				set[e] = struct{}{}
			}
		}
	}
	merge(a.Rel)
	merge(b.Rel)
	return WordValue{d: a.d, Rel: rel}
}

// wordFamily classifies the sequence of bound values against a fixed-length
// dictionary, with a per-position symbol conversion (the mapped_constraint
// capability, spec.md §3/§6.1): ToSym turns the domain value at a binding
// position into the byte alphabet the dictionary was compiled over.
type wordFamily[V any] struct {
	d     *dict.Dictionary
	toSym func(V) byte
}

// NewWord builds the Word(d) family: the bound variables, mapped through
// toSym and read in binding order, must spell a word of d.
func NewWord[V any](d *dict.Dictionary, toSym func(V) byte) Family[V] {
	return wordFamily[V]{d: d, toSym: toSym}
}

func (wordFamily[V]) Kind() Kind { return Word }

func (f wordFamily[V]) Single(_ int, v V) Value {
	sym := f.toSym(v)
	rel := make(map[dict.State]map[dict.State]struct{})
	for _, s := range f.d.States() {
		if next := f.d.Advance(s, sym); next != dict.Dead {
			rel[s] = map[dict.State]struct{}{next: {}}
		}
	}
	return WordValue{d: f.d, Rel: rel}
}

func (f wordFamily[V]) Classify(v Value) Verdict {
	wv := v.(WordValue)
	ends := wv.Rel[f.d.Root()]
	if len(ends) == 0 {
		return No
	}
	accept := 0
	for e := range ends {
		if f.d.IsAccept(e) {
			accept++
		}
	}
	if accept == 0 {
		return No
	}
	if accept == len(ends) {
		return Yes
	}
	return Maybe
}
