package lattice

// Integer is the value-type capability the Sum/Product families require:
// spec.md §3 calls for "values convertible to integer for sum/product".
// Rather than convert, we simply require the engine's single Value type to
// already have an integer underlying type — real puzzles that mix letters
// and arithmetic reach for mapped_constraint (per-position value
// transforms, spec.md §6.1) instead of a second value domain.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// SumValue is the lattice for the Sum family: a closed integer interval
// [Lo, Hi] summarizing the range of possible partial sums (spec.md §4.1).
type SumValue[V Integer] struct {
	Lo, Hi V
}

// And adds two independently-derived sums componentwise.
func (a SumValue[V]) And(other Value) Value {
	b := other.(SumValue[V])
	return SumValue[V]{Lo: a.Lo + b.Lo, Hi: a.Hi + b.Hi}
}

// Or widens to cover both alternatives.
func (a SumValue[V]) Or(other Value) Value {
	b := other.(SumValue[V])
	return SumValue[V]{Lo: min(a.Lo, b.Lo), Hi: max(a.Hi, b.Hi)}
}

// sumFamily classifies a SumValue against a fixed integer target.
type sumFamily[V Integer] struct {
	target V
}

// NewSum builds the Sum(target) constraint family: values at each bound
// position are summed and the total must equal target exactly.
func NewSum[V Integer](target V) Family[V] { return sumFamily[V]{target: target} }

func (sumFamily[V]) Kind() Kind { return Sum }

func (sumFamily[V]) Single(_ int, v V) Value { return SumValue[V]{Lo: v, Hi: v} }

func (f sumFamily[V]) Classify(v Value) Verdict {
	iv := v.(SumValue[V])
	if iv.Lo == iv.Hi && iv.Lo == f.target {
		return Yes
	}
	if f.target < iv.Lo || f.target > iv.Hi {
		return No
	}
	return Maybe
}

// ProductValue is the lattice for the Product family: a closed interval
// [Lo, Hi] over non-negative integers summarizing possible partial products.
type ProductValue[V Integer] struct {
	Lo, Hi V
}

// And multiplies two independently-derived products componentwise.
func (a ProductValue[V]) And(other Value) Value {
	b := other.(ProductValue[V])
	return ProductValue[V]{Lo: a.Lo * b.Lo, Hi: a.Hi * b.Hi}
}

// Or widens to cover both alternatives.
func (a ProductValue[V]) Or(other Value) Value {
	b := other.(ProductValue[V])
	return ProductValue[V]{Lo: min(a.Lo, b.Lo), Hi: max(a.Hi, b.Hi)}
}

type productFamily[V Integer] struct {
	target V
}

// NewProduct builds the Product(target) constraint family.
func NewProduct[V Integer](target V) Family[V] { return productFamily[V]{target: target} }

func (productFamily[V]) Kind() Kind { return Product }

func (productFamily[V]) Single(_ int, v V) Value {
	var zero V
	if v < zero {
		panic("lattice: product family requires non-negative values")
	}
	return ProductValue[V]{Lo: v, Hi: v}
}

func (f productFamily[V]) Classify(v Value) Verdict {
	iv := v.(ProductValue[V])
	if iv.Lo == iv.Hi && iv.Lo == f.target {
		return Yes
	}
	if f.target < iv.Lo || f.target > iv.Hi {
		return No
	}
	return Maybe
}
