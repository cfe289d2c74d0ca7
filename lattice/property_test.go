package lattice_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/solvomatic/solvomatic/lattice"
)

// TestSumFamily_HomomorphismProperty checks spec.md §8 property 2 for the
// Sum family: classifying the folded lattice value agrees with directly
// summing the same values and comparing to the target, for any small
// sequence of small integers and any target.
func TestSumFamily_HomomorphismProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("classify(fold(values)) == (sum(values) == target)", prop.ForAll(
		func(values []int, target int) bool {
			if len(values) == 0 {
				return true
			}
			f := lattice.NewSum(target)

			folded := f.Single(0, values[0])
			sum := values[0]
			for i := 1; i < len(values); i++ {
				folded = folded.And(f.Single(i, values[i]))
				sum += values[i]
			}

			want := lattice.No
			if sum == target {
				want = lattice.Yes
			}
			return f.Classify(folded) == want
		},
		gen.SliceOfN(4, gen.IntRange(-20, 20)),
		gen.IntRange(-80, 80),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestSumFamily_OrIsCommutativeAndWidens checks that Or always produces an
// interval covering both operands, regardless of argument order — the
// monotone-conservative obligation spec.md §4.1 places on every family's Or.
func TestSumFamily_OrIsCommutativeAndWidens(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("Or(a,b) == Or(b,a) and covers both", prop.ForAll(
		func(a, b int) bool {
			f := lattice.NewSum(0)
			va := f.Single(0, a)
			vb := f.Single(0, b)

			ab := va.Or(vb).(lattice.SumValue[int])
			ba := vb.Or(va).(lattice.SumValue[int])
			if ab != ba {
				return false
			}
			return ab.Lo <= a && ab.Lo <= b && ab.Hi >= a && ab.Hi >= b
		},
		gen.IntRange(-50, 50),
		gen.IntRange(-50, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
