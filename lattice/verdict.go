package lattice

// Verdict is the three-valued outcome of classifying a folded lattice value
// against a constraint's target (spec.md §4.1).
type Verdict int

const (
	// Maybe means the fold neither proves nor disproves the constraint.
	// Always a safe answer; a Family may return Maybe where a stronger
	// analysis could have returned Yes or No (see the Permutation open
	// question in spec.md §9).
	Maybe Verdict = iota
	// Yes means every concrete assignment summarized by the fold satisfies
	// the constraint.
	Yes
	// No means no concrete assignment summarized by the fold satisfies the
	// constraint. This is the only verdict the solver acts on: a tuple
	// pinned alone in its partition that folds to No can be deleted.
	No
)

// String renders the verdict for logs and test failure messages.
func (v Verdict) String() string {
	switch v {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Maybe"
	}
}
