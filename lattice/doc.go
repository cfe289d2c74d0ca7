// Package lattice implements the and/or lattice values each constraint
// family folds a table through (spec.md §4.1).
//
// Every family exposes the same shape — an associative And, an associative,
// commutative Or — plus Single (the summary of one concrete value at one
// binding position) and Classify (the Yes/No/Maybe verdict against the
// family's target). And is commutative for every family except the
// order-sensitive ones (OrderValue, WordValue, PredValue), whose And composes
// its operands left to right. No family exposes Bot/Top identity values: a
// fold starts from its first Single value instead. The fold in
// constraint.Evaluate is the only caller; nothing here knows about Table or
// Partition.
//
// classify must be monotone-conservative: Yes implies every assignment the
// value summarizes satisfies the constraint, No implies none do, Maybe is
// always a safe fallback. That is the sole correctness obligation a Family
// implementation carries (spec.md §4.1).
package lattice
