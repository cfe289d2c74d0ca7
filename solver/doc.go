// Package solver implements the fixpoint pruning sweep and the speculative
// merge search of spec.md §4.4: Simplify reduces a core.Table to a fixpoint
// under a set of constraint.Binding values, and Solve repeatedly simplifies
// and merges partition pairs until the table collapses to one partition (the
// solution set) or every candidate merge proves Unsatisfiable.
//
// The outer loop mirrors the teacher's tsp branch-and-bound engine: a single
// struct owns all search state, candidates are evaluated and the best kept,
// the rest discarded, with a deterministic tie-break so repeated runs on the
// same input are reproducible (spec.md §5).
package solver
