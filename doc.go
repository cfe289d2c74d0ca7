// Package solvomatic is a constraint solver for finite-domain puzzles built
// around a compact "cross product of unions of tuples" table representation
// and lattice-homomorphic constraint checking.
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	core/       — the Table/Partition/Tuple representation and its invariants
//	lattice/    — the and/or/classify algebra each constraint family implements
//	dict/       — word-list loading and the trie the Word family checks against
//	constraint/ — bindings: a Family attached to a variable sequence, plus Evaluate
//	solver/     — Simplify, Solve, and the Engine[V] programmatic facade
//	puzzle/     — the ASCII-art puzzle text format parser
//	cmd/solvomatic/ — the command-line front end
//
// A caller declares variables and their domains, attaches constraints (Sum,
// Product, Permutation, Subset, Superset, InOrder, InReverseOrder, Word, or a
// custom Pred), and calls Solve: the engine repeatedly prunes impossible
// tuples and merges partitions until either one partition remains (solved) or
// every tuple of some partition is pruned (Unsatisfiable).
package solvomatic
