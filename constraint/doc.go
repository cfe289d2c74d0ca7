// Package constraint binds a lattice.Family to a sequence of core.VarID
// positions and folds a core.Table through it (spec.md §4.3). It is the one
// package that knows about both core and lattice; neither of those packages
// knows about the other, the same layering the teacher keeps between its
// core graph package and the traversal algorithms built on top of it.
package constraint
