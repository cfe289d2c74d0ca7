// Package core implements the compact state representation Solv-o-matic
// solves over: a Table is the Cartesian product of a list of Partitions,
// each Partition the disjunction of a non-empty, duplicate-free list of
// Tuples (spec.md §3). It is the arena-and-index layout spec.md §9
// recommends: partitions hold flat tuple slices, never pointers into one
// another, so Project and MergePartitions are plain index remaps rather
// than graph surgery.
//
// This package knows nothing about constraints or lattices (package
// constraint folds those against a Table); it only knows how to build,
// measure, project, prune and merge the table itself, the way the teacher's
// core package only knows vertices, edges and adjacency, not the traversal
// algorithms layered on top of it.
package core
