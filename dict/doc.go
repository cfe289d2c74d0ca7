// Package dict loads a fixed-length word list from disk and compiles it
// into a trie, the alphabet and automaton the Word constraint family
// (package lattice) folds against (spec.md §4.1, §6.2 "word" rule).
//
// A Dictionary is immutable after Load returns and may be shared by any
// number of Word constraints without synchronization beyond the one-time
// load (spec.md §5: "the word-list/trie is immutable after load and may be
// shared ... logically shared, never mutated"). The trie itself is an
// arena of nodes addressed by index — the layout spec.md §9 recommends for
// the table applies just as well here, and grounds the same idiom the
// teacher's core package uses for its adjacency maps: flat storage plus
// index-based references, no pointer cycles.
package dict
